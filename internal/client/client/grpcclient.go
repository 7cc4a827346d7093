package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/instabids/internal/client/config"
	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/realtime"
	"github.com/dmitrijs2005/instabids/internal/client/repositories/kv"
	"github.com/dmitrijs2005/instabids/internal/common"
	"github.com/dmitrijs2005/instabids/internal/logging"
	pb "github.com/dmitrijs2005/instabids/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// expiryLeeway refreshes a session slightly before the authority would
// reject its access token.
const expiryLeeway = 30 * time.Second

// GRPCClient talks to the authority over gRPC. It owns the remote session:
// the current access and refresh tokens are kept in memory, persisted to the
// local kv store, attached to every call and refreshed when they expire.
type GRPCClient struct {
	endpointURL string
	anonKey     string
	conn        *grpc.ClientConn
	client      pb.AuthorityClient
	storage     kv.Repository
	logger      logging.Logger
	now         func() time.Time
	timeout     time.Duration
	dialOptions []grpc.DialOption

	mu       sync.RWMutex
	session  *models.AuthSession
	restored bool

	refresh singleflight.Group

	listeners authListeners

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type Option func(*GRPCClient)

// WithStorage persists the session under common.SessionStorageKey.
func WithStorage(r kv.Repository) Option {
	return func(c *GRPCClient) { c.storage = r }
}

func WithLogger(l logging.Logger) Option {
	return func(c *GRPCClient) { c.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(c *GRPCClient) { c.now = now }
}

// WithRequestTimeout bounds every unary call. Zero disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *GRPCClient) { c.timeout = d }
}

// WithDialOptions appends extra dial options, e.g. a bufconn dialer in tests.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOptions = append(c.dialOptions, opts...) }
}

// NewGRPCClient connects to the authority at endpointURL. Both the address
// and the anon key are required.
func NewGRPCClient(endpointURL, anonKey string, opts ...Option) (*GRPCClient, error) {
	if endpointURL == "" || anonKey == "" {
		return nil, config.ErrMissingConfiguration
	}

	c := newGRPCClient(anonKey, opts...)
	c.endpointURL = endpointURL

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithChainStreamInterceptor(c.streamInterceptor),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
	dialOpts = append(dialOpts, c.dialOptions...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		c.cancel()
		return nil, fmt.Errorf("failed to create grpc client: %w", err)
	}
	c.conn = conn
	c.client = pb.NewAuthorityClient(conn)

	c.start()
	return c, nil
}

func newGRPCClient(anonKey string, opts ...Option) *GRPCClient {
	c := &GRPCClient{
		anonKey: anonKey,
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.listeners.init()
	return c
}

func (c *GRPCClient) start() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.listeners.run(c.ctx)
	}()
}

// Close stops listener dispatch and every open channel, then closes the
// connection.
func (c *GRPCClient) Close() error {
	c.cancel()
	c.wg.Wait()
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func withAuth(ctx context.Context, anonKey, accessToken string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.APIKeyHeaderName, anonKey)
	md.Delete(common.AuthorizationHeaderName)
	if accessToken != "" {
		md.Set(common.AuthorizationHeaderName, common.BearerPrefix+accessToken)
	}
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.AccessToken
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	err := invoker(withAuth(ctx, c.anonKey, c.accessToken()), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}
	if method == pb.Authority_RefreshSession_FullMethodName || !isTokenExpired(err) {
		return err
	}

	if _, rerr := c.refreshSession(ctx); rerr != nil {
		return err
	}

	// tokens refreshed, retry once with the new access token
	return invoker(withAuth(ctx, c.anonKey, c.accessToken()), method, req, reply, cc, opts...)
}

func (c *GRPCClient) streamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withAuth(ctx, c.anonKey, c.accessToken()), desc, cc, method, opts...)
}

func (c *GRPCClient) currentSession() *models.AuthSession {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *GRPCClient) restore(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.restored || c.storage == nil {
		return nil
	}
	var s models.AuthSession
	found, err := kv.GetJSON(ctx, c.storage, common.SessionStorageKey, &s)
	if err != nil {
		return err
	}
	if found && c.session == nil {
		c.session = &s
	}
	c.restored = true
	return nil
}

func (c *GRPCClient) setSession(ctx context.Context, s *models.AuthSession) error {
	c.mu.Lock()
	c.session = s
	c.restored = true
	c.mu.Unlock()

	if c.storage == nil {
		return nil
	}
	if err := kv.SetJSON(ctx, c.storage, common.SessionStorageKey, s); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (c *GRPCClient) clearSession(ctx context.Context) error {
	c.mu.Lock()
	c.session = nil
	c.restored = true
	c.mu.Unlock()

	if c.storage == nil {
		return nil
	}
	if err := c.storage.Delete(ctx, common.SessionStorageKey); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// refreshSession exchanges the refresh token for a new session. Concurrent
// callers share one round trip. A rejected refresh token signs the client out.
func (c *GRPCClient) refreshSession(ctx context.Context) (*models.AuthSession, error) {
	v, err, _ := c.refresh.Do("refresh", func() (any, error) {
		cur := c.currentSession()
		if cur == nil || cur.RefreshToken == "" {
			return nil, ErrUnauthorized
		}

		resp, err := c.client.RefreshSession(ctx, &pb.RefreshSessionRequest{RefreshToken: cur.RefreshToken})
		if err != nil {
			err = mapError(err)
			if errors.Is(err, ErrUnauthorized) {
				c.logger.Warn(ctx, "refresh token rejected, signing out", "error", err)
				if cerr := c.clearSession(ctx); cerr != nil {
					c.logger.Error(ctx, "failed to clear session", "error", cerr)
				}
				c.listeners.emit(models.AuthSignedOut, nil)
			}
			return nil, err
		}

		s := sessionFromProto(resp.GetSession())
		if err := c.setSession(ctx, s); err != nil {
			return nil, err
		}
		c.listeners.emit(models.AuthTokenRefreshed, s)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.AuthSession), nil
}

// GetSession returns the current session, restoring it from local storage on
// first use and refreshing it when it has expired. It returns (nil, nil) when
// nobody is signed in.
func (c *GRPCClient) GetSession(ctx context.Context) (*models.AuthSession, error) {
	if err := c.restore(ctx); err != nil {
		return nil, err
	}
	s := c.currentSession()
	if s == nil {
		return nil, nil
	}
	if !s.Expired(c.now(), expiryLeeway) {
		return s, nil
	}

	s, err := c.refreshSession(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// OnAuthStateChange registers listener for session transitions. Listeners run
// one at a time, in emission order, on a goroutine owned by the client.
func (c *GRPCClient) OnAuthStateChange(listener AuthListener) *realtime.Subscription {
	return c.listeners.add(listener)
}

func (c *GRPCClient) SignInWithPassword(ctx context.Context, email, password string) (*models.AuthSession, error) {
	resp, err := c.client.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}

	s := sessionFromProto(resp.GetSession())
	if err := c.setSession(ctx, s); err != nil {
		return nil, err
	}
	c.listeners.emit(models.AuthSignedIn, s)
	return s, nil
}

// SignUp creates an account. It never signs the client in.
func (c *GRPCClient) SignUp(ctx context.Context, email, password string, data map[string]string) (*models.AuthUser, error) {
	resp, err := c.client.SignUp(ctx, &pb.SignUpRequest{Email: email, Password: password, Data: data})
	if err != nil {
		return nil, mapError(err)
	}
	u := userFromProto(resp.GetUser())
	return &u, nil
}

// SignOut revokes the session remotely and forgets it locally. A session the
// authority no longer recognises is forgotten without error.
func (c *GRPCClient) SignOut(ctx context.Context) error {
	if err := c.restore(ctx); err != nil {
		return err
	}

	if s := c.currentSession(); s != nil {
		_, err := c.client.SignOut(ctx, &pb.SignOutRequest{RefreshToken: s.RefreshToken})
		if err != nil {
			err = mapError(err)
			if !errors.Is(err, ErrUnauthorized) {
				return err
			}
		}
	}

	if err := c.clearSession(ctx); err != nil {
		return err
	}
	c.listeners.emit(models.AuthSignedOut, nil)
	return nil
}

func (c *GRPCClient) GetUser(ctx context.Context) (*models.AuthUser, error) {
	resp, err := c.client.GetUser(ctx, &pb.Empty{})
	if err != nil {
		return nil, mapError(err)
	}
	u := userFromProto(resp.GetUser())
	return &u, nil
}

// VerifyEmail confirms an address with the token the authority issued at
// sign-up. The current session, if it belongs to that user, is updated.
func (c *GRPCClient) VerifyEmail(ctx context.Context, email, token string) (*models.AuthUser, error) {
	resp, err := c.client.VerifyEmail(ctx, &pb.VerifyEmailRequest{Email: email, Token: token})
	if err != nil {
		return nil, mapError(err)
	}
	u := userFromProto(resp.GetUser())

	if cur := c.currentSession(); cur != nil && cur.User.ID == u.ID {
		next := *cur
		next.User = u
		if err := c.setSession(ctx, &next); err != nil {
			return nil, err
		}
		c.listeners.emit(models.AuthUserUpdated, &next)
	}
	return &u, nil
}

// GetProfile returns the profile with the given id, or (nil, nil) if there is
// none.
func (c *GRPCClient) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	resp, err := c.client.GetProfile(ctx, &pb.GetProfileRequest{Id: id})
	if err != nil {
		err = mapError(err)
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profileFromProto(resp.GetProfile()), nil
}

// FindProfileByUsername returns the profile owning username, or (nil, nil).
func (c *GRPCClient) FindProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	resp, err := c.client.FindProfile(ctx, &pb.FindProfileRequest{Username: username})
	if err != nil {
		err = mapError(err)
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profileFromProto(resp.GetProfile()), nil
}

func (c *GRPCClient) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.Profile, error) {
	resp, err := c.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{Id: id, Update: profileUpdateToProto(update)})
	if err != nil {
		return nil, mapError(err)
	}
	return profileFromProto(resp.GetProfile()), nil
}

// PresignedUpload is a one-shot PUT target for a storage object.
type PresignedUpload struct {
	UploadURL string
	PublicURL string
	Headers   map[string]string
}

func (c *GRPCClient) PresignUpload(ctx context.Context, bucket, path, contentType string, upsert bool) (*PresignedUpload, error) {
	resp, err := c.client.PresignUpload(ctx, &pb.PresignUploadRequest{
		Bucket:      bucket,
		Path:        path,
		ContentType: contentType,
		Upsert:      upsert,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &PresignedUpload{UploadURL: resp.GetUploadUrl(), PublicURL: resp.GetPublicUrl(), Headers: resp.GetHeaders()}, nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &pb.Empty{})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}
