// Package grpc exposes the authority over gRPC: the Authority service,
// its API-key and bearer-token interceptors, and the realtime Subscribe stream.
package grpc

import (
	"context"
	"net"
	"sync"

	"github.com/dmitrijs2005/instabids/internal/logging"
	pb "github.com/dmitrijs2005/instabids/internal/proto"
	"github.com/dmitrijs2005/instabids/internal/server/models"
	"github.com/dmitrijs2005/instabids/internal/server/realtime"
	"github.com/dmitrijs2005/instabids/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password string, data map[string]string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*services.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*services.Session, error)
	SignOut(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
	VerifyEmail(ctx context.Context, email, code string) (*models.User, error)
}

type ProfileService interface {
	Get(ctx context.Context, id string) (*models.Profile, error)
	FindByUsername(ctx context.Context, username string) (*models.Profile, error)
	Update(ctx context.Context, callerID, id string, upd models.ProfileUpdate) (*models.Profile, error)
}

type StorageService interface {
	PresignUpload(ctx context.Context, userID, bucket, key, contentType string, upsert bool) (*services.PresignedUpload, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthorityServer
	address   string
	auth      AuthService
	profiles  ProfileService
	storage   StorageService
	hub       *realtime.Hub
	logger    logging.Logger
	jwtSecret []byte
	anonKey   string

	// done is closed on shutdown so open Subscribe streams return and
	// GracefulStop does not wait on them forever.
	done     chan struct{}
	doneOnce sync.Once
}

type Deps struct {
	Auth     AuthService
	Profiles ProfileService
	Storage  StorageService
	Hub      *realtime.Hub
}

func NewGRPCServer(address string, l logging.Logger, deps Deps, secretKey, anonKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		auth:      deps.Auth,
		profiles:  deps.Profiles,
		storage:   deps.Storage,
		hub:       deps.Hub,
		jwtSecret: []byte(secretKey),
		anonKey:   anonKey,
		done:      make(chan struct{}),
	}
}

// newServer builds the grpc.Server with tracing and the auth interceptors.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.apiKeyInterceptor, s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.apiKeyStreamInterceptor),
	)
	pb.RegisterAuthorityServer(srv, s)
	return srv
}

func (s *GRPCServer) shutdown() {
	s.doneOnce.Do(func() { close(s.done) })
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
