package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/instabids/internal/client/client"
	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/realtime"
	"github.com/dmitrijs2005/instabids/internal/client/services"
	"github.com/dmitrijs2005/instabids/internal/client/session"
	"github.com/dmitrijs2005/instabids/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*************
 * Fakes
 *************/

type fakeStore struct {
	state session.State

	loginEmail, loginPassword string
	signupUsername            string
	updates                   []models.ProfileUpdate
	logouts                   int
	err                       error
}

func (f *fakeStore) State() session.State { return f.state }
func (f *fakeStore) Login(_ context.Context, email, password string) error {
	f.loginEmail, f.loginPassword = email, password
	if f.err != nil {
		return f.err
	}
	f.state = session.State{User: &models.User{ID: "u1", Email: email, Username: "alice"}, IsAuthenticated: true}
	return nil
}
func (f *fakeStore) Signup(_ context.Context, email, password, username string) error {
	f.signupUsername = username
	return f.err
}
func (f *fakeStore) Logout(context.Context) error {
	f.logouts++
	if f.err != nil {
		return f.err
	}
	f.state = session.State{}
	return nil
}
func (f *fakeStore) UpdateProfile(_ context.Context, u models.ProfileUpdate) error {
	f.updates = append(f.updates, u)
	return f.err
}

type fakeAccount struct {
	pingErr   error
	pingFn    func(ctx context.Context) error
	verified  []string
	cleared   int
	verifyErr error
}

func (f *fakeAccount) Ping(ctx context.Context) error {
	if f.pingFn != nil {
		return f.pingFn(ctx)
	}
	return f.pingErr
}
func (f *fakeAccount) CurrentUser(context.Context) (*models.AuthUser, error) {
	return &models.AuthUser{ID: "u1"}, nil
}
func (f *fakeAccount) VerifyEmail(_ context.Context, email, token string) (*models.AuthUser, error) {
	f.verified = append(f.verified, email+":"+token)
	return &models.AuthUser{ID: "u1", Email: email}, f.verifyErr
}
func (f *fakeAccount) ClearLocalData(context.Context) error {
	f.cleared++
	return nil
}

type fakeMedia struct {
	bucket, path string
	body         []byte
	opts         services.UploadOptions
}

func (f *fakeMedia) UploadImage(_ context.Context, bucket, path string, r io.Reader, opts services.UploadOptions) (string, error) {
	f.bucket, f.path, f.opts = bucket, path, opts
	f.body, _ = io.ReadAll(r)
	return "https://cdn.example/" + bucket + "/" + path, nil
}

type fakeTheme struct{ theme models.Theme }

func (f *fakeTheme) Theme() models.Theme { return f.theme }
func (f *fakeTheme) SetTheme(_ context.Context, t models.Theme) error {
	f.theme = t
	return nil
}

type fakeChannels struct {
	mu       sync.Mutex
	specs    []realtime.ChannelSpec
	handlers []func(models.ChangeEvent)
}

func (f *fakeChannels) OpenChannel(_ context.Context, spec realtime.ChannelSpec, h func(models.ChangeEvent)) (*realtime.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.specs = append(f.specs, spec)
	f.handlers = append(f.handlers, h)
	return realtime.Opened(spec.Name, func() {}), nil
}

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

type testApp struct {
	*App
	store    *fakeStore
	account  *fakeAccount
	media    *fakeMedia
	theme    *fakeTheme
	channels *fakeChannels
	out      *syncBuffer
}

func newTestApp(input string) *testApp {
	ta := &testApp{
		store:    &fakeStore{},
		account:  &fakeAccount{},
		media:    &fakeMedia{},
		theme:    &fakeTheme{theme: models.ThemeSystem},
		channels: &fakeChannels{},
		out:      &syncBuffer{},
	}
	ta.App = &App{
		logger:   logging.NewNop(),
		store:    ta.store,
		account:  ta.account,
		media:    ta.media,
		theme:    ta.theme,
		channels: ta.channels,
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      ta.out,
		watches:  make(map[string]*realtime.Subscription),
	}
	return ta
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

/*************
 * Auth commands
 *************/

func TestLogin_UsesStoreAndGoesOnline(t *testing.T) {
	stubPassword(t, "secret")
	a := newTestApp("alice@example.com\n")

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "alice@example.com", a.store.loginEmail)
	assert.Equal(t, "secret", a.store.loginPassword)
	assert.Equal(t, ModeOnline, a.Mode)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(alice online)", a.getStatus())
	assert.Contains(t, a.out.String(), "Welcome, alice!")
}

func TestLogin_UnavailableGoesOffline(t *testing.T) {
	stubPassword(t, "secret")
	a := newTestApp("alice@example.com\n")
	a.store.err = client.ErrUnavailable

	err := a.Login(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, ModeOffline, a.Mode)
	assert.False(t, a.isLoggedIn())
}

func TestSignup_PassesUsername(t *testing.T) {
	stubPassword(t, "secret")
	a := newTestApp("bob@example.com\nbob\n")

	require.NoError(t, a.Signup(context.Background()))
	assert.Equal(t, "bob", a.store.signupUsername)
	assert.Contains(t, a.out.String(), "verify")
}

func TestSignup_UsernameTaken(t *testing.T) {
	stubPassword(t, "secret")
	a := newTestApp("bob@example.com\nbob\n")
	a.store.err = session.ErrUsernameTaken

	require.ErrorIs(t, a.Signup(context.Background()), session.ErrUsernameTaken)
}

func TestVerify(t *testing.T) {
	a := newTestApp("bob@example.com\n123456\n")

	require.NoError(t, a.Verify(context.Background()))
	assert.Equal(t, []string{"bob@example.com:123456"}, a.account.verified)
}

func TestLogout(t *testing.T) {
	stubPassword(t, "pw")
	a := newTestApp("alice@example.com\n")
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
}

/*************
 * Profile commands
 *************/

func TestParseProfileUpdate(t *testing.T) {
	current := models.DefaultNotificationPreferences()

	upd, err := parseProfileUpdate([]string{"bio=Collector", "full_name=Alice A", "marketing_emails=true"}, current)
	require.NoError(t, err)
	assert.Equal(t, "Collector", *upd.Bio)
	assert.Equal(t, "Alice A", *upd.FullName)
	assert.Nil(t, upd.Phone)
	require.NotNil(t, upd.NotificationPreferences)
	want := current
	want.MarketingEmails = true
	assert.Equal(t, want, *upd.NotificationPreferences)

	upd, err = parseProfileUpdate([]string{"phone=555"}, current)
	require.NoError(t, err)
	assert.Nil(t, upd.NotificationPreferences, "preferences untouched unless a flag is given")

	_, err = parseProfileUpdate([]string{"bio"}, current)
	require.ErrorIs(t, err, errUsage)
	_, err = parseProfileUpdate([]string{"nickname=x"}, current)
	require.ErrorIs(t, err, errUsage)
	_, err = parseProfileUpdate([]string{"bid_alerts=maybe"}, current)
	require.ErrorIs(t, err, errUsage)
}

func TestUpdate_RequiresLogin(t *testing.T) {
	a := newTestApp("")
	require.ErrorIs(t, a.Update(context.Background(), []string{"bio=x"}), session.ErrNotLoggedIn)
	assert.Empty(t, a.store.updates)
}

func TestUpdate_FromArgsAndPrompts(t *testing.T) {
	a := newTestApp("line one\nline two\n\nphone=555\n\n")
	a.store.state = session.State{User: &models.User{ID: "u1"}, IsAuthenticated: true}

	require.NoError(t, a.Update(context.Background(), []string{"username=al"}))
	require.NoError(t, a.Update(context.Background(), []string{"bio"}))
	require.NoError(t, a.Update(context.Background(), nil))

	require.Len(t, a.store.updates, 3)
	assert.Equal(t, "al", *a.store.updates[0].Username)
	assert.Equal(t, "line one\nline two", *a.store.updates[1].Bio)
	assert.Equal(t, "555", *a.store.updates[2].Phone)
}

func TestWhoami(t *testing.T) {
	a := newTestApp("")
	require.ErrorIs(t, a.Whoami(context.Background()), session.ErrNotLoggedIn)

	a.store.state = session.State{User: &models.User{
		ID: "u1", Email: "a@b.com", Username: "alice", Bio: models.String("hi"),
		NotificationPreferences: models.DefaultNotificationPreferences(),
	}, IsAuthenticated: true}
	require.NoError(t, a.Whoami(context.Background()))
	out := a.out.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Bio:       hi")
	assert.Contains(t, out, "Phone:     -")
}

func TestAvatar_UploadsAndUpdatesProfile(t *testing.T) {
	a := newTestApp("")
	a.store.state = session.State{User: &models.User{ID: "u1"}, IsAuthenticated: true}

	path := filepath.Join(t.TempDir(), "Me.PNG")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0o600))

	require.NoError(t, a.Avatar(context.Background(), []string{path}))

	assert.Equal(t, avatarBucket, a.media.bucket)
	assert.True(t, strings.HasPrefix(a.media.path, "u1/"))
	assert.True(t, strings.HasSuffix(a.media.path, ".png"))
	assert.True(t, a.media.opts.Upsert)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), a.media.body)

	require.Len(t, a.store.updates, 1)
	assert.Equal(t, "https://cdn.example/avatars/"+a.media.path, *a.store.updates[0].AvatarURL)
}

func TestAvatar_Errors(t *testing.T) {
	a := newTestApp("")
	require.ErrorIs(t, a.Avatar(context.Background(), nil), errUsage)
	require.ErrorIs(t, a.Avatar(context.Background(), []string{"x.png"}), session.ErrNotLoggedIn)

	a.store.state = session.State{User: &models.User{ID: "u1"}, IsAuthenticated: true}
	require.Error(t, a.Avatar(context.Background(), []string{filepath.Join(t.TempDir(), "missing.png")}))
	assert.Empty(t, a.store.updates)
}

/*************
 * Watch commands
 *************/

func TestWatch_PrintsDecodedEvents(t *testing.T) {
	a := newTestApp("")
	ctx := context.Background()

	require.NoError(t, a.Watch(ctx, []string{"bids", "auction_id=eq.a1"}))
	require.Error(t, a.Watch(ctx, []string{"bids"}), "one watch per table")

	require.Len(t, a.channels.specs, 1)
	spec := a.channels.specs[0]
	assert.Equal(t, "bids_changes", spec.Name)
	assert.Equal(t, "auction_id=eq.a1", spec.Filter)

	a.channels.handlers[0](models.ChangeEvent{
		Table:  "bids",
		Type:   models.ChangeInsert,
		Record: []byte(`{"id":"b1","auction_id":"a1","bidder_id":"u2","amount":12.5}`),
	})
	assert.Contains(t, a.out.String(), "[INSERT] bid b1: 12.50 on auction a1 by u2")

	require.NoError(t, a.Unwatch(ctx, []string{"bids"}))
	require.Error(t, a.Unwatch(ctx, []string{"bids"}))
}

func TestWatch_Validation(t *testing.T) {
	a := newTestApp("")
	require.ErrorIs(t, a.Watch(context.Background(), nil), errUsage)
	require.Error(t, a.Watch(context.Background(), []string{"bids", "amount>10"}))
	assert.Empty(t, a.channels.specs)
}

func TestFormatChange(t *testing.T) {
	ev := models.ChangeEvent{
		Table:  "auctions",
		Type:   models.ChangeUpdate,
		Record: []byte(`{"id":"a1","title":"Lamp","status":"active","current_price":20,"bid_count":3}`),
	}
	assert.Equal(t, `[UPDATE] auction a1 "Lamp": active, current 20.00, 3 bids`, formatChange(ev))

	del := models.ChangeEvent{Table: "messages", Type: models.ChangeDelete, OldRecord: []byte(`{"id":"m1"}`)}
	assert.Equal(t, `[DELETE] messages: {"id":"m1"}`, formatChange(del))
}

func TestClose_StopsWatches(t *testing.T) {
	a := newTestApp("")
	require.NoError(t, a.Watch(context.Background(), []string{"auctions"}))

	a.mu.Lock()
	sub := a.watches["auctions"]
	a.mu.Unlock()

	closed := 0
	a.closers = []func() error{func() error { closed++; return nil }}
	a.Close()

	assert.True(t, sub.Closed())
	assert.Equal(t, 1, closed)
}

func TestRun_StopsWatcherBeforeClose(t *testing.T) {
	a := newTestApp("exit\n")

	var (
		mu           sync.Mutex
		closed       bool
		pings        int
		pingAfterEnd bool
	)
	a.account.pingFn = func(ctx context.Context) error {
		<-ctx.Done()
		mu.Lock()
		defer mu.Unlock()
		pings++
		if closed {
			pingAfterEnd = true
		}
		return ctx.Err()
	}
	a.closers = []func() error{func() error {
		mu.Lock()
		defer mu.Unlock()
		closed = true
		return nil
	}}

	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })

	a.Run(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, closed)
	assert.GreaterOrEqual(t, pings, 1)
	assert.False(t, pingAfterEnd, "no ping may reach a closed client")
}

/*************
 * Settings
 *************/

func TestTheme(t *testing.T) {
	a := newTestApp("")
	ctx := context.Background()

	require.NoError(t, a.Theme(ctx, nil))
	assert.Contains(t, a.out.String(), "Theme: system")

	require.NoError(t, a.Theme(ctx, []string{"dark"}))
	assert.Equal(t, models.ThemeDark, a.theme.theme)

	require.Error(t, a.Theme(ctx, []string{"purple"}))
	require.ErrorIs(t, a.Theme(ctx, []string{"a", "b"}), errUsage)
}

func TestPing_SetsMode(t *testing.T) {
	a := newTestApp("")
	require.NoError(t, a.Ping(context.Background()))
	assert.Equal(t, ModeOnline, a.Mode)

	a.account.pingErr = client.ErrUnavailable
	require.Error(t, a.Ping(context.Background()))
	assert.Equal(t, ModeOffline, a.Mode)
}

func TestReset_LogsOutAndClears(t *testing.T) {
	a := newTestApp("")
	a.store.state = session.State{User: &models.User{ID: "u1"}, IsAuthenticated: true}
	a.store.err = errors.New("offline")

	require.NoError(t, a.Reset(context.Background()))
	assert.Equal(t, 1, a.store.logouts)
	assert.Equal(t, 1, a.account.cleared)
}
