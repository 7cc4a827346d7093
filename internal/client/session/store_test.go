package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/instabids/internal/client/client"
	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/common"
	"github.com/dmitrijs2005/instabids/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func newTestStore(t *testing.T, remote *fakeRemote, storage *memKV) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), remote, storage, logging.NewNop())
	require.NoError(t, err)
	return s
}

func aliceSession() *models.AuthSession {
	return &models.AuthSession{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresAt:    time.Now().Add(time.Hour),
		User: models.AuthUser{
			ID:        "u1",
			Email:     "a@b.com",
			CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func loggedInStore(t *testing.T) (*Store, *fakeRemote, *memKV) {
	t.Helper()
	remote := newFakeRemote()
	remote.session = aliceSession()
	remote.profiles["u1"] = &models.Profile{
		ID:       "u1",
		Username: "alice",
		FullName: models.String("Alice Doe"),
		Bio:      models.String("collector"),
		Phone:    models.String("+100"),
	}
	storage := newMemKV()
	s := newTestStore(t, remote, storage)
	require.NoError(t, s.Login(context.Background(), "a@b.com", "pw"))
	return s, remote, storage
}

func persistedState(t *testing.T, storage *memKV) persisted {
	t.Helper()
	raw, err := storage.Get(context.Background(), common.AuthStorageKey)
	require.NoError(t, err)
	require.NotNil(t, raw, "auth state must be persisted")
	var p persisted
	require.NoError(t, json.Unmarshal(raw, &p))
	return p
}

/*************
 * Construction
 *************/

func TestNewStore_EmptyStorage(t *testing.T) {
	s := newTestStore(t, newFakeRemote(), newMemKV())

	st := s.State()
	assert.Nil(t, st.User)
	assert.False(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
}

func TestNewStore_RestoresPersistedUser(t *testing.T) {
	storage := newMemKV()
	raw, err := json.Marshal(persisted{User: &models.User{ID: "u1", Username: "alice"}, IsAuthenticated: true})
	require.NoError(t, err)
	require.NoError(t, storage.Set(context.Background(), common.AuthStorageKey, raw))

	s := newTestStore(t, newFakeRemote(), storage)

	require.NotNil(t, s.User())
	assert.Equal(t, "alice", s.User().Username)
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
}

func TestNewStore_RestoreRederivesAuthenticated(t *testing.T) {
	storage := newMemKV()
	require.NoError(t, storage.Set(context.Background(), common.AuthStorageKey, []byte(`{"user":null,"isAuthenticated":true}`)))

	s := newTestStore(t, newFakeRemote(), storage)
	assert.False(t, s.IsAuthenticated())
}

func TestNewStore_DiscardsUnreadableState(t *testing.T) {
	storage := newMemKV()
	require.NoError(t, storage.Set(context.Background(), common.AuthStorageKey, []byte(`{not json`)))

	s := newTestStore(t, newFakeRemote(), storage)
	assert.Nil(t, s.User())
}

func TestNewStore_StorageError(t *testing.T) {
	storage := newMemKV()
	storage.getErr = errors.New("disk gone")

	_, err := NewStore(context.Background(), newFakeRemote(), storage, nil)
	require.ErrorIs(t, err, storage.getErr)
}

/*************
 * Login
 *************/

func TestLogin_UnverifiedUserWithDefaults(t *testing.T) {
	remote := newFakeRemote()
	remote.session = aliceSession()
	remote.profiles["u1"] = &models.Profile{ID: "u1", Username: "alice"}
	storage := newMemKV()
	s := newTestStore(t, remote, storage)

	require.NoError(t, s.Login(context.Background(), "a@b.com", "pw"))

	u := s.User()
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "a@b.com", u.Email)
	assert.Equal(t, "alice", u.Username)
	assert.False(t, u.IsVerified)
	assert.Equal(t, models.DefaultNotificationPreferences(), u.NotificationPreferences)
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())

	p := persistedState(t, storage)
	assert.True(t, p.IsAuthenticated)
	require.NotNil(t, p.User)
	assert.Equal(t, "alice", p.User.Username)
}

func TestLogin_MergesProfile(t *testing.T) {
	confirmed := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	prefs := models.NotificationPreferences{BidAlerts: true}

	remote := newFakeRemote()
	remote.session = aliceSession()
	remote.session.User.EmailConfirmedAt = &confirmed
	remote.profiles["u1"] = &models.Profile{
		ID:                      "u1",
		Username:                "alice",
		AvatarURL:               models.String("https://cdn/avatar.png"),
		NotificationPreferences: &prefs,
		UpdatedAt:               &updated,
	}
	s := newTestStore(t, remote, newMemKV())

	require.NoError(t, s.Login(context.Background(), "a@b.com", "pw"))

	u := s.User()
	assert.True(t, u.IsVerified)
	assert.Equal(t, prefs, u.NotificationPreferences)
	require.NotNil(t, u.AvatarURL)
	assert.Equal(t, "https://cdn/avatar.png", *u.AvatarURL)
	assert.Equal(t, updated, u.UpdatedAt)
	assert.Equal(t, remote.session.User.CreatedAt, u.CreatedAt)
}

func TestLogin_MissingProfile(t *testing.T) {
	remote := newFakeRemote()
	remote.session = aliceSession()
	s := newTestStore(t, remote, newMemKV())

	require.NoError(t, s.Login(context.Background(), "a@b.com", "pw"))
	assert.Empty(t, s.User().Username)
	assert.Equal(t, models.DefaultNotificationPreferences(), s.User().NotificationPreferences)
	assert.True(t, s.IsAuthenticated())
}

func TestLogin_RemoteErrorLeavesStateUnchanged(t *testing.T) {
	remoteErr := &client.RemoteError{Code: codes.Unauthenticated, Message: "invalid login credentials", Kind: client.ErrInvalidCredentials}
	remote := newFakeRemote()
	remote.signInErr = remoteErr
	storage := newMemKV()
	s := newTestStore(t, remote, storage)

	err := s.Login(context.Background(), "a@b.com", "wrong")

	require.Same(t, remoteErr, err, "remote errors are returned verbatim")
	assert.ErrorIs(t, err, client.ErrInvalidCredentials)
	assert.Equal(t, State{}, s.State())
	assert.Equal(t, 0, remote.profileCalls)
	assert.Empty(t, storage.data)
}

func TestLogin_ProfileErrorLeavesStateUnchanged(t *testing.T) {
	remote := newFakeRemote()
	remote.session = aliceSession()
	remote.profileErr = errRemote
	s := newTestStore(t, remote, newMemKV())

	err := s.Login(context.Background(), "a@b.com", "pw")
	require.ErrorIs(t, err, errRemote)
	assert.Equal(t, State{}, s.State())
}

func TestLogin_AuthenticatedIffUserHasID(t *testing.T) {
	remote := newFakeRemote()
	s := newTestStore(t, remote, newMemKV())

	for _, id := range []string{"u1", "u2", "u3"} {
		sess := aliceSession()
		sess.User.ID = id
		remote.mu.Lock()
		remote.session = sess
		remote.mu.Unlock()

		require.NoError(t, s.Login(context.Background(), "a@b.com", "pw"))

		st := s.State()
		assert.Equal(t, st.User != nil && st.User.ID != "", st.IsAuthenticated)
		assert.Equal(t, id, st.User.ID)
	}
}

func TestLogin_PersistFailureIsReturned(t *testing.T) {
	remote := newFakeRemote()
	remote.session = aliceSession()
	storage := newMemKV()
	storage.setErr = errors.New("read-only")
	s := newTestStore(t, remote, storage)

	err := s.Login(context.Background(), "a@b.com", "pw")
	require.ErrorIs(t, err, storage.setErr)
	assert.False(t, s.IsLoading())
}

/*************
 * isLoading
 *************/

func TestIsLoading_TrueOnlyWhileInFlight(t *testing.T) {
	remote := newFakeRemote()
	remote.session = aliceSession()
	remote.gate = make(chan struct{})
	s := newTestStore(t, remote, newMemKV())

	assert.False(t, s.IsLoading())

	done := make(chan error, 1)
	go func() { done <- s.Login(context.Background(), "a@b.com", "pw") }()

	require.Eventually(t, s.IsLoading, time.Second, time.Millisecond)
	close(remote.gate)

	require.NoError(t, <-done)
	assert.False(t, s.IsLoading())
}

func TestIsLoading_ResetOnEveryExitPath(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		run  func(s *Store) error
		prep func(r *fakeRemote)
	}{
		{name: "login ok", run: func(s *Store) error { return s.Login(ctx, "a@b.com", "pw") }},
		{name: "login error", prep: func(r *fakeRemote) { r.signInErr = errRemote }, run: func(s *Store) error { return s.Login(ctx, "a@b.com", "pw") }},
		{name: "signup ok", run: func(s *Store) error { return s.Signup(ctx, "b@b.com", "pw", "bob") }},
		{name: "signup taken", run: func(s *Store) error { return s.Signup(ctx, "b@b.com", "pw", "alice") }},
		{name: "signup error", prep: func(r *fakeRemote) { r.signUpErr = errRemote }, run: func(s *Store) error { return s.Signup(ctx, "b@b.com", "pw", "bob") }},
		{name: "logout ok", run: func(s *Store) error { return s.Logout(ctx) }},
		{name: "logout error", prep: func(r *fakeRemote) { r.signOutErr = errRemote }, run: func(s *Store) error { return s.Logout(ctx) }},
		{name: "update error", prep: func(r *fakeRemote) { r.updateErr = errRemote }, run: func(s *Store) error {
			if err := s.Login(ctx, "a@b.com", "pw"); err != nil {
				return err
			}
			return s.UpdateProfile(ctx, models.ProfileUpdate{Bio: models.String("x")})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newFakeRemote()
			remote.session = aliceSession()
			remote.profiles["u1"] = &models.Profile{ID: "u1", Username: "alice"}
			if tt.prep != nil {
				tt.prep(remote)
			}
			s := newTestStore(t, remote, newMemKV())

			var sawLoading bool
			sub := s.OnChange(func(st State) {
				if st.IsLoading {
					sawLoading = true
				}
			})
			defer sub.Close()

			_ = tt.run(s)

			assert.True(t, sawLoading)
			assert.False(t, s.IsLoading())
		})
	}
}

func TestOperations_AreSerialised(t *testing.T) {
	remote := newFakeRemote()
	remote.session = aliceSession()
	remote.profiles["u1"] = &models.Profile{ID: "u1", Username: "alice"}
	s := newTestStore(t, remote, newMemKV())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Login(context.Background(), "a@b.com", "pw")
		}()
		go func() {
			defer wg.Done()
			_ = s.Logout(context.Background())
		}()
	}
	wg.Wait()

	st := s.State()
	assert.False(t, st.IsLoading, "a finished operation must not leave the flag set")
	assert.Equal(t, st.User != nil && st.User.ID != "", st.IsAuthenticated)
}

/*************
 * Signup
 *************/

func TestSignup_UsernameTaken(t *testing.T) {
	remote := newFakeRemote()
	remote.profiles["u1"] = &models.Profile{ID: "u1", Username: "alice"}
	s := newTestStore(t, remote, newMemKV())

	err := s.Signup(context.Background(), "new@b.com", "pw", "alice")

	require.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, 0, remote.signUpCalls)
	assert.False(t, s.IsLoading())
}

func TestSignup_CreatesAccountWithoutAuthenticating(t *testing.T) {
	remote := newFakeRemote()
	s := newTestStore(t, remote, newMemKV())

	require.NoError(t, s.Signup(context.Background(), "new@b.com", "pw", "bob"))

	assert.Equal(t, 1, remote.signUpCalls)
	assert.Equal(t, map[string]string{"username": "bob"}, remote.lastSignUp)
	assert.Equal(t, State{}, s.State())
}

func TestSignup_Errors(t *testing.T) {
	remote := newFakeRemote()
	remote.findErr = errRemote
	s := newTestStore(t, remote, newMemKV())

	require.ErrorIs(t, s.Signup(context.Background(), "new@b.com", "pw", "bob"), errRemote)
	assert.Equal(t, 0, remote.signUpCalls)

	remote.findErr = nil
	remote.signUpErr = client.ErrAlreadyExists
	require.ErrorIs(t, s.Signup(context.Background(), "new@b.com", "pw", "bob"), client.ErrAlreadyExists)
}

/*************
 * Logout
 *************/

func TestLogout_ClearsState(t *testing.T) {
	s, remote, storage := loggedInStore(t)

	require.NoError(t, s.Logout(context.Background()))

	assert.Equal(t, 1, remote.signOutCalls)
	assert.Equal(t, State{}, s.State())

	p := persistedState(t, storage)
	assert.Nil(t, p.User)
	assert.False(t, p.IsAuthenticated)
}

func TestLogout_ErrorLeavesStateUnchanged(t *testing.T) {
	s, remote, _ := loggedInStore(t)
	before := s.State()
	remote.signOutErr = client.ErrUnavailable

	err := s.Logout(context.Background())

	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, before, s.State())
}

/*************
 * UpdateProfile
 *************/

func TestUpdateProfile_NotLoggedIn(t *testing.T) {
	remote := newFakeRemote()
	s := newTestStore(t, remote, newMemKV())
	before := s.State()

	var transitions []State
	sub := s.OnChange(func(st State) { transitions = append(transitions, st) })
	defer sub.Close()

	err := s.UpdateProfile(context.Background(), models.ProfileUpdate{Bio: models.String("x")})

	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, before, s.State())
	assert.Nil(t, remote.lastUpdate)
	assert.Empty(t, transitions, "a local rejection never toggles IsLoading")
}

func TestUpdateProfile_OnlyProvidedFieldsChange(t *testing.T) {
	s, remote, storage := loggedInStore(t)
	before := s.User()

	require.NoError(t, s.UpdateProfile(context.Background(), models.ProfileUpdate{Bio: models.String("x")}))

	assert.Equal(t, "u1", remote.lastUpdateID)
	require.NotNil(t, remote.lastUpdate)
	assert.Nil(t, remote.lastUpdate.Username)

	after := s.User()
	require.NotNil(t, after.Bio)
	assert.Equal(t, "x", *after.Bio)

	want := before.Clone()
	want.Bio = models.String("x")
	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(after)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))

	assert.Equal(t, "x", *persistedState(t, storage).User.Bio)
}

func TestUpdateProfile_RemoteError(t *testing.T) {
	s, remote, _ := loggedInStore(t)
	before := s.State()
	remote.updateErr = client.ErrForbidden

	err := s.UpdateProfile(context.Background(), models.ProfileUpdate{FullName: models.String("Eve")})

	require.ErrorIs(t, err, client.ErrForbidden)
	assert.Equal(t, before, s.State())
}

func TestUpdateProfile_EmptyUpdateIsNoop(t *testing.T) {
	s, remote, _ := loggedInStore(t)

	require.NoError(t, s.UpdateProfile(context.Background(), models.ProfileUpdate{}))
	assert.Nil(t, remote.lastUpdate)
}

/*************
 * Reconcile
 *************/

func TestReconcile_SessionAdoptsUserWithoutPassword(t *testing.T) {
	remote := newFakeRemote()
	remote.profiles["u1"] = &models.Profile{ID: "u1", Username: "alice"}
	s := newTestStore(t, remote, newMemKV())

	require.NoError(t, s.Reconcile(context.Background(), aliceSession()))

	assert.Equal(t, 0, remote.signInCalls)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "alice", s.User().Username)
	assert.False(t, s.IsLoading())
}

func TestReconcile_NilClearsLocally(t *testing.T) {
	s, remote, storage := loggedInStore(t)

	require.NoError(t, s.Reconcile(context.Background(), nil))

	assert.Equal(t, 0, remote.signOutCalls)
	assert.Equal(t, State{}, s.State())
	assert.False(t, persistedState(t, storage).IsAuthenticated)
}

func TestReconcile_ProfileError(t *testing.T) {
	remote := newFakeRemote()
	remote.profileErr = errRemote
	s := newTestStore(t, remote, newMemKV())

	require.ErrorIs(t, s.Reconcile(context.Background(), aliceSession()), errRemote)
	assert.Nil(t, s.User())
}

/*************
 * OnChange
 *************/

func TestOnChange_StopsAfterClose(t *testing.T) {
	remote := newFakeRemote()
	remote.session = aliceSession()
	s := newTestStore(t, remote, newMemKV())

	var states []State
	sub := s.OnChange(func(st State) { states = append(states, st) })

	require.NoError(t, s.Login(context.Background(), "a@b.com", "pw"))
	require.Len(t, states, 3)
	assert.True(t, states[0].IsLoading)
	assert.True(t, states[1].IsAuthenticated)
	assert.False(t, states[2].IsLoading)

	require.NoError(t, sub.Close())
	require.NoError(t, s.Logout(context.Background()))
	assert.Len(t, states, 3)
}

func TestState_ReturnsCopy(t *testing.T) {
	s, _, _ := loggedInStore(t)

	u := s.User()
	u.Username = "mallory"
	*u.Bio = "changed"

	assert.Equal(t, "alice", s.User().Username)
	assert.Equal(t, "collector", *s.User().Bio)
}
