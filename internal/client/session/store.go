package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/realtime"
	"github.com/dmitrijs2005/instabids/internal/client/repositories/kv"
	"github.com/dmitrijs2005/instabids/internal/common"
	"github.com/dmitrijs2005/instabids/internal/logging"
)

// Remote is the part of the authority the store talks to.
type Remote interface {
	SignInWithPassword(ctx context.Context, email, password string) (*models.AuthSession, error)
	SignUp(ctx context.Context, email, password string, data map[string]string) (*models.AuthUser, error)
	SignOut(ctx context.Context) error
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	FindProfileByUsername(ctx context.Context, username string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.Profile, error)
}

// State is a snapshot of the store. IsAuthenticated is true exactly when User
// is set and has an id.
type State struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
}

// persisted is the part of State written to local storage.
type persisted struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

type Store struct {
	remote  Remote
	storage kv.Repository
	logger  logging.Logger

	// opMu serialises Login, Signup, Logout, UpdateProfile and Reconcile.
	opMu sync.Mutex
	// writeMu orders state writes with their persistence and notification.
	writeMu sync.Mutex

	mu        sync.RWMutex
	state     State
	nextID    uint64
	listeners map[uint64]func(State)
}

// NewStore restores the last persisted user from storage. Unreadable stored
// state is logged and discarded.
func NewStore(ctx context.Context, remote Remote, storage kv.Repository, logger logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Store{
		remote:    remote,
		storage:   storage,
		logger:    logger,
		listeners: make(map[uint64]func(State)),
	}

	raw, err := storage.Get(ctx, common.AuthStorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to restore auth state: %w", err)
	}
	if raw != nil {
		var p persisted
		if err := json.Unmarshal(raw, &p); err != nil {
			logger.Warn(ctx, "discarding unreadable auth state", "error", err)
		} else {
			s.state.User = p.User
			s.state.IsAuthenticated = authenticated(p.User)
		}
	}
	return s, nil
}

func authenticated(u *models.User) bool {
	return u != nil && u.ID != ""
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.User = st.User.Clone()
	return st
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User.Clone()
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLoading
}

// OnChange calls fn with a snapshot after every state change until the
// returned handle is closed. fn runs on the goroutine that made the change
// and must not call back into the store's mutating operations.
func (s *Store) OnChange(fn func(State)) *realtime.Subscription {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	s.mu.Unlock()

	return realtime.Opened("auth-store", func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	})
}

// update applies mutate, re-derives IsAuthenticated, persists the user
// projection when it changed and notifies listeners.
func (s *Store) update(ctx context.Context, mutate func(*State)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	prevUser, prevAuth := s.state.User, s.state.IsAuthenticated
	mutate(&s.state)
	s.state.IsAuthenticated = authenticated(s.state.User)
	changed := s.state.User != prevUser || s.state.IsAuthenticated != prevAuth
	snapshot := s.state
	snapshot.User = snapshot.User.Clone()
	fns := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	var err error
	if changed {
		err = s.persist(ctx, snapshot)
	}

	for _, fn := range fns {
		fn(snapshot)
	}
	return err
}

func (s *Store) persist(ctx context.Context, st State) error {
	p := persisted{User: st.User, IsAuthenticated: st.IsAuthenticated}
	if err := kv.SetJSON(ctx, s.storage, common.AuthStorageKey, p); err != nil {
		s.logger.Error(ctx, "failed to persist auth state", "error", err)
		return err
	}
	return nil
}

func (s *Store) setLoading(ctx context.Context, loading bool) {
	// only the user projection is persisted, so this cannot fail
	_ = s.update(ctx, func(st *State) { st.IsLoading = loading })
}

// begin marks an operation in flight; the returned func clears the flag and
// must run on every exit path.
func (s *Store) begin(ctx context.Context) func() {
	s.opMu.Lock()
	s.setLoading(ctx, true)
	return func() {
		s.setLoading(context.WithoutCancel(ctx), false)
		s.opMu.Unlock()
	}
}

func (s *Store) setUser(ctx context.Context, u *models.User) error {
	return s.update(ctx, func(st *State) { st.User = u })
}

// buildUser merges the session's auth user with its profile row. A missing
// profile leaves the profile fields empty.
func (s *Store) buildUser(ctx context.Context, session *models.AuthSession) (*models.User, error) {
	profile, err := s.remote.GetProfile(ctx, session.User.ID)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:                      session.User.ID,
		Email:                   session.User.Email,
		CreatedAt:               session.User.CreatedAt,
		UpdatedAt:               session.User.CreatedAt,
		IsVerified:              session.User.EmailConfirmedAt != nil,
		NotificationPreferences: models.DefaultNotificationPreferences(),
	}
	if profile == nil {
		return u, nil
	}

	u.Username = profile.Username
	u.FullName = profile.FullName
	u.AvatarURL = profile.AvatarURL
	u.Bio = profile.Bio
	u.Phone = profile.Phone
	if profile.NotificationPreferences != nil {
		u.NotificationPreferences = *profile.NotificationPreferences
	}
	if profile.UpdatedAt != nil {
		u.UpdatedAt = *profile.UpdatedAt
	}
	return u, nil
}

// Login signs in with a password and adopts the resulting user. On any remote
// failure the state is left as it was and the error is returned as is.
func (s *Store) Login(ctx context.Context, email, password string) error {
	defer s.begin(ctx)()

	session, err := s.remote.SignInWithPassword(ctx, email, password)
	if err != nil {
		s.logger.Error(ctx, "login failed", "email", email, "error", err)
		return err
	}

	u, err := s.buildUser(ctx, session)
	if err != nil {
		s.logger.Error(ctx, "failed to load profile", "user_id", session.User.ID, "error", err)
		return err
	}

	s.logger.Info(ctx, "logged in", "user_id", u.ID)
	return s.setUser(ctx, u)
}

// Signup creates an account with username stored in its metadata. The new
// account has to confirm its email before it can log in, so Signup never
// authenticates the store.
func (s *Store) Signup(ctx context.Context, email, password, username string) error {
	defer s.begin(ctx)()

	existing, err := s.remote.FindProfileByUsername(ctx, username)
	if err != nil {
		s.logger.Error(ctx, "username check failed", "username", username, "error", err)
		return err
	}
	if existing != nil {
		s.logger.Error(ctx, "signup failed", "username", username, "error", ErrUsernameTaken)
		return ErrUsernameTaken
	}

	if _, err := s.remote.SignUp(ctx, email, password, map[string]string{"username": username}); err != nil {
		s.logger.Error(ctx, "signup failed", "email", email, "error", err)
		return err
	}
	return nil
}

func (s *Store) Logout(ctx context.Context) error {
	defer s.begin(ctx)()

	if err := s.remote.SignOut(ctx); err != nil {
		s.logger.Error(ctx, "logout failed", "error", err)
		return err
	}

	s.logger.Info(ctx, "logged out")
	return s.setUser(ctx, nil)
}

// UpdateProfile sends the provided fields to the current user's profile and,
// once accepted, replaces exactly those fields locally.
func (s *Store) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	if s.User() == nil {
		s.logger.Error(ctx, "profile update failed", "error", ErrNotLoggedIn)
		return ErrNotLoggedIn
	}
	if update.IsEmpty() {
		return nil
	}

	defer s.begin(ctx)()

	// a Logout may have won the race for the operation lock
	current := s.User()
	if current == nil {
		s.logger.Error(ctx, "profile update failed", "error", ErrNotLoggedIn)
		return ErrNotLoggedIn
	}

	if _, err := s.remote.UpdateProfile(ctx, current.ID, update); err != nil {
		s.logger.Error(ctx, "profile update failed", "user_id", current.ID, "error", err)
		return err
	}

	return s.update(ctx, func(st *State) {
		if st.User != nil && st.User.ID == current.ID {
			st.User = update.ApplyTo(st.User)
		}
	})
}

// Reconcile adopts a session reported by the authority without going through
// the password path. A nil session clears the store locally; nothing is sent
// to the authority.
func (s *Store) Reconcile(ctx context.Context, session *models.AuthSession) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if session == nil {
		return s.setUser(ctx, nil)
	}

	u, err := s.buildUser(ctx, session)
	if err != nil {
		s.logger.Error(ctx, "failed to reconcile session", "user_id", session.User.ID, "error", err)
		return err
	}
	return s.setUser(ctx, u)
}
