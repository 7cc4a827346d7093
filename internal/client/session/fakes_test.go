package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/realtime"
)

/*************
 * Fake remote
 *************/

type fakeRemote struct {
	mu sync.Mutex

	// outputs preset
	session    *models.AuthSession
	signInErr  error
	signUpErr  error
	signOutErr error
	profiles   map[string]*models.Profile
	profileErr error
	findErr    error
	updateErr  error

	// optional gate: calls block until it is closed
	gate chan struct{}

	// inputs captured
	signInCalls  int
	signUpCalls  int
	signOutCalls int
	profileCalls int
	lastSignUp   map[string]string
	lastUpdate   *models.ProfileUpdate
	lastUpdateID string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{profiles: map[string]*models.Profile{}}
}

func (f *fakeRemote) wait(ctx context.Context) error {
	f.mu.Lock()
	gate := f.gate
	f.mu.Unlock()
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeRemote) SignInWithPassword(ctx context.Context, email, password string) (*models.AuthSession, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signInCalls++
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.session, nil
}

func (f *fakeRemote) SignUp(ctx context.Context, email, password string, data map[string]string) (*models.AuthUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signUpCalls++
	f.lastSignUp = data
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &models.AuthUser{ID: "new", Email: email, UserMetadata: data}, nil
}

func (f *fakeRemote) SignOut(ctx context.Context) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOutCalls++
	return f.signOutErr
}

func (f *fakeRemote) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profiles[id], nil
}

func (f *fakeRemote) FindProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, p := range f.profiles {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeRemote) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdateID = id
	f.lastUpdate = &update
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Profile{ID: id}, nil
}

/*************
 * In-memory kv
 *************/

type memKV struct {
	mu     sync.Mutex
	data   map[string][]byte
	setErr error
	getErr error
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memKV) List(_ context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string][]byte, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out, nil
}

func (m *memKV) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = map[string][]byte{}
	return nil
}

/*************
 * Fake session feed
 *************/

type fakeFeed struct {
	mu sync.Mutex

	session    *models.AuthSession
	sessionErr error
	// sessionGate / registerGate delay GetSession / OnAuthStateChange
	sessionGate  chan struct{}
	registerGate chan struct{}
	registered   chan struct{}

	listener      func(models.AuthChangeEvent, *models.AuthSession)
	registrations int
	teardowns     int
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{registered: make(chan struct{})}
}

func (f *fakeFeed) GetSession(ctx context.Context) (*models.AuthSession, error) {
	if f.sessionGate != nil {
		select {
		case <-f.sessionGate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session, f.sessionErr
}

func (f *fakeFeed) OnAuthStateChange(listener func(models.AuthChangeEvent, *models.AuthSession)) *realtime.Subscription {
	if f.registerGate != nil {
		<-f.registerGate
	}
	f.mu.Lock()
	f.listener = listener
	f.registrations++
	f.mu.Unlock()
	close(f.registered)

	return realtime.Opened("auth-state", func() {
		f.mu.Lock()
		f.teardowns++
		f.mu.Unlock()
	})
}

func (f *fakeFeed) emit(event models.AuthChangeEvent, s *models.AuthSession) {
	f.mu.Lock()
	l := f.listener
	f.mu.Unlock()
	l(event, s)
}

func (f *fakeFeed) counts() (registrations, teardowns int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registrations, f.teardowns
}

/*************
 * Recording reconciler
 *************/

type recordingReconciler struct {
	mu       sync.Mutex
	sessions []*models.AuthSession
	err      error
}

func (r *recordingReconciler) Reconcile(_ context.Context, s *models.AuthSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, s)
	return r.err
}

func (r *recordingReconciler) calls() []*models.AuthSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.AuthSession(nil), r.sessions...)
}

var errRemote = errors.New("remote failure")
