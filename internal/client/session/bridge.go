package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/realtime"
	"github.com/dmitrijs2005/instabids/internal/logging"
)

// SessionFeed is the authority's view of the current session.
type SessionFeed interface {
	GetSession(ctx context.Context) (*models.AuthSession, error)
	OnAuthStateChange(listener func(event models.AuthChangeEvent, session *models.AuthSession)) *realtime.Subscription
}

// Reconciler adopts or clears a remote session. *Store implements it.
type Reconciler interface {
	Reconcile(ctx context.Context, session *models.AuthSession) error
}

// Bridge keeps a Reconciler in step with the remote session.
//
// Start queries the current session and registers a change listener
// concurrently; either may finish first. Once a listener event has been
// applied, a late initial-query result is stale and is dropped. After Close
// returns no further reconciliation happens.
type Bridge struct {
	feed   SessionFeed
	store  Reconciler
	logger logging.Logger
	handle *realtime.Subscription

	// mu is held while an event is reconciled so Close can't interleave.
	mu       sync.Mutex
	started  bool
	closed   bool
	applied  int
	listener *realtime.Subscription

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewBridge(feed SessionFeed, store Reconciler, logger logging.Logger) *Bridge {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Bridge{
		feed:   feed,
		store:  store,
		logger: logger,
		handle: realtime.NewSubscription("session-bridge"),
	}
}

// Start activates the bridge. It returns without waiting for the initial
// session query; ctx only supplies values, its cancellation does not stop
// the bridge.
func (b *Bridge) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		return ErrBridgeStarted
	}
	b.started = true
	b.ctx, b.cancel = context.WithCancel(context.WithoutCancel(ctx))
	b.mu.Unlock()

	if !b.handle.Open(b.teardown) {
		return ErrBridgeClosed
	}

	b.wg.Add(2)
	go func() {
		defer b.wg.Done()
		b.loadInitial()
	}()
	go func() {
		defer b.wg.Done()
		b.register()
	}()
	return nil
}

// Close unsubscribes from the session feed exactly once. It is safe before
// Start, while the listener is still being registered and more than once.
// It must not be called from inside a reconciliation.
func (b *Bridge) Close() error {
	err := b.handle.Close()
	b.wg.Wait()
	return err
}

func (b *Bridge) State() realtime.State {
	return b.handle.State()
}

// teardown runs once, and only after Start has set cancel.
func (b *Bridge) teardown() {
	// stop an in-flight reconciliation before waiting for it
	b.cancel()

	b.mu.Lock()
	b.closed = true
	sub := b.listener
	b.listener = nil
	b.mu.Unlock()

	if sub != nil {
		_ = sub.Close()
	}
}

func (b *Bridge) register() {
	sub := b.feed.OnAuthStateChange(b.onAuthEvent)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		// closed while registering: the listener arrived too late
		_ = sub.Close()
		return
	}
	b.listener = sub
	b.mu.Unlock()
}

func (b *Bridge) loadInitial() {
	session, err := b.feed.GetSession(b.ctx)
	if err != nil {
		b.logger.Error(b.ctx, "failed to get initial session", "error", err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case b.closed:
		return
	case b.applied > 0:
		b.logger.Debug(b.ctx, "dropping stale initial session")
		return
	}

	// no remote session: a user restored from local storage is stale
	if err := b.store.Reconcile(b.ctx, session); err != nil {
		b.logger.Error(b.ctx, "failed to reconcile initial session", "error", err)
	}
}

func (b *Bridge) onAuthEvent(event models.AuthChangeEvent, session *models.AuthSession) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.applied++

	b.logger.Debug(b.ctx, "auth state changed", "event", string(event), "has_session", session != nil)
	if err := b.store.Reconcile(b.ctx, session); err != nil {
		b.logger.Error(b.ctx, "failed to reconcile auth event", "event", string(event), "error", err)
	}
}
