package client

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/realtime"
)

// AuthListener receives session transitions. session is nil for SIGNED_OUT.
type AuthListener = func(event models.AuthChangeEvent, session *models.AuthSession)

// authEvent carries the listeners registered when it was emitted; later
// registrations never see it.
type authEvent struct {
	event   models.AuthChangeEvent
	session *models.AuthSession
	targets []listenerEntry
}

type listenerEntry struct {
	id uint64
	fn AuthListener
}

// authListeners queues events without blocking the emitter and delivers them
// from a single goroutine, so a listener may call back into the client.
type authListeners struct {
	mu      sync.Mutex
	nextID  uint64
	entries []listenerEntry
	queue   []authEvent
	wake    chan struct{}
}

func (l *authListeners) init() {
	l.wake = make(chan struct{}, 1)
}

func (l *authListeners) add(fn AuthListener) *realtime.Subscription {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listenerEntry{id: id, fn: fn})
	l.mu.Unlock()

	return realtime.Opened("auth-state", func() { l.remove(id) })
}

func (l *authListeners) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *authListeners) active(id uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.id == id {
			return true
		}
	}
	return false
}

func (l *authListeners) emit(event models.AuthChangeEvent, session *models.AuthSession) {
	l.mu.Lock()
	targets := append([]listenerEntry(nil), l.entries...)
	l.queue = append(l.queue, authEvent{event: event, session: session, targets: targets})
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *authListeners) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}

		for {
			l.mu.Lock()
			if len(l.queue) == 0 {
				l.mu.Unlock()
				break
			}
			ev := l.queue[0]
			l.queue = l.queue[1:]
			l.mu.Unlock()

			for _, e := range ev.targets {
				if ctx.Err() != nil {
					return
				}
				if !l.active(e.id) {
					continue
				}
				e.fn(ev.event, ev.session)
			}
		}
	}
}
