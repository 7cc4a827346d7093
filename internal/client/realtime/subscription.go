package realtime

import (
	"sync"
)

// State is the lifecycle stage of a Subscription.
type State int32

const (
	StateUnopened State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Subscription is a cancellation handle for a remote feed or a local listener
// registration. Transitions are Unopened -> Open -> Closed, or Unopened ->
// Closed when the handle is closed before the feed is attached.
type Subscription struct {
	name string

	mu       sync.Mutex
	state    State
	teardown func()
	done     chan struct{}
}

// NewSubscription returns an unopened handle. Attach the feed with Open.
func NewSubscription(name string) *Subscription {
	return &Subscription{name: name, done: make(chan struct{})}
}

// Opened returns a handle that is already open and owns teardown.
func Opened(name string, teardown func()) *Subscription {
	s := NewSubscription(name)
	s.Open(teardown)
	return s
}

// Open attaches teardown to an unopened handle. If the handle was closed in
// the meantime teardown runs immediately and Open reports false.
func (s *Subscription) Open(teardown func()) bool {
	s.mu.Lock()
	switch s.state {
	case StateUnopened:
		s.state = StateOpen
		s.teardown = teardown
		s.mu.Unlock()
		return true
	case StateClosed:
		s.mu.Unlock()
		if teardown != nil {
			teardown()
		}
		return false
	default:
		// already open: the second feed is not ours to keep
		s.mu.Unlock()
		if teardown != nil {
			teardown()
		}
		return false
	}
}

// Close tears the feed down. Only the first call has an effect; later calls
// return nil.
func (s *Subscription) Close() error {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return nil
	}
	teardown := s.teardown
	s.teardown = nil
	s.state = StateClosed
	close(s.done)
	s.mu.Unlock()

	if teardown != nil {
		teardown()
	}
	return nil
}

func (s *Subscription) Name() string { return s.name }

func (s *Subscription) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Subscription) Closed() bool { return s.State() == StateClosed }

// Done is closed once Close has been called.
func (s *Subscription) Done() <-chan struct{} { return s.done }
