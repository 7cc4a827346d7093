// Package realtime fans database row changes out to subscribers.
//
// Postgres triggers NOTIFY every change on the table_changes channel; the
// Listener forwards each one to the Hub, which publishes it on the Redis
// channel "realtime:<table>". Every Subscribe stream holds its own Redis
// subscription, so any number of authority replicas can serve subscribers.
package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/instabids/internal/changefeed"
	"github.com/dmitrijs2005/instabids/internal/logging"
	pb "github.com/dmitrijs2005/instabids/internal/proto"
	"github.com/redis/go-redis/v9"
	"google.golang.org/protobuf/proto"
)

const channelPrefix = "realtime:"

// EventAll subscribes to every change type.
const EventAll = "*"

func channelName(table string) string {
	return channelPrefix + table
}

type Hub struct {
	rdb    redis.UniversalClient
	logger logging.Logger
}

func NewHub(rdb redis.UniversalClient, logger logging.Logger) *Hub {
	return &Hub{rdb: rdb, logger: logger}
}

// Publish sends ev to the subscribers of its table. Events travel through
// Redis in their protobuf encoding.
func (h *Hub) Publish(ctx context.Context, ev *pb.ChangeEvent) error {
	payload, err := proto.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode change event: %w", err)
	}
	if err := h.rdb.Publish(ctx, channelName(ev.GetTable()), payload).Err(); err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}
	return nil
}

// Subscription delivers the matching changes of one table until closed.
type Subscription struct {
	ps     *redis.PubSub
	events chan *pb.ChangeEvent
	done   chan struct{}
	once   sync.Once
}

// Events is closed when the subscription ends.
func (s *Subscription) Events() <-chan *pb.ChangeEvent {
	return s.events
}

func (s *Subscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})
	return err
}

// Subscribe starts receiving changes to table. It returns once Redis has
// confirmed the subscription, so no change published afterwards is missed.
// event is INSERT, UPDATE, DELETE or EventAll; filter may be nil.
func (h *Hub) Subscribe(ctx context.Context, table, event string, filter *changefeed.Filter) (*Subscription, error) {
	ps := h.rdb.Subscribe(ctx, channelName(table))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", table, err)
	}

	sub := &Subscription{
		ps:     ps,
		events: make(chan *pb.ChangeEvent),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.events)
		for msg := range ps.Channel() {
			ev := &pb.ChangeEvent{}
			if err := proto.Unmarshal([]byte(msg.Payload), ev); err != nil {
				h.logger.Warn(ctx, "dropping malformed change event", "channel", msg.Channel, "error", err)
				continue
			}
			if !Matches(ev, event, filter) {
				continue
			}
			select {
			case sub.events <- ev:
			case <-sub.done:
				return
			}
		}
	}()

	return sub, nil
}

// Matches reports whether ev passes the event type and row filter. DELETE
// events are matched against the old row.
func Matches(ev *pb.ChangeEvent, event string, filter *changefeed.Filter) bool {
	if event != "" && event != EventAll && event != ev.GetType() {
		return false
	}
	if filter == nil {
		return true
	}

	row := ev.GetRecord()
	if isNull(row) {
		row = ev.GetOldRecord()
	}
	if isNull(row) {
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(row))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return false
	}
	v, ok := fields[filter.Column]
	if !ok || v == nil {
		return false
	}
	return fmt.Sprint(v) == filter.Value
}

func isNull(raw []byte) bool {
	return len(raw) == 0 || string(raw) == "null"
}
