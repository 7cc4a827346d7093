package realtime

import (
	"context"
		"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/instabids/internal/changefeed"
	"github.com/dmitrijs2005/instabids/internal/logging"
	pb "github.com/dmitrijs2005/instabids/internal/proto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func newTestHub(t *testing.T) (*Hub, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewHub(rdb, logging.NewNop()), mr
}

func bidEvent(typ, auctionID string, amount string) *pb.ChangeEvent {
	return &pb.ChangeEvent{
		Schema:          "public",
		Table:           "bids",
		Type:            typ,
		Record:          []byte(`{"id":"b1","auction_id":"` + auctionID + `","amount":` + amount + `}`),
		CommitTimestamp: timestamppb.Now(),
	}
}

func receive(t *testing.T, sub *Subscription) *pb.ChangeEvent {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "subscription closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return nil
	}
}

func TestHub_PublishSubscribe(t *testing.T) {
	hub, _ := newTestHub(t)
	ctx := context.Background()

	sub, err := hub.Subscribe(ctx, "bids", EventAll, nil)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, hub.Publish(ctx, bidEvent("INSERT", "a1", "12.50")))

	ev := receive(t, sub)
	assert.Equal(t, "bids", ev.GetTable())
	assert.Equal(t, "INSERT", ev.GetType())
	assert.JSONEq(t, `{"id":"b1","auction_id":"a1","amount":12.50}`, string(ev.GetRecord()))
	assert.False(t, ev.GetCommitTimestamp().AsTime().IsZero())
}

func TestHub_FilterAndEvent(t *testing.T) {
	hub, _ := newTestHub(t)
	ctx := context.Background()

	sub, err := hub.Subscribe(ctx, "bids", "INSERT", &changefeed.Filter{Column: "auction_id", Value: "a2"})
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, hub.Publish(ctx, bidEvent("INSERT", "a1", "1")))
	require.NoError(t, hub.Publish(ctx, bidEvent("UPDATE", "a2", "2")))
	require.NoError(t, hub.Publish(ctx, bidEvent("INSERT", "a2", "3")))

	ev := receive(t, sub)
	assert.Contains(t, string(ev.GetRecord()), `"amount":3`)
}

func TestHub_OtherTablesIgnored(t *testing.T) {
	hub, _ := newTestHub(t)
	ctx := context.Background()

	sub, err := hub.Subscribe(ctx, "auctions", EventAll, nil)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, hub.Publish(ctx, bidEvent("INSERT", "a1", "1")))

	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHub_CloseEndsEvents(t *testing.T) {
	hub, _ := newTestHub(t)

	sub, err := hub.Subscribe(context.Background(), "bids", EventAll, nil)
	require.NoError(t, err)
	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestHub_SubscribeFailsWhenRedisDown(t *testing.T) {
	hub, mr := newTestHub(t)
	mr.Close()

	_, err := hub.Subscribe(context.Background(), "bids", EventAll, nil)
	assert.Error(t, err)
}

func TestHub_MalformedPayloadSkipped(t *testing.T) {
	hub, mr := newTestHub(t)
	ctx := context.Background()

	sub, err := hub.Subscribe(ctx, "bids", EventAll, nil)
	require.NoError(t, err)
	defer sub.Close()

	mr.Publish(channelName("bids"), "\xff\xff")
	require.NoError(t, hub.Publish(ctx, bidEvent("INSERT", "a1", "7")))

	ev := receive(t, sub)
	assert.Contains(t, string(ev.GetRecord()), `"amount":7`)
}

func TestMatches(t *testing.T) {
	del := &pb.ChangeEvent{
		Table:     "bids",
		Type:      "DELETE",
		OldRecord: []byte(`{"auction_id":"a1","bid_count":3}`),
	}

	tests := []struct {
		name   string
		ev     *pb.ChangeEvent
		event  string
		filter *changefeed.Filter
		want   bool
	}{
		{"all events no filter", bidEvent("INSERT", "a1", "1"), EventAll, nil, true},
		{"empty event means all", bidEvent("UPDATE", "a1", "1"), "", nil, true},
		{"event mismatch", bidEvent("UPDATE", "a1", "1"), "INSERT", nil, false},
		{"filter match", bidEvent("INSERT", "a1", "1"), EventAll, &changefeed.Filter{Column: "auction_id", Value: "a1"}, true},
		{"filter mismatch", bidEvent("INSERT", "a1", "1"), EventAll, &changefeed.Filter{Column: "auction_id", Value: "a9"}, false},
		{"numeric keeps text", bidEvent("INSERT", "a1", "12.50"), EventAll, &changefeed.Filter{Column: "amount", Value: "12.50"}, true},
		{"missing column", bidEvent("INSERT", "a1", "1"), EventAll, &changefeed.Filter{Column: "seller_id", Value: "x"}, false},
		{"delete uses old row", del, EventAll, &changefeed.Filter{Column: "bid_count", Value: "3"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.ev, tt.event, tt.filter))
		})
	}
}
