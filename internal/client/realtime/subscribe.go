package realtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/instabids/internal/changefeed"
	"github.com/dmitrijs2005/instabids/internal/client/models"
)

// DefaultSchema is the schema every public table lives in.
const DefaultSchema = "public"

var (
	ErrInvalidTable = errors.New("table name is required")
)

// ChannelSpec describes one change feed.
type ChannelSpec struct {
	Name   string
	Schema string
	Table  string
	Event  models.ChangeEventType
	Filter string
}

// Channels opens change feeds. The handler is invoked once per event, in
// arrival order, from a goroutine owned by the implementation.
type Channels interface {
	OpenChannel(ctx context.Context, spec ChannelSpec, handler func(models.ChangeEvent)) (*Subscription, error)
}

// ChannelName is the feed name used for table, "<table>_changes".
func ChannelName(table string) string {
	return table + "_changes"
}

// Subscribe opens exactly one feed for all event types on table and passes
// every event to callback unchanged. An empty filter subscribes to the whole
// table. Closing the returned handle stops the feed.
func Subscribe(ctx context.Context, channels Channels, table string, callback func(models.ChangeEvent), filter string) (*Subscription, error) {
	if strings.TrimSpace(table) == "" {
		return nil, ErrInvalidTable
	}
	if filter != "" {
		if _, err := changefeed.ParseFilter(filter); err != nil {
			return nil, err
		}
	}

	spec := ChannelSpec{
		Name:   ChannelName(table),
		Schema: DefaultSchema,
		Table:  table,
		Event:  models.ChangeAll,
		Filter: filter,
	}

	sub, err := channels.OpenChannel(ctx, spec, callback)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", table, err)
	}
	return sub, nil
}
