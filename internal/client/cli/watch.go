package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/realtime"
)

// formatChange renders one change event. Bids and auctions are decoded into
// their records; other tables are shown as raw JSON.
func formatChange(ev models.ChangeEvent) string {
	switch ev.Table {
	case "bids":
		if b, err := models.DecodeRecord[models.Bid](ev); err == nil {
			return fmt.Sprintf("[%s] bid %s: %.2f on auction %s by %s", ev.Type, b.ID, b.Amount, b.AuctionID, b.BidderID)
		}
	case "auctions":
		if au, err := models.DecodeRecord[models.Auction](ev); err == nil {
			return fmt.Sprintf("[%s] auction %s %q: %s, current %.2f, %d bids", ev.Type, au.ID, au.Title, au.Status, au.CurrentPrice, au.BidCount)
		}
	}

	raw := ev.Record
	if len(raw) == 0 {
		raw = ev.OldRecord
	}
	return fmt.Sprintf("[%s] %s: %s", ev.Type, ev.Table, raw)
}

// Watch subscribes to a table's change feed: watch <table> [column=eq.value].
// A table can be watched once at a time.
func (a *App) Watch(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	table, filter := args[0], ""
	if len(args) == 2 {
		filter = args[1]
	}

	a.mu.Lock()
	_, exists := a.watches[table]
	a.mu.Unlock()
	if exists {
		return fmt.Errorf("already watching %s", table)
	}

	sub, err := realtime.Subscribe(ctx, a.channels, table, func(ev models.ChangeEvent) {
		a.printf("%s\n", formatChange(ev))
	}, filter)
	if err != nil {
		return err
	}

	a.mu.Lock()
	if _, exists := a.watches[table]; exists {
		a.mu.Unlock()
		_ = sub.Close()
		return fmt.Errorf("already watching %s", table)
	}
	a.watches[table] = sub
	a.mu.Unlock()

	a.printf("Watching %s\n", table)
	return nil
}

// Unwatch closes the feed for a table, or lists active feeds without arguments.
func (a *App) Unwatch(_ context.Context, args []string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(args) == 0 {
		names := make([]string, 0, len(a.watches))
		for name := range a.watches {
			names = append(names, name)
		}
		sort.Strings(names)
		a.printf("Watching: %v\n", names)
		return nil
	}

	sub, ok := a.watches[args[0]]
	if !ok {
		return fmt.Errorf("not watching %s", args[0])
	}
	delete(a.watches, args[0])
	return sub.Close()
}
