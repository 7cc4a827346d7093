package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/instabids/internal/logging"
	pb "github.com/dmitrijs2005/instabids/internal/proto"
	"github.com/jackc/pgx/v5"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// NotifyChannel is the Postgres channel the change triggers notify on.
const NotifyChannel = "table_changes"

const reconnectDelay = 2 * time.Second

type publisher interface {
	Publish(ctx context.Context, ev *pb.ChangeEvent) error
}

// notification is the JSON payload the change trigger sends.
type notification struct {
	Schema          string          `json:"schema"`
	Table           string          `json:"table"`
	Type            string          `json:"type"`
	Record          json.RawMessage `json:"record"`
	OldRecord       json.RawMessage `json:"old_record"`
	CommitTimestamp time.Time       `json:"commit_timestamp"`
}

// Listener forwards Postgres change notifications to a publisher.
type Listener struct {
	dsn    string
	pub    publisher
	logger logging.Logger
}

func NewListener(dsn string, pub publisher, logger logging.Logger) *Listener {
	return &Listener{dsn: dsn, pub: pub, logger: logger}
}

// Run listens until ctx is cancelled, reconnecting after connection errors.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}
		l.logger.Error(ctx, "change listener disconnected", "error", err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{NotifyChannel}.Sanitize()); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	l.logger.Info(ctx, "listening for row changes", "channel", NotifyChannel)

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		if err := l.handleNotification(ctx, n.Payload); err != nil {
			l.logger.Warn(ctx, "change not forwarded", "error", err)
		}
	}
}

func (l *Listener) handleNotification(ctx context.Context, payload string) error {
	var n notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return fmt.Errorf("decode notification: %w", err)
	}
	if n.Table == "" || n.Type == "" {
		return fmt.Errorf("decode notification: missing table or type")
	}
	if n.CommitTimestamp.IsZero() {
		n.CommitTimestamp = time.Now().UTC()
	}

	ev := &pb.ChangeEvent{
		Schema:          n.Schema,
		Table:           n.Table,
		Type:            n.Type,
		CommitTimestamp: timestamppb.New(n.CommitTimestamp),
	}
	if !isNull(n.Record) {
		ev.Record = n.Record
	}
	if !isNull(n.OldRecord) {
		ev.OldRecord = n.OldRecord
	}
	return l.pub.Publish(ctx, ev)
}
