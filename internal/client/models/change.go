package models

import (
	"encoding/json"
	"errors"
	"time"
)

// ChangeEventType is the kind of row change delivered on a realtime feed.
type ChangeEventType string

const (
	ChangeInsert ChangeEventType = "INSERT"
	ChangeUpdate ChangeEventType = "UPDATE"
	ChangeDelete ChangeEventType = "DELETE"
	// ChangeAll subscribes to every event type.
	ChangeAll ChangeEventType = "*"
)

// ChangeEvent is one row change on a remote collection. Record holds the new
// row (absent on DELETE), OldRecord the previous one (absent on INSERT).
type ChangeEvent struct {
	Schema          string          `json:"schema"`
	Table           string          `json:"table"`
	Type            ChangeEventType `json:"type"`
	Record          json.RawMessage `json:"record,omitempty"`
	OldRecord       json.RawMessage `json:"old_record,omitempty"`
	CommitTimestamp time.Time       `json:"commit_timestamp"`
}

// ErrNoRecord is returned by DecodeRecord when the event carries no row.
var ErrNoRecord = errors.New("change event has no record")

// DecodeRecord unmarshals the event's new row, or its old row for deletes.
func DecodeRecord[T any](ev ChangeEvent) (T, error) {
	var out T
	raw := ev.Record
	if len(raw) == 0 || string(raw) == "null" {
		raw = ev.OldRecord
	}
	if len(raw) == 0 || string(raw) == "null" {
		return out, ErrNoRecord
	}
	err := json.Unmarshal(raw, &out)
	return out, err
}
