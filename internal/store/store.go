// Package store defines the persisted description record and the storage
// interface implemented by the postgres, mariadb and mock backends.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned by Delete when no record has the given id.
var ErrNotFound = errors.New("record not found")

// Record is one generated description. Identity and timestamp are assigned
// by the store on insert; records never change after creation except
// through Delete.
type Record struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Text      string          `json:"text"`
	Payload   json.RawMessage `json:"payload"`
}

// Store is the record store used by the description and history services.
// Implementations must return ListRecent results newest first.
type Store interface {
	// Insert appends a new record and returns its store-assigned id.
	Insert(ctx context.Context, payload json.RawMessage, text string) (string, error)
	// ListRecent returns at most limit records ordered by creation time
	// descending.
	ListRecent(ctx context.Context, limit int) ([]Record, error)
	// Delete removes exactly one record. Returns ErrNotFound when the id
	// does not exist.
	Delete(ctx context.Context, id string) error
	// Ping verifies store connectivity.
	Ping(ctx context.Context) error
	Close() error
}

// Limits for the two read paths.
const (
	ListLimit   = 50
	ExportLimit = 500
)
