package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yourhome24/expose/internal/store"
)

// Insert appends a new description row. The database assigns identity and
// creation time; the payload is stored verbatim as submitted.
func (s *Store) Insert(ctx context.Context, payload json.RawMessage, text string) (string, error) {
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}

	var id string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO descriptions (payload, text) VALUES ($1, $2) RETURNING id`,
		[]byte(payload), text).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert description: %w", err)
	}
	return id, nil
}

// ListRecent returns at most limit descriptions, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]store.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, text, payload FROM descriptions
		 ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list descriptions: %w", err)
	}
	defer rows.Close()

	var records []store.Record
	for rows.Next() {
		var r store.Record
		var payload []byte
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Text, &payload); err != nil {
			return nil, fmt.Errorf("scan description: %w", err)
		}
		r.Payload = json.RawMessage(payload)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate descriptions: %w", err)
	}
	return records, nil
}

// Delete removes one description by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM descriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete description: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete description rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
