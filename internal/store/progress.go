package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ProgressRepo stores the serialized progress record as a single row,
// overwritten wholesale on every save.
type ProgressRepo struct {
	db *sql.DB
}

// LoadProgress returns the stored record bytes, or (nil, nil) when no
// record has been saved yet.
func (r *ProgressRepo) LoadProgress(ctx context.Context) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM progress WHERE id = 1`,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return data, nil
}

// SaveProgress replaces the stored record with data.
func (r *ProgressRepo) SaveProgress(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO progress (id, data, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// DeleteProgress removes the stored record entirely.
func (r *ProgressRepo) DeleteProgress(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE id = 1`); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}
