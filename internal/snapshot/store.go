// Package snapshot persists raw fetched activity datasets so that repeated
// analyses of the same user within a freshness window can skip the GitHub
// API. Only inputs are stored; derived reports never touch the database.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devpulse/devpulse/internal/activity"
)

// Store is a Postgres-backed snapshot store.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a snapshot store on the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Save upserts the dataset for a username.
func (s *Store) Save(ctx context.Context, dataset *activity.Dataset, fetchedAt time.Time) error {
	payload, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO activity_snapshots (username, payload, fetched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (username)
		DO UPDATE SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at
	`, dataset.Username, payload, fetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot for %s: %w", dataset.Username, err)
	}
	return nil
}

// Latest returns the stored dataset for a username if it was fetched within
// maxAge. A missing or stale snapshot returns (nil, nil).
func (s *Store) Latest(ctx context.Context, username string, maxAge time.Duration) (*activity.Dataset, error) {
	var payload []byte
	var fetchedAt time.Time

	err := s.pool.QueryRow(ctx, `
		SELECT payload, fetched_at
		FROM activity_snapshots
		WHERE username = $1
	`, username).Scan(&payload, &fetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot for %s: %w", username, err)
	}

	if time.Since(fetchedAt) > maxAge {
		return nil, nil
	}

	var dataset activity.Dataset
	if err := json.Unmarshal(payload, &dataset); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for %s: %w", username, err)
	}
	return &dataset, nil
}

// Prune deletes snapshots older than maxAge and reports how many rows were
// removed.
func (s *Store) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM activity_snapshots
		WHERE fetched_at < $1
	`, time.Now().UTC().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return tag.RowsAffected(), nil
}
