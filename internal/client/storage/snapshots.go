package storage

import (
	"context"
	"encoding/json"
)

// Snapshot представляет последний успешно полученный с сервера срез данных.
// Data хранится как сырой JSON: слою хранения не нужно знать доменные типы.
type Snapshot struct {
	Data      json.RawMessage `json:"data"`
	FetchedAt int64           `json:"fetched_at"` // Unix seconds
}

// SnapshotStore defines interface for caching last-fetch snapshots
// (groups, expenses) for offline viewing.
type SnapshotStore interface {
	// SaveSnapshot stores or replaces the named snapshot
	SaveSnapshot(ctx context.Context, name string, snap *Snapshot) error

	// Snapshot returns the named snapshot.
	// Returns ErrSnapshotNotFound if it does not exist.
	Snapshot(ctx context.Context, name string) (*Snapshot, error)

	// DeleteSnapshots removes all cached snapshots (logout)
	DeleteSnapshots(ctx context.Context) error
}
