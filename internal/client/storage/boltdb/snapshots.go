package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/splitbill/internal/client/storage"
)

// Compile-time check that Storage implements SnapshotStore
var _ storage.SnapshotStore = (*Storage)(nil)

// SaveSnapshot stores or replaces the named snapshot
func (s *Storage) SaveSnapshot(ctx context.Context, name string, snap *storage.Snapshot) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}

		// Сериализуем снимок в JSON
		data, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		if err := bucket.Put([]byte(name), data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})
}

// Snapshot retrieves the named snapshot
func (s *Storage) Snapshot(ctx context.Context, name string) (*storage.Snapshot, error) {
	var snap *storage.Snapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}

		data := bucket.Get([]byte(name))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		snap = &storage.Snapshot{}
		if err := json.Unmarshal(data, snap); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return snap, nil
}

// DeleteSnapshots removes all cached snapshots
func (s *Storage) DeleteSnapshots(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}

		// Удаляем все ключи; курсор нельзя использовать вместе с Delete,
		// поэтому сначала собираем ключи
		var keys [][]byte
		if err := bucket.ForEach(func(k, v []byte) error {
			key := make([]byte, len(k))
			copy(key, k)
			keys = append(keys, key)
			return nil
		}); err != nil {
			return fmt.Errorf("failed to iterate snapshots: %w", err)
		}

		for _, key := range keys {
			if err := bucket.Delete(key); err != nil {
				return fmt.Errorf("failed to delete snapshot: %w", err)
			}
		}

		return nil
	})
}
