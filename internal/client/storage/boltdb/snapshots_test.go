package boltdb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/splitbill/internal/client/storage"
)

// TestStorage_Snapshots проверяет сохранение, чтение и очистку снимков
func TestStorage_Snapshots(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Snapshot(ctx, "groups")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	snap := &storage.Snapshot{
		Data:      json.RawMessage(`[{"id":1,"name":"Trip"}]`),
		FetchedAt: 1700000000,
	}
	require.NoError(t, s.SaveSnapshot(ctx, "groups", snap))
	require.NoError(t, s.SaveSnapshot(ctx, "expenses", &storage.Snapshot{
		Data:      json.RawMessage(`[]`),
		FetchedAt: 1700000001,
	}))

	got, err := s.Snapshot(ctx, "groups")
	require.NoError(t, err)
	assert.Equal(t, snap.FetchedAt, got.FetchedAt)
	assert.JSONEq(t, string(snap.Data), string(got.Data))

	// DeleteSnapshots убирает все снимки разом
	require.NoError(t, s.DeleteSnapshots(ctx))

	_, err = s.Snapshot(ctx, "groups")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
	_, err = s.Snapshot(ctx, "expenses")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	// Повторная очистка пустого bucket — no-op
	require.NoError(t, s.DeleteSnapshots(ctx))
}
