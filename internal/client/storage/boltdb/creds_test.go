package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/splitbill/internal/client/storage"
	"github.com/iudanet/splitbill/pkg/api"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

// TestStorage_Token проверяет сохранение и чтение токена
func TestStorage_Token(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Пустое хранилище
	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	require.NoError(t, s.SaveToken(ctx, "tok-123"))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	// Повторная запись перетирает
	require.NoError(t, s.SaveToken(ctx, "tok-456"))
	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-456", token)
}

// TestStorage_Identity проверяет сохранение и чтение identity
func TestStorage_Identity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Identity(ctx)
	assert.ErrorIs(t, err, storage.ErrIdentityNotFound)

	user := &api.User{ID: 7, Name: "Alice", Email: "a@b.com"}
	require.NoError(t, s.SaveIdentity(ctx, user))

	got, err := s.Identity(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

// TestStorage_TokenWithoutIdentity: токен без identity — валидное
// промежуточное состояние, означающее "нужно декодировать"
func TestStorage_TokenWithoutIdentity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveToken(ctx, "tok"))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	_, err = s.Identity(ctx)
	assert.ErrorIs(t, err, storage.ErrIdentityNotFound)
}

// TestStorage_Purge удаляет оба ключа и идемпотентен
func TestStorage_Purge(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveToken(ctx, "tok"))
	require.NoError(t, s.SaveIdentity(ctx, &api.User{ID: 1, Name: "Alice"}))

	require.NoError(t, s.Purge(ctx))

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
	_, err = s.Identity(ctx)
	assert.ErrorIs(t, err, storage.ErrIdentityNotFound)

	// Повторный Purge пустого хранилища — no-op, не ошибка
	require.NoError(t, s.Purge(ctx))
}

// TestStorage_Reopen: данные переживают перезапуск процесса
func TestStorage_Reopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)

	require.NoError(t, s.SaveToken(ctx, "tok"))
	require.NoError(t, s.SaveIdentity(ctx, &api.User{ID: 7, Name: "Alice", Email: "a@b.com"}))
	require.NoError(t, s.Close())

	s2, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, s2.Close())
	}()

	token, err := s2.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	user, err := s2.Identity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}
