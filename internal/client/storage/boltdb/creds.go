package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/splitbill/internal/client/storage"
	"github.com/iudanet/splitbill/pkg/api"
)

// Ключи в auth bucket. Раскладка фиксирована: token — сырая строка
// bearer токена, userInfo — JSON с identity {id, name, email}.
var (
	keyToken    = []byte("token")
	keyUserInfo = []byte("userInfo")
)

// Compile-time check that Storage implements CredStore
var _ storage.CredStore = (*Storage)(nil)

// SaveToken stores the raw bearer token
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Put(keyToken, []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		return nil
	})
}

// Token retrieves the stored bearer token
func (s *Storage) Token(ctx context.Context) (string, error) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(keyToken)
		if data == nil {
			return storage.ErrTokenNotFound
		}

		token = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return token, nil
}

// SaveIdentity stores the cached identity as JSON
func (s *Storage) SaveIdentity(ctx context.Context, user *api.User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Сериализуем identity в JSON
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal identity: %w", err)
		}

		if err := bucket.Put(keyUserInfo, data); err != nil {
			return fmt.Errorf("failed to save identity: %w", err)
		}

		return nil
	})
}

// Identity retrieves the cached identity
func (s *Storage) Identity(ctx context.Context) (*api.User, error) {
	var user *api.User

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(keyUserInfo)
		if data == nil {
			return storage.ErrIdentityNotFound
		}

		user = &api.User{}
		if err := json.Unmarshal(data, user); err != nil {
			return fmt.Errorf("failed to unmarshal identity: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// Purge removes both token and identity.
// Идемпотентна: отсутствие ключей не является ошибкой.
func (s *Storage) Purge(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		if err := bucket.Delete(keyUserInfo); err != nil {
			return fmt.Errorf("failed to delete identity: %w", err)
		}

		return nil
	})
}
