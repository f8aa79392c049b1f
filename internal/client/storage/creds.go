package storage

import (
	"context"

	"github.com/iudanet/splitbill/pkg/api"
)

// CredStore defines interface for the client-local credential storage.
// Ключи token и userInfo всегда пишутся в фиксированном порядке
// (сначала token, затем identity); наличие token без identity означает
// "identity не разрешена, нужно декодировать claims".
type CredStore interface {
	// SaveToken stores the raw bearer token
	SaveToken(ctx context.Context, token string) error

	// Token returns the stored bearer token.
	// Returns ErrTokenNotFound if no token exists.
	Token(ctx context.Context) (string, error)

	// SaveIdentity stores the cached identity derived from the token
	SaveIdentity(ctx context.Context, user *api.User) error

	// Identity returns the cached identity.
	// Returns ErrIdentityNotFound if no identity is cached.
	Identity(ctx context.Context) (*api.User, error)

	// Purge removes both token and identity.
	// Отсутствие данных не является ошибкой: повторный Purge — no-op.
	Purge(ctx context.Context) error
}
