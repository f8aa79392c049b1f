// Package session владеет текущей авторизованной identity процесса:
// восстанавливает ее из локального хранилища при старте, меняет на
// login/register/logout и сбрасывает при принудительном logout по 401.
// На процесс существует ровно одна Session.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	clientapi "github.com/iudanet/splitbill/internal/client/api"
	"github.com/iudanet/splitbill/internal/client/storage"
	"github.com/iudanet/splitbill/pkg/api"
)

// Session представляет состояние "кто сейчас авторизован".
// Identity != nil тогда и только тогда, когда в хранилище лежит
// валидный непросроченный токен. Session — единственный писатель
// в хранилище учетных данных (кроме сброса по 401 в gateway клиенте).
type Session struct {
	client   *clientapi.Client
	creds    storage.CredStore
	identity *api.User
	mu       sync.RWMutex
	initOnce sync.Once
	loading  bool
}

// New создает Session. До вызова Initialize состояние "loading":
// страницы не должны принимать решений о маршрутизации.
func New(client *clientapi.Client, creds storage.CredStore) *Session {
	s := &Session{
		client:  client,
		creds:   creds,
		loading: true,
	}

	// Сброс по 401: хранилище уже очищено наблюдателем в gateway
	// клиенте, остается снять identity в памяти
	client.SetUnauthorizedHandler(s.HandleUnauthorized)

	return s
}

// Identity возвращает текущую identity или nil для анонимного состояния
func (s *Session) Identity() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return nil
	}
	u := *s.identity
	return &u
}

// Loading сообщает, завершился ли Initialize
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Initialize восстанавливает сессию из хранилища. Выполняется ровно один
// раз за время жизни процесса и никогда не возвращает ошибку: любой
// некорректный сохраненный токен (битый, просроченный) молча приводит
// к анонимному состоянию с очисткой хранилища.
func (s *Session) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		// Флаг loading снимается при любом исходе
		defer func() {
			s.mu.Lock()
			s.loading = false
			s.mu.Unlock()
		}()

		token, err := s.creds.Token(ctx)
		if err != nil {
			if !errors.Is(err, storage.ErrTokenNotFound) {
				slog.Warn("failed to read stored token", "error", err)
			}
			return
		}

		// Кэшированная identity авторитетна: декодирование пропускается
		user, err := s.creds.Identity(ctx)
		if err == nil {
			s.setIdentity(user)
			return
		}
		if !errors.Is(err, storage.ErrIdentityNotFound) {
			slog.Warn("failed to read cached identity", "error", err)
		}

		// Кэша нет: восстанавливаем identity из claims токена
		claims, err := decodeClaims(token)
		if err != nil {
			slog.Warn("stored token is malformed, resetting session", "error", err)
			s.purge(ctx)
			return
		}

		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			slog.Warn("stored token is expired, resetting session")
			s.purge(ctx)
			return
		}

		user = identityFromClaims(claims, "")

		// Кэшируем результат декодирования для следующего старта
		if err := s.creds.SaveIdentity(ctx, user); err != nil {
			slog.Warn("failed to cache identity", "error", err)
		}

		s.setIdentity(user)
	})
}

// Login выполняет вход. При ошибке состояние сессии не меняется,
// ошибка отдается вызывающему как есть.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	claims, err := decodeClaims(resp.AccessToken)
	if err != nil {
		return fmt.Errorf("server returned malformed token: %w", err)
	}

	// Имя берем из claims, иначе — локальная часть email;
	// email в claims может отсутствовать, аргумент надежнее
	user := identityFromClaims(claims, email)

	return s.persist(ctx, resp.AccessToken, user)
}

// Register регистрирует пользователя и сразу авторизует его.
// Имя identity всегда берется из аргумента, а не из claims.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	resp, err := s.client.Register(ctx, api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	claims, err := decodeClaims(resp.AccessToken)
	if err != nil {
		return fmt.Errorf("server returned malformed token: %w", err)
	}

	user := &api.User{
		ID:    claims.UserID,
		Name:  name,
		Email: email,
	}

	return s.persist(ctx, resp.AccessToken, user)
}

// Logout безусловно очищает хранилище и память. Отсутствие сохраненной
// сессии не является ошибкой; ошибкой может быть только отказ хранилища.
func (s *Session) Logout(ctx context.Context) error {
	s.setIdentity(nil)

	if err := s.creds.Purge(ctx); err != nil {
		return fmt.Errorf("failed to purge credentials: %w", err)
	}

	return nil
}

// Refresh обновляет identity с сервера (/auth/me) и перезаписывает кэш
func (s *Session) Refresh(ctx context.Context) (*api.User, error) {
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.creds.SaveIdentity(ctx, user); err != nil {
		slog.Warn("failed to cache identity", "error", err)
	}

	s.setIdentity(user)
	return user, nil
}

// HandleUnauthorized снимает identity в памяти после сброса по 401.
// Идемпотентен: повторный вызов для анонимной сессии — no-op.
func (s *Session) HandleUnauthorized() {
	s.setIdentity(nil)
}

// persist сохраняет пару (токен, identity) в фиксированном порядке:
// сначала токен, затем identity. Запись пары не атомарна; токен без
// identity означает "декодировать при следующем старте".
func (s *Session) persist(ctx context.Context, token string, user *api.User) error {
	if err := s.creds.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	if err := s.creds.SaveIdentity(ctx, user); err != nil {
		return fmt.Errorf("failed to save identity: %w", err)
	}

	s.setIdentity(user)
	return nil
}

func (s *Session) setIdentity(user *api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = user
}

// purge очищает хранилище, не поднимая ошибку наверх:
// Initialize не имеет права упасть
func (s *Session) purge(ctx context.Context) {
	if err := s.creds.Purge(ctx); err != nil {
		slog.Warn("failed to purge credentials", "error", err)
	}
}
