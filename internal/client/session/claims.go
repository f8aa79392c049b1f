package session

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/splitbill/pkg/api"
)

// tokenClaims представляет claims, зашитые в bearer токен.
// Обязателен только user_id; exp, email и name сервер может не выдавать.
type tokenClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// decodeClaims разбирает средний сегмент токена без проверки подписи.
// Подпись проверяет сервер; клиенту claims нужны только для отображения.
// Отсутствие или нечисловой user_id — ошибка декодирования.
func decodeClaims(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.UserID == 0 {
		return nil, fmt.Errorf("token has no user_id claim")
	}

	return claims, nil
}

// identityFromClaims строит identity из claims токена.
// Порядок выбора имени: claim name, локальная часть email до @, "User".
func identityFromClaims(claims *tokenClaims, email string) *api.User {
	if email == "" {
		email = claims.Email
	}

	name := claims.Name
	if name == "" && email != "" {
		name = localPart(email)
	}
	if name == "" {
		name = "User"
	}

	return &api.User{
		ID:    claims.UserID,
		Name:  name,
		Email: email,
	}
}

// localPart возвращает часть email до @
func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
