package api

import (
	"context"
	"fmt"

	"github.com/iudanet/splitbill/pkg/api"
)

// Login выполняет аутентификацию пользователя.
// Запрос анонимный: bearer заголовок не подставляется, пока токена нет.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/auth/login", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/auth/register", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// CurrentUser возвращает профиль текущего пользователя
func (c *Client) CurrentUser(ctx context.Context) (*api.User, error) {
	var resp api.User
	err := c.doRequest(ctx, "GET", "/auth/me", nil, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("current user request failed: %w", err)
	}
	return &resp, nil
}
