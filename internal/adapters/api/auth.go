package api

import (
	"context"
	"net/http"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
)

// Login выполняет вход пользователя.
func (c *Client) Login(ctx context.Context, req dto.Credentials) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/login",
		body:     req,
		fallback: "Ошибка входа",
	}, classifyAuth, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register регистрирует нового пользователя.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/register",
		body:     req,
		fallback: "Ошибка регистрации",
	}, classifyAuth, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me проверяет токен и возвращает данные пользователя.
func (c *Client) Me(ctx context.Context, token string) (*dto.Identity, error) {
	var out dto.Identity
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/me",
		token:  token,
	}, classifyDefault, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword меняет пароль текущего пользователя.
func (c *Client) ChangePassword(ctx context.Context, token string, req dto.ChangePasswordRequest) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/change-password",
		token:    token,
		body:     req,
		fallback: "Ошибка смены пароля",
	}, classifyAuth, nil)
}
