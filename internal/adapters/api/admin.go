package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iwtcode/robotConfigurator/models"
)

// ListUsers возвращает всех пользователей.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/admin/users",
		token:    token,
		fallback: "Ошибка получения пользователей",
	}, classifyAdmin, &out)
	return out, err
}

// GetUser возвращает пользователя вместе с его конфигурациями.
func (c *Client) GetUser(ctx context.Context, token string, id int64) (*models.UserDetail, error) {
	var out models.UserDetail
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/api/admin/users/%d", id),
		token:    token,
		fallback: "Ошибка получения пользователя",
	}, classifyAdmin, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser удаляет пользователя и все его данные.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/admin/users/%d", id),
		token:    token,
		fallback: "Ошибка удаления пользователя",
	}, classifyAdmin, nil)
}

// ToggleAdmin переключает права администратора.
func (c *Client) ToggleAdmin(ctx context.Context, token string, id int64) (*models.ToggleAdminResult, error) {
	var out models.ToggleAdminResult
	err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/admin/users/%d/toggle-admin", id),
		token:    token,
		fallback: "Ошибка изменения прав",
	}, classifyAdmin, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllConfigs возвращает конфигурации всех пользователей.
func (c *Client) ListAllConfigs(ctx context.Context, token string) ([]models.ConfigSummary, error) {
	var out []models.ConfigSummary
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/admin/configs",
		token:    token,
		fallback: "Ошибка получения конфигураций",
	}, classifyAdmin, &out)
	return out, err
}

// GetAnyConfig возвращает любую конфигурацию по идентификатору.
func (c *Client) GetAnyConfig(ctx context.Context, token string, id int64) (*models.PersistedConfigRecord, error) {
	var out models.PersistedConfigRecord
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/api/admin/configs/%d", id),
		token:    token,
		fallback: "Ошибка получения конфигурации",
	}, classifyAdmin, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAnyConfig удаляет любую конфигурацию.
func (c *Client) DeleteAnyConfig(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/admin/configs/%d", id),
		token:    token,
		fallback: "Ошибка удаления конфигурации",
	}, classifyAdmin, nil)
}
