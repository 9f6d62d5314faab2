package api

import (
	"context"
	"fmt"
	"net/http"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/models"
)

// ListConfigs возвращает конфигурации текущего пользователя.
func (c *Client) ListConfigs(ctx context.Context, token string) ([]models.ConfigSummary, error) {
	var out []models.ConfigSummary
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/configs",
		token:    token,
		fallback: "Ошибка загрузки",
	}, classifyDefault, &out)
	return out, err
}

// GetConfig возвращает конфигурацию пользователя по идентификатору.
func (c *Client) GetConfig(ctx context.Context, token string, id int64) (*models.PersistedConfigRecord, error) {
	var out models.PersistedConfigRecord
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/api/configs/%d", id),
		token:    token,
		fallback: "Ошибка загрузки",
	}, classifyDefault, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateConfig сохраняет новую конфигурацию.
func (c *Client) CreateConfig(ctx context.Context, token string, req dto.CreateConfigRequest) (*models.PersistedConfigRecord, error) {
	var out models.PersistedConfigRecord
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/configs",
		token:    token,
		body:     req,
		fallback: "Ошибка сохранения",
	}, classifyDefault, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConfig обновляет имя и/или данные конфигурации.
func (c *Client) UpdateConfig(ctx context.Context, token string, id int64, req dto.UpdateConfigRequest) (*models.PersistedConfigRecord, error) {
	var out models.PersistedConfigRecord
	err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/configs/%d", id),
		token:    token,
		body:     req,
		fallback: "Ошибка обновления",
	}, classifyDefault, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConfig удаляет конфигурацию пользователя.
func (c *Client) DeleteConfig(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/configs/%d", id),
		token:    token,
		fallback: "Ошибка удаления",
	}, classifyDefault, nil)
}
