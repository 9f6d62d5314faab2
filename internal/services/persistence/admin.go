package persistence

import (
	"context"

	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
)

// Admin - операции администратора над пользователями и их конфигурациями.
type Admin struct {
	api    interfaces.AdminAPI
	tokens interfaces.TokenSource
	logger *logging.Logger
}

func NewAdmin(api interfaces.AdminAPI, tokens interfaces.TokenSource, logger *logging.Logger) *Admin {
	return &Admin{api: api, tokens: tokens, logger: logger.WithPrefix("ADMIN")}
}

func (a *Admin) ListUsers(ctx context.Context) ([]models.User, error) {
	token, err := requireToken(a.tokens)
	if err != nil {
		return nil, err
	}
	return a.api.ListUsers(ctx, token)
}

func (a *Admin) GetUser(ctx context.Context, id int64) (*models.UserDetail, error) {
	token, err := requireToken(a.tokens)
	if err != nil {
		return nil, err
	}
	return a.api.GetUser(ctx, token, id)
}

func (a *Admin) DeleteUser(ctx context.Context, id int64) error {
	token, err := requireToken(a.tokens)
	if err != nil {
		return err
	}
	if err := a.api.DeleteUser(ctx, token, id); err != nil {
		return err
	}
	a.logger.Info("User deleted", "user_id", id)
	return nil
}

// ToggleAdmin переключает права администратора пользователя.
func (a *Admin) ToggleAdmin(ctx context.Context, id int64) (*models.ToggleAdminResult, error) {
	token, err := requireToken(a.tokens)
	if err != nil {
		return nil, err
	}
	result, err := a.api.ToggleAdmin(ctx, token, id)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Admin rights toggled", "user_id", id, "is_admin", result.IsAdmin)
	return result, nil
}

// ListConfigs возвращает конфигурации всех пользователей.
func (a *Admin) ListConfigs(ctx context.Context) ([]models.ConfigSummary, error) {
	token, err := requireToken(a.tokens)
	if err != nil {
		return nil, err
	}
	return a.api.ListAllConfigs(ctx, token)
}

// FetchConfig возвращает конфигурацию любого пользователя.
func (a *Admin) FetchConfig(ctx context.Context, id int64) (*models.PersistedConfigRecord, error) {
	token, err := requireToken(a.tokens)
	if err != nil {
		return nil, err
	}
	record, err := a.api.GetAnyConfig(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if err := record.ConfigData.Validate(); err != nil {
		a.logger.Warn("Stored config rejected", "id", id, "error", err)
		return nil, err
	}
	record.ConfigData = record.ConfigData.Normalize()
	return record, nil
}

func (a *Admin) DeleteConfig(ctx context.Context, id int64) error {
	token, err := requireToken(a.tokens)
	if err != nil {
		return err
	}
	if err := a.api.DeleteAnyConfig(ctx, token, id); err != nil {
		return err
	}
	a.logger.Info("Config deleted by admin", "config_id", id)
	return nil
}
