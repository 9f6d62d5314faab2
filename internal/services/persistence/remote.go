package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/dustin/go-humanize"
	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

var errEmptyName = errors.New("введите название конфигурации")

// Remote - хранилище конфигураций текущего пользователя на сервере.
type Remote struct {
	api    interfaces.ConfigsAPI
	tokens interfaces.TokenSource
	logger *logging.Logger
}

func NewRemote(api interfaces.ConfigsAPI, tokens interfaces.TokenSource, logger *logging.Logger) *Remote {
	return &Remote{api: api, tokens: tokens, logger: logger.WithPrefix("REMOTE")}
}

// List возвращает конфигурации пользователя.
func (r *Remote) List(ctx context.Context) ([]models.ConfigSummary, error) {
	token, err := requireToken(r.tokens)
	if err != nil {
		return nil, err
	}
	items, err := r.api.ListConfigs(ctx, token)
	if err != nil {
		return nil, err
	}
	if latest, ok := latestUpdate(items); ok {
		r.logger.Info("Configs listed", "count", len(items), "latest", latest.Name, "updated", humanize.Time(latest.UpdatedAt))
	} else {
		r.logger.Info("Configs listed", "count", 0)
	}
	return items, nil
}

// Fetch возвращает сохраненную конфигурацию.
func (r *Remote) Fetch(ctx context.Context, id int64) (*models.PersistedConfigRecord, error) {
	token, err := requireToken(r.tokens)
	if err != nil {
		return nil, err
	}
	record, err := r.api.GetConfig(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if err := record.ConfigData.Validate(); err != nil {
		r.logger.Warn("Stored config rejected", "id", id, "error", err)
		return nil, err
	}
	record.ConfigData = record.ConfigData.Normalize()
	r.logger.Info("Config fetched", "id", record.ID, "name", record.Name, "updated", humanize.Time(record.UpdatedAt))
	return record, nil
}

// Create сохраняет новую запись.
func (r *Remote) Create(ctx context.Context, name string, cfg models.RobotConfiguration) (*models.PersistedConfigRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", name, errEmptyName)
	}
	token, err := requireToken(r.tokens)
	if err != nil {
		return nil, err
	}
	record, err := r.api.CreateConfig(ctx, token, dto.CreateConfigRequest{Name: name, ConfigData: cfg})
	if err != nil {
		return nil, err
	}
	r.logger.Info("Config created", "id", record.ID, "name", record.Name)
	return record, nil
}

// Update отправляет только переданные поля.
func (r *Remote) Update(ctx context.Context, id int64, req dto.UpdateConfigRequest) (*models.PersistedConfigRecord, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("name", trimmed, errEmptyName)
		}
		req.Name = &trimmed
	}
	token, err := requireToken(r.tokens)
	if err != nil {
		return nil, err
	}
	record, err := r.api.UpdateConfig(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	r.logger.Info("Config updated", "id", record.ID, "name", record.Name, "data", req.ConfigData != nil)
	return record, nil
}

func (r *Remote) Delete(ctx context.Context, id int64) error {
	token, err := requireToken(r.tokens)
	if err != nil {
		return err
	}
	if err := r.api.DeleteConfig(ctx, token, id); err != nil {
		return err
	}
	r.logger.Info("Config deleted", "id", id)
	return nil
}

func latestUpdate(items []models.ConfigSummary) (models.ConfigSummary, bool) {
	if len(items) == 0 {
		return models.ConfigSummary{}, false
	}
	latest := items[0]
	for _, item := range items[1:] {
		if item.UpdatedAt.After(latest.UpdatedAt) {
			latest = item
		}
	}
	return latest, true
}
