package usecases

import (
	"context"
	"fmt"

	"github.com/iwtcode/robotConfigurator/internal/services/calculation"
	"github.com/iwtcode/robotConfigurator/internal/services/dialogs"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

const msgAdminOnly = "Доступ только для администратора"

// requireAdmin отклоняет операцию без обращения к сети, если сессия не администраторская.
func (u *Usecase) requireAdmin() error {
	if _, ok := u.Session.Token(); !ok {
		return apperrors.NewAppError(0, "Требуется авторизация", apperrors.ErrAuthRequired)
	}
	if !u.Session.IsAdmin() {
		return apperrors.NewAppError(0, msgAdminOnly, apperrors.ErrForbidden)
	}
	return nil
}

func (u *Usecase) AdminListUsers(ctx context.Context) ([]models.User, error) {
	if err := u.requireAdmin(); err != nil {
		return nil, err
	}
	return u.Admin.ListUsers(ctx)
}

func (u *Usecase) AdminGetUser(ctx context.Context, id int64) (*models.UserDetail, error) {
	if err := u.requireAdmin(); err != nil {
		return nil, err
	}
	return u.Admin.GetUser(ctx, id)
}

func (u *Usecase) AdminDeleteUser(ctx context.Context, id int64) error {
	if err := u.requireAdmin(); err != nil {
		return err
	}
	return u.Admin.DeleteUser(ctx, id)
}

func (u *Usecase) AdminToggleAdmin(ctx context.Context, id int64) (*models.ToggleAdminResult, error) {
	if err := u.requireAdmin(); err != nil {
		return nil, err
	}
	return u.Admin.ToggleAdmin(ctx, id)
}

func (u *Usecase) AdminListConfigs(ctx context.Context) ([]models.ConfigSummary, error) {
	if err := u.requireAdmin(); err != nil {
		return nil, err
	}
	return u.Admin.ListConfigs(ctx)
}

// AdminLoadConfig загружает чужую конфигурацию. Связь с серверной записью
// разрывается, поэтому следующее сохранение создаст запись текущего пользователя.
func (u *Usecase) AdminLoadConfig(ctx context.Context, id int64) (*models.PersistedConfigRecord, error) {
	if err := u.requireAdmin(); err != nil {
		return nil, err
	}
	record, err := u.Admin.FetchConfig(context.WithoutCancel(ctx), id)
	if err != nil {
		u.Log.Error("Ошибка загрузки: " + calculation.UserMessage(err))
		return nil, err
	}
	u.Store.Replace(record.ConfigData)
	u.Record.Detach(fmt.Sprintf("%s (%s)", record.Name, record.Owner))
	u.Log.Success(fmt.Sprintf("Загружена конфигурация \"%s\" пользователя %s", record.Name, record.Owner))
	u.Registry.Close(dialogs.AdminPanel)
	return record, nil
}

func (u *Usecase) AdminDeleteConfig(ctx context.Context, id int64) error {
	if err := u.requireAdmin(); err != nil {
		return err
	}
	return u.Admin.DeleteConfig(ctx, id)
}
