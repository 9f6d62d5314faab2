package usecases

import (
	"context"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/internal/services/dialogs"
	"github.com/iwtcode/robotConfigurator/models"
)

// RestoreSession проверяет сохраненную сессию при запуске.
func (u *Usecase) RestoreSession(ctx context.Context) (models.SessionState, error) {
	return u.Session.Boot(ctx)
}

func (u *Usecase) SessionInfo() (models.SessionState, models.Session) {
	return u.Session.State(), u.Session.Session()
}

// Login выполняет вход и закрывает диалоги входа и регистрации.
func (u *Usecase) Login(ctx context.Context, username, password string) (models.Session, error) {
	s, err := u.Session.Login(ctx, username, password)
	if err != nil {
		return s, err
	}
	u.closeAuthDialogs()
	return s, nil
}

func (u *Usecase) Register(ctx context.Context, form dto.RegisterForm) (models.Session, error) {
	s, err := u.Session.Register(ctx, form)
	if err != nil {
		return s, err
	}
	u.closeAuthDialogs()
	return s, nil
}

// Logout завершает сессию и отвязывает конфигурацию от серверной записи.
func (u *Usecase) Logout(ctx context.Context) error {
	if err := u.Session.Logout(ctx); err != nil {
		return err
	}
	u.Record.Detach(u.Record.Label())
	return nil
}

func (u *Usecase) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if err := u.Session.ChangePassword(ctx, current, next, confirm); err != nil {
		return err
	}
	u.Registry.Close(dialogs.ChangePassword)
	return nil
}

func (u *Usecase) closeAuthDialogs() {
	u.Registry.Close(dialogs.Login)
	u.Registry.Close(dialogs.Register)
}
