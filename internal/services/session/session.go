// Package session ведет состояние авторизации пользователя и его сохранение
// между запусками.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/iwtcode/robotConfigurator/internal/domain/entities"
	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

const minPasswordLength = 6

var (
	errFillAll          = errors.New("заполните все поля")
	errPasswordShort    = errors.New("пароль должен содержать не менее 6 символов")
	errPasswordMismatch = errors.New("пароли не совпадают")
	errPasswordSame     = errors.New("новый пароль должен отличаться от текущего")
)

// Manager хранит текущую сессию. Сохраненная копия обновляется раньше
// состояния в памяти.
type Manager struct {
	mu      sync.RWMutex
	state   models.SessionState
	session models.Session

	auth   interfaces.AuthAPI
	repo   interfaces.IdentityRepository
	logger *logging.Logger
}

func NewManager(auth interfaces.AuthAPI, repo interfaces.IdentityRepository, logger *logging.Logger) *Manager {
	return &Manager{
		auth:   auth,
		repo:   repo,
		logger: logger.WithPrefix("SESSION"),
	}
}

// Boot восстанавливает сохраненную сессию и проверяет токен на сервере.
// При сетевой ошибке сессия остается в состоянии Pending и ошибка возвращается.
func (m *Manager) Boot(ctx context.Context) (models.SessionState, error) {
	stored, err := m.repo.Load()
	if err != nil {
		m.logger.Error("Failed to load stored session", "error", err)
		return m.State(), err
	}
	if stored == nil || stored.Token == "" {
		m.set(models.SessionAnonymous, models.Session{})
		return models.SessionAnonymous, nil
	}

	cached := models.Session{Token: stored.Token, Username: stored.Username, IsAdmin: stored.IsAdmin}
	m.set(models.SessionPending, cached)

	me, err := m.auth.Me(ctx, stored.Token)
	switch {
	case err == nil:
		fresh := models.Session{Token: stored.Token, Username: me.Username, IsAdmin: me.IsAdmin}
		if err := m.persist(fresh); err != nil {
			return models.SessionPending, err
		}
		m.set(models.SessionAuthenticated, fresh)
		m.logger.Info("Session restored", "username", fresh.Username, "admin", fresh.IsAdmin)
		return models.SessionAuthenticated, nil
	case errors.Is(err, apperrors.ErrAuthRequired), errors.Is(err, apperrors.ErrForbidden):
		if clearErr := m.repo.Clear(); clearErr != nil {
			m.logger.Error("Failed to clear stored session", "error", clearErr)
			return models.SessionPending, clearErr
		}
		m.set(models.SessionAnonymous, models.Session{})
		m.logger.Info("Stored session rejected by server", "username", stored.Username)
		return models.SessionAnonymous, nil
	default:
		m.logger.Warn("Session check failed, keeping cached identity", "username", stored.Username, "error", err)
		return models.SessionPending, err
	}
}

// Login выполняет вход и сохраняет сессию.
func (m *Manager) Login(ctx context.Context, username, password string) (models.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Session{}, apperrors.NewValidationError("username", username, errFillAll)
	}

	resp, err := m.auth.Login(ctx, dto.Credentials{Username: username, Password: password})
	if err != nil {
		m.logger.Warn("Login failed", "username", username, "error", err)
		return models.Session{}, err
	}
	return m.authenticate(resp, username)
}

// Register проверяет форму, регистрирует пользователя и сохраняет сессию.
func (m *Manager) Register(ctx context.Context, form dto.RegisterForm) (models.Session, error) {
	username := strings.TrimSpace(form.Username)
	switch {
	case username == "" || form.Password == "" || form.Confirm == "":
		return models.Session{}, apperrors.NewValidationError("username", username, errFillAll)
	case form.Password != form.Confirm:
		return models.Session{}, apperrors.NewValidationError("confirm_password", "", errPasswordMismatch)
	case len([]rune(form.Password)) < minPasswordLength:
		return models.Session{}, apperrors.NewValidationError("password", "", errPasswordShort)
	}

	resp, err := m.auth.Register(ctx, dto.RegisterRequest{
		Username: username,
		Password: form.Password,
		Email:    strings.TrimSpace(form.Email),
	})
	if err != nil {
		m.logger.Warn("Registration failed", "username", username, "error", err)
		return models.Session{}, err
	}
	return m.authenticate(resp, username)
}

// Logout завершает сессию и удаляет сохраненную копию.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.repo.Clear(); err != nil {
		m.logger.Error("Failed to clear stored session", "error", err)
		return err
	}
	username := m.Session().Username
	m.set(models.SessionAnonymous, models.Session{})
	m.logger.Info("Logged out", "username", username)
	return nil
}

// ChangePassword проверяет форму и меняет пароль текущего пользователя.
func (m *Manager) ChangePassword(ctx context.Context, current, next, confirm string) error {
	switch {
	case current == "" || next == "" || confirm == "":
		return apperrors.NewValidationError("current_password", "", errFillAll)
	case len([]rune(next)) < minPasswordLength:
		return apperrors.NewValidationError("new_password", "", errPasswordShort)
	case next != confirm:
		return apperrors.NewValidationError("confirm_password", "", errPasswordMismatch)
	case current == next:
		return apperrors.NewValidationError("new_password", "", errPasswordSame)
	}

	token, ok := m.Token()
	if !ok {
		return apperrors.ErrAuthRequired
	}
	if err := m.auth.ChangePassword(ctx, token, dto.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	}); err != nil {
		m.logger.Warn("Password change failed", "error", err)
		return err
	}
	m.logger.Info("Password changed", "username", m.Session().Username)
	return nil
}

// Token возвращает токен в состояниях Pending и Authenticated.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state == models.SessionAnonymous || m.session.Token == "" {
		return "", false
	}
	return m.session.Token, true
}

// Session возвращает копию текущей сессии.
func (m *Manager) Session() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

func (m *Manager) State() models.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsAdmin сообщает, есть ли у текущего пользователя права администратора.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state != models.SessionAnonymous && m.session.IsAdmin
}

func (m *Manager) authenticate(resp *dto.TokenResponse, username string) (models.Session, error) {
	if resp.Username != "" {
		username = resp.Username
	}
	s := models.Session{Token: resp.AccessToken, Username: username, IsAdmin: resp.IsAdmin}
	if err := m.persist(s); err != nil {
		return models.Session{}, err
	}
	m.set(models.SessionAuthenticated, s)
	m.logger.Info("Logged in", "username", s.Username, "admin", s.IsAdmin)
	return s, nil
}

func (m *Manager) persist(s models.Session) error {
	err := m.repo.Save(&entities.StoredIdentity{
		Key:      entities.IdentityKey,
		Token:    s.Token,
		Username: s.Username,
		IsAdmin:  s.IsAdmin,
	})
	if err != nil {
		m.logger.Error("Failed to persist session", "username", s.Username, "error", err)
	}
	return err
}

func (m *Manager) set(state models.SessionState, s models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.session = s
}
