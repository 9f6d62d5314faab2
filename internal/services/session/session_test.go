package session

import (
	"context"
	"errors"
	"testing"

	"github.com/iwtcode/robotConfigurator/internal/adapters/repositories/memory"
	"github.com/iwtcode/robotConfigurator/internal/domain/entities"
	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	meErr      error
	me         dto.Identity
	loginErr   error
	calls      int
	passwordTo string
}

func (f *fakeAuth) Login(_ context.Context, req dto.Credentials) (*dto.TokenResponse, error) {
	f.calls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &dto.TokenResponse{AccessToken: "tok-" + req.Username, Username: req.Username}, nil
}

func (f *fakeAuth) Register(_ context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	f.calls++
	return &dto.TokenResponse{AccessToken: "new-" + req.Username, Username: req.Username}, nil
}

func (f *fakeAuth) Me(_ context.Context, token string) (*dto.Identity, error) {
	f.calls++
	if f.meErr != nil {
		return nil, f.meErr
	}
	return &f.me, nil
}

func (f *fakeAuth) ChangePassword(_ context.Context, token string, req dto.ChangePasswordRequest) error {
	f.calls++
	f.passwordTo = req.NewPassword
	return nil
}

type failingRepo struct{}

func (failingRepo) Load() (*entities.StoredIdentity, error) { return nil, nil }
func (failingRepo) Save(*entities.StoredIdentity) error     { return errors.New("disk full") }
func (failingRepo) Clear() error                            { return errors.New("disk full") }

func storedRepo(t *testing.T, isAdmin bool) *memory.IdentityRepository {
	t.Helper()
	repo := memory.NewIdentityRepository().(*memory.IdentityRepository)
	require.NoError(t, repo.Save(&entities.StoredIdentity{Token: "cached", Username: "olga", IsAdmin: isAdmin}))
	return repo
}

func TestBootWithoutStoredIdentity(t *testing.T) {
	auth := &fakeAuth{}
	m := NewManager(auth, memory.NewIdentityRepository(), logging.Nop())

	state, err := m.Boot(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.SessionAnonymous, state)
	require.Zero(t, auth.calls)

	_, ok := m.Token()
	require.False(t, ok)
}

func TestBootRefreshesIdentity(t *testing.T) {
	repo := storedRepo(t, false)
	auth := &fakeAuth{me: dto.Identity{Username: "olga", IsAdmin: true}}
	m := NewManager(auth, repo, logging.Nop())

	state, err := m.Boot(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.SessionAuthenticated, state)
	require.True(t, m.IsAdmin())

	stored, err := repo.Load()
	require.NoError(t, err)
	require.True(t, stored.IsAdmin)
}

func TestBootRejectedTokenClearsIdentity(t *testing.T) {
	for _, kind := range []error{apperrors.ErrAuthRequired, apperrors.ErrForbidden} {
		repo := storedRepo(t, false)
		auth := &fakeAuth{meErr: apperrors.NewAppError(401, "Не авторизован", kind)}
		m := NewManager(auth, repo, logging.Nop())

		state, err := m.Boot(context.Background())
		require.NoError(t, err)
		require.Equal(t, models.SessionAnonymous, state)

		stored, err := repo.Load()
		require.NoError(t, err)
		require.Nil(t, stored)
	}
}

func TestBootNetworkFailureStaysPending(t *testing.T) {
	repo := storedRepo(t, false)
	auth := &fakeAuth{meErr: apperrors.NewAppError(0, "Сервис недоступен", apperrors.ErrTransport)}
	m := NewManager(auth, repo, logging.Nop())

	state, err := m.Boot(context.Background())
	require.ErrorIs(t, err, apperrors.ErrTransport)
	require.Equal(t, models.SessionPending, state)
	require.Equal(t, models.SessionPending, m.State())

	token, ok := m.Token()
	require.True(t, ok)
	require.Equal(t, "cached", token)

	stored, err := repo.Load()
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestLoginPersistsAndLogoutClears(t *testing.T) {
	repo := memory.NewIdentityRepository()
	m := NewManager(&fakeAuth{}, repo, logging.Nop())

	s, err := m.Login(context.Background(), " ivan ", "secret")
	require.NoError(t, err)
	require.Equal(t, "ivan", s.Username)
	require.Equal(t, models.SessionAuthenticated, m.State())

	stored, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, "tok-ivan", stored.Token)

	require.NoError(t, m.Logout(context.Background()))
	require.Equal(t, models.SessionAnonymous, m.State())
	stored, err = repo.Load()
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestLoginFailedPersistenceKeepsState(t *testing.T) {
	m := NewManager(&fakeAuth{}, failingRepo{}, logging.Nop())

	_, err := m.Login(context.Background(), "ivan", "secret")
	require.Error(t, err)
	require.Equal(t, models.SessionAnonymous, m.State())
	_, ok := m.Token()
	require.False(t, ok)
}

func TestRegisterValidatesLocally(t *testing.T) {
	auth := &fakeAuth{}
	m := NewManager(auth, memory.NewIdentityRepository(), logging.Nop())

	cases := []dto.RegisterForm{
		{Username: "", Password: "secret", Confirm: "secret"},
		{Username: "ivan", Password: "secret", Confirm: "other1"},
		{Username: "ivan", Password: "abc", Confirm: "abc"},
	}
	for _, form := range cases {
		_, err := m.Register(context.Background(), form)
		require.ErrorIs(t, err, apperrors.ErrValidation)
	}
	require.Zero(t, auth.calls)

	s, err := m.Register(context.Background(), dto.RegisterForm{Username: "ivan", Password: "secret", Confirm: "secret"})
	require.NoError(t, err)
	require.Equal(t, "new-ivan", s.Token)
}

func TestChangePassword(t *testing.T) {
	auth := &fakeAuth{}
	m := NewManager(auth, memory.NewIdentityRepository(), logging.Nop())

	err := m.ChangePassword(context.Background(), "secret", "secret2", "secret2")
	require.ErrorIs(t, err, apperrors.ErrAuthRequired)

	_, err = m.Login(context.Background(), "ivan", "secret")
	require.NoError(t, err)
	auth.calls = 0

	require.ErrorIs(t, m.ChangePassword(context.Background(), "secret", "secret", "secret"), apperrors.ErrValidation)
	require.ErrorIs(t, m.ChangePassword(context.Background(), "secret", "short", "short"), apperrors.ErrValidation)
	require.ErrorIs(t, m.ChangePassword(context.Background(), "secret", "secret2", "secret3"), apperrors.ErrValidation)
	require.Zero(t, auth.calls)

	require.NoError(t, m.ChangePassword(context.Background(), "secret", "secret2", "secret2"))
	require.Equal(t, "secret2", auth.passwordTo)
}
