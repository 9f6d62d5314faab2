package repositories

import (
	"path/filepath"
	"testing"

	"github.com/iwtcode/robotConfigurator/internal/adapters/repositories/memory"
	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/domain/entities"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/stretchr/testify/require"
)

func TestNewRepositorySqlite(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = filepath.Join(t.TempDir(), "session.db")

	repo, err := NewRepository(cfg, logging.Nop())
	require.NoError(t, err)

	require.NoError(t, repo.Save(&entities.StoredIdentity{Token: "t", Username: "ivan"}))
	stored, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, "ivan", stored.Username)
}

func TestNewRepositoryMemory(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Database.Driver = "memory"

	repo, err := NewRepository(cfg, logging.Nop())
	require.NoError(t, err)
	require.IsType(t, &memory.IdentityRepository{}, repo)
}

func TestNewRepositoryUnknownDriver(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Database.Driver = "oracle"

	_, err := NewRepository(cfg, logging.Nop())
	require.Error(t, err)
}
