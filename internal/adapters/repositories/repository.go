package repositories

import (
	"fmt"

	"github.com/iwtcode/robotConfigurator/internal/adapters/repositories/identity"
	"github.com/iwtcode/robotConfigurator/internal/adapters/repositories/memory"
	"github.com/iwtcode/robotConfigurator/internal/adapters/repositories/postgres"
	"github.com/iwtcode/robotConfigurator/internal/adapters/repositories/sqlite"
	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/domain/entities"
	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"

	"gorm.io/gorm"
)

// NewRepository выбирает хранилище сессии по DB_DRIVER: sqlite, postgres или memory
func NewRepository(cfg *config.AppConfig, appLogger *logging.Logger) (interfaces.IdentityRepository, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Database.Driver {
	case "memory":
		appLogger.Warn("Session storage is in-memory, login will not survive restart")
		return memory.NewIdentityRepository(), nil
	case "postgres":
		db, err = postgres.Open(cfg, appLogger)
	case "sqlite", "":
		db, err = sqlite.Open(cfg.Database.Path)
	default:
		return nil, fmt.Errorf("неизвестный драйвер БД: %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("ошибка выполнения автомиграций: %w", err)
	}
	appLogger.Info("Session storage ready", "driver", cfg.Database.Driver)

	return identity.NewIdentityRepository(db), nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&entities.StoredIdentity{})
}
