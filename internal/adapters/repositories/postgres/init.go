package postgres

import (
	"fmt"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// maintenanceDB - служебная база, через которую создается база пользователей.
const maintenanceDB = "postgres"

// DSN собирает строку подключения к базе dbName.
func DSN(db config.DatabaseConfig, dbName string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		db.Host, db.Username, db.Password, dbName, db.Port)
}

// Open подключается к базе пользователей и сессий, создавая ее при первом запуске.
func Open(cfg *config.AppConfig, appLogger *logging.Logger) (*gorm.DB, error) {
	log := appLogger.WithPrefix("POSTGRES")
	if err := ensureDatabase(cfg.Database, log); err != nil {
		return nil, err
	}

	// медленные запросы идут в общий журнал сервиса
	gormLogger := logger.New(appLogger.Logrus(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
	db, err := gorm.Open(postgres.Open(DSN(cfg.Database, cfg.Database.DBName)), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных '%s': %w", cfg.Database.DBName, err)
	}
	log.Info("Identity database connected", "host", cfg.Database.Host, "db_name", cfg.Database.DBName)
	return db, nil
}

func ensureDatabase(dbCfg config.DatabaseConfig, log *logging.Logger) error {
	db, err := gorm.Open(postgres.Open(DSN(dbCfg, maintenanceDB)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("не удалось подключиться к служебной БД '%s': %w", maintenanceDB, err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)"
	if err := db.Raw(query, dbCfg.DBName).Scan(&exists).Error; err != nil {
		return fmt.Errorf("не удалось проверить существование БД '%s': %w", dbCfg.DBName, err)
	}
	if exists {
		return nil
	}

	log.Info("Identity database not found, creating", "db_name", dbCfg.DBName)
	if err := db.Exec(fmt.Sprintf("CREATE DATABASE %q", dbCfg.DBName)).Error; err != nil {
		return fmt.Errorf("не удалось создать БД '%s': %w", dbCfg.DBName, err)
	}
	return nil
}
