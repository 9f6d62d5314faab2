package configurator

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/adapters/api"
	"github.com/iwtcode/robotConfigurator/internal/adapters/repositories"
	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/internal/services/calculation"
	"github.com/iwtcode/robotConfigurator/internal/services/dialogs"
	"github.com/iwtcode/robotConfigurator/internal/services/logsink"
	"github.com/iwtcode/robotConfigurator/internal/services/persistence"
	"github.com/iwtcode/robotConfigurator/internal/services/session"
	"github.com/iwtcode/robotConfigurator/internal/services/store"
	"github.com/iwtcode/robotConfigurator/internal/usecases"
	"github.com/sirupsen/logrus"
)

// Client является основной точкой входа для встраивания конфигуратора без HTTP-моста.
// Все операции use cases доступны напрямую через встроенный интерфейс.
type Client struct {
	interfaces.Usecases

	config *Config
	logger *logrus.Logger
}

// New создает клиента и собирает все компоненты.
// Сохраненная сессия не проверяется, для этого вызовите Restore.
func New(cfg *Config) (*Client, error) {
	logger := logrus.New()

	if cfg.LogLevel == "off" || cfg.LogLevel == "none" {
		logger.SetOutput(io.Discard)
	} else {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)
		logger.SetOutput(os.Stdout)
	}

	// Настраиваем форматтер с понятным форматом времени
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	appLogger := logging.Wrap(logger, "RobotConfigurator")
	appCfg := &config.AppConfig{
		Service: config.ServiceConfig{
			URL:     cfg.ServiceURL,
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
		Database: config.DatabaseConfig{Driver: "memory"},
		Files:    config.FilesConfig{ExportDir: cfg.ExportDir},
	}
	if cfg.SessionPath != "" {
		appCfg.Database = config.DatabaseConfig{Driver: "sqlite", Path: cfg.SessionPath}
	}

	repo, err := repositories.NewRepository(appCfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть хранилище сессии: %w", err)
	}

	client := api.New(appCfg, appLogger)
	st := store.New()
	sink := logsink.New(appLogger)
	manager := session.NewManager(client, repo, appLogger)
	files := persistence.NewFiles(appCfg, appLogger)

	uc := usecases.NewUsecases(usecases.Deps{
		Store:       st,
		Record:      store.NewRecordPointer(),
		Registry:    dialogs.NewRegistry(),
		Session:     manager,
		Remote:      persistence.NewRemote(client, manager, appLogger),
		Files:       files,
		RemoteFiles: persistence.NewRemoteFiles(client, files, appLogger),
		Admin:       persistence.NewAdmin(client, manager, appLogger),
		Calculation: calculation.NewOrchestrator(client, st, sink, nil, appLogger),
		Log:         sink,
		Logger:      appLogger,
	})

	return &Client{
		Usecases: uc,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Restore проверяет сохраненный токен на сервере.
func (c *Client) Restore(ctx context.Context) error {
	_, err := c.RestoreSession(ctx)
	return err
}

// GetLogger возвращает используемый логгер.
func (c *Client) GetLogger() *logrus.Logger {
	return c.logger
}
