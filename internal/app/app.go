package app

import (
	"context"
	"net/http"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/adapters/api"
	"github.com/iwtcode/robotConfigurator/internal/adapters/handlers"
	"github.com/iwtcode/robotConfigurator/internal/adapters/repositories"
	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/internal/services/calculation"
	"github.com/iwtcode/robotConfigurator/internal/services/dialogs"
	"github.com/iwtcode/robotConfigurator/internal/services/kafka"
	"github.com/iwtcode/robotConfigurator/internal/services/logsink"
	"github.com/iwtcode/robotConfigurator/internal/services/persistence"
	"github.com/iwtcode/robotConfigurator/internal/services/session"
	"github.com/iwtcode/robotConfigurator/internal/services/store"
	"github.com/iwtcode/robotConfigurator/internal/usecases"

	"go.uber.org/fx"
)

// New создает новый экземпляр fx.App
func New() *fx.App {
	return fx.New(
		ConfigModule,
		LoggingModule,
		RepositoryModule,
		ProducerModule,
		ClientModule,
		ServiceModule,
		UsecaseModule,
		HttpServerModule,
		// Invoke-функции для хуков жизненного цикла
		fx.Invoke(InvokeRestoreSession),
		fx.Invoke(InvokeCloseProducer),
	)
}

// --- Модули FX ---

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	return logging.NewLogger(loggerCfg, "RobotConfigurator")
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

var RepositoryModule = fx.Module("repository_module",
	fx.Provide(repositories.NewRepository),
)

var ProducerModule = fx.Module("producer_module",
	fx.Provide(
		kafka.NewKafkaProducer,
		kafka.NewResultPublisher,
	),
)

// ServiceClients раскладывает клиента сервиса по узким контрактам
type ServiceClients struct {
	fx.Out

	Calculation interfaces.CalculationAPI
	Auth        interfaces.AuthAPI
	Configs     interfaces.ConfigsAPI
	Admin       interfaces.AdminAPI
	Files       interfaces.FilesAPI
}

func ProvideServiceClients(cfg *config.AppConfig, logger *logging.Logger) ServiceClients {
	client := api.New(cfg, logger)
	return ServiceClients{
		Calculation: client,
		Auth:        client,
		Configs:     client,
		Admin:       client,
		Files:       client,
	}
}

var ClientModule = fx.Module("client_module",
	fx.Provide(ProvideServiceClients),
)

func ProvideTokenSource(m *session.Manager) interfaces.TokenSource {
	return m
}

func ProvideOrchestrator(
	calcAPI interfaces.CalculationAPI,
	st *store.Store,
	sink *logsink.Sink,
	publisher *kafka.ResultPublisher,
	logger *logging.Logger,
) *calculation.Orchestrator {
	return calculation.NewOrchestrator(calcAPI, st, sink, publisher, logger)
}

var ServiceModule = fx.Module("service_module",
	fx.Provide(
		store.New,
		store.NewRecordPointer,
		dialogs.NewRegistry,
		logsink.New,
		session.NewManager,
		ProvideTokenSource,
		persistence.NewRemote,
		persistence.NewFiles,
		persistence.NewRemoteFiles,
		persistence.NewAdmin,
		ProvideOrchestrator,
	),
)

// UsecaseParams собирает зависимости use cases из контейнера
type UsecaseParams struct {
	fx.In

	Store       *store.Store
	Record      *store.RecordPointer
	Registry    *dialogs.Registry
	Session     *session.Manager
	Remote      *persistence.Remote
	Files       *persistence.Files
	RemoteFiles *persistence.RemoteFiles
	Admin       *persistence.Admin
	Calculation *calculation.Orchestrator
	Log         *logsink.Sink
	Logger      *logging.Logger
}

func ProvideUsecases(p UsecaseParams) interfaces.Usecases {
	return usecases.NewUsecases(usecases.Deps{
		Store:       p.Store,
		Record:      p.Record,
		Registry:    p.Registry,
		Session:     p.Session,
		Remote:      p.Remote,
		Files:       p.Files,
		RemoteFiles: p.RemoteFiles,
		Admin:       p.Admin,
		Calculation: p.Calculation,
		Log:         p.Log,
		Logger:      p.Logger,
	})
}

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(ProvideUsecases),
)

var HttpServerModule = fx.Module("http_server_module",
	fx.Provide(
		handlers.NewHandler,
		handlers.ProvideRouter,
	),
	fx.Invoke(InvokeHttpServer),
)

// InvokeRestoreSession проверяет сохраненный токен при старте.
func InvokeRestoreSession(lc fx.Lifecycle, uc interfaces.Usecases, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Restoring stored session...")
			state, err := uc.RestoreSession(ctx)
			if err != nil {
				logger.Warn("Session restore failed, continuing with cached session", "state", state, "error", err)
				return nil // Не фатально, сессию можно восстановить позже
			}
			logger.Info("Session state after restore", "state", state)
			return nil
		},
	})
}

// InvokeCloseProducer дожидается фоновых публикаций и закрывает producer Kafka.
func InvokeCloseProducer(lc fx.Lifecycle, producer interfaces.KafkaService, orch *calculation.Orchestrator, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if !kafka.Enabled(producer) {
				return nil
			}
			orch.Wait()
			logger.Info("Closing Kafka producer...")
			return producer.Close()
		},
	})
}

// InvokeHttpServer запускает HTTP-сервер.
func InvokeHttpServer(lc fx.Lifecycle, cfg *config.AppConfig, h http.Handler, logger *logging.Logger) {
	serverAddr := ":" + cfg.ServerPort
	// расчет делает до трех последовательных запросов к сервису
	writeTimeout := 3*cfg.Service.Timeout + 10*time.Second
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP Server is starting", "address", serverAddr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
