package interfaces

import (
	"context"
	"io"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/models"
)

// CalculationAPI определяет контракт сервиса расчета траекторий
type CalculationAPI interface {
	Configure(ctx context.Context, req dto.ConfigureRequest) (*dto.StatusResponse, error)
	SetLineContour(ctx context.Context, req dto.LineContourRequest) error
	SetCircleContour(ctx context.Context, req dto.CircleContourRequest) error
	Calculate(ctx context.Context) (*models.CalculationResult, error)
	Plot(ctx context.Context, plotID string) (*models.PlotImage, error)
	Workspace(ctx context.Context) (*models.PlotImage, error)
	SplineCyclegram(ctx context.Context) (*models.SplineCyclegram, error)
}

// AuthAPI определяет контракт входа, регистрации и проверки токена
type AuthAPI interface {
	Login(ctx context.Context, req dto.Credentials) (*dto.TokenResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, token string) (*dto.Identity, error)
	ChangePassword(ctx context.Context, token string, req dto.ChangePasswordRequest) error
}

// ConfigsAPI определяет контракт хранилища конфигураций пользователя
type ConfigsAPI interface {
	ListConfigs(ctx context.Context, token string) ([]models.ConfigSummary, error)
	GetConfig(ctx context.Context, token string, id int64) (*models.PersistedConfigRecord, error)
	CreateConfig(ctx context.Context, token string, req dto.CreateConfigRequest) (*models.PersistedConfigRecord, error)
	UpdateConfig(ctx context.Context, token string, id int64, req dto.UpdateConfigRequest) (*models.PersistedConfigRecord, error)
	DeleteConfig(ctx context.Context, token string, id int64) error
}

// AdminAPI определяет контракт привилегированных операций
type AdminAPI interface {
	ListUsers(ctx context.Context, token string) ([]models.User, error)
	GetUser(ctx context.Context, token string, id int64) (*models.UserDetail, error)
	DeleteUser(ctx context.Context, token string, id int64) error
	ToggleAdmin(ctx context.Context, token string, id int64) (*models.ToggleAdminResult, error)
	ListAllConfigs(ctx context.Context, token string) ([]models.ConfigSummary, error)
	GetAnyConfig(ctx context.Context, token string, id int64) (*models.PersistedConfigRecord, error)
	DeleteAnyConfig(ctx context.Context, token string, id int64) error
}

// FilesAPI определяет контракт серверного разбора и формирования файлов конфигурации
type FilesAPI interface {
	UploadFile(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error)
	DownloadFile(ctx context.Context, cfg models.RobotConfiguration) ([]byte, error)
}

// RobotService объединяет все операции внешнего сервиса
type RobotService interface {
	CalculationAPI
	AuthAPI
	ConfigsAPI
	AdminAPI
	FilesAPI
}

// TokenSource выдает токен текущей сессии
type TokenSource interface {
	Token() (string, bool)
}
