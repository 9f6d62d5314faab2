package interfaces

import (
	"context"
	"io"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	Configuration() models.RobotConfiguration
	ApplyGroup(group string, form map[string]string) (models.RobotConfiguration, error)
	ReplaceConfiguration(cfg models.RobotConfiguration) (models.RobotConfiguration, error)
	ConfirmTrajectoryType(raw string) (models.RobotConfiguration, error)

	Dialogs() map[string]bool
	OpenDialog(name string) error
	CloseDialog(name string) error

	RestoreSession(ctx context.Context) (models.SessionState, error)
	SessionInfo() (models.SessionState, models.Session)
	Login(ctx context.Context, username, password string) (models.Session, error)
	Register(ctx context.Context, form dto.RegisterForm) (models.Session, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, current, next, confirm string) error

	ListConfigs(ctx context.Context) ([]models.ConfigSummary, error)
	SaveConfig(ctx context.Context, name string, asNew bool) (*models.PersistedConfigRecord, error)
	LoadConfig(ctx context.Context, id int64) (*models.PersistedConfigRecord, error)
	DeleteConfig(ctx context.Context, id int64) error
	CurrentRecord() (*models.RecordRef, string)

	ImportFile(filename string, r io.Reader) (models.RobotConfiguration, error)
	ExportFile(filename string) (string, error)
	UploadFile(ctx context.Context, filename string, r io.Reader) (models.RobotConfiguration, error)
	DownloadFile(ctx context.Context, filename string) (string, error)
	CurrentFileName() string

	AdminListUsers(ctx context.Context) ([]models.User, error)
	AdminGetUser(ctx context.Context, id int64) (*models.UserDetail, error)
	AdminDeleteUser(ctx context.Context, id int64) error
	AdminToggleAdmin(ctx context.Context, id int64) (*models.ToggleAdminResult, error)
	AdminListConfigs(ctx context.Context) ([]models.ConfigSummary, error)
	AdminLoadConfig(ctx context.Context, id int64) (*models.PersistedConfigRecord, error)
	AdminDeleteConfig(ctx context.Context, id int64) error

	Calculate(ctx context.Context) (*models.CalculationResult, error)
	CalculationStatus() CalculationStatus
	Plot(ctx context.Context, kind string) (*models.PlotImage, error)
	Workspace(ctx context.Context) (*models.PlotImage, error)
	SplineCyclegram(ctx context.Context) (*models.SplineCyclegram, error)

	Logs() []models.LogEntry
	ClearLogs()
	SubscribeLogs(withBacklog bool) ([]models.LogEntry, <-chan models.LogEntry, func())
}

// CalculationStatus - состояние расчета для отображения
type CalculationStatus struct {
	Phase   models.CalculationPhase    `json:"phase"`
	Busy    bool                       `json:"busy"`
	Result  *models.CalculationResult  `json:"result,omitempty"`
	Outcome *models.CalculationOutcome `json:"last_run,omitempty"`
}
