package models

import "time"

// Session содержит данные авторизованного пользователя
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// QualityMetrics содержит показатели качества регулирования одного звена
type QualityMetrics struct {
	AvgError        float64   `json:"avg_error"`
	MedianError     float64   `json:"median_error"`
	AvgRegTime      float64   `json:"avg_reg_time"`
	MedianRegTime   float64   `json:"median_reg_time"`
	Errors          []float64 `json:"errors,omitempty"`
	RegulationTimes []float64 `json:"regulation_times,omitempty"`
}

// CalculationResult - результат последнего расчета траектории
type CalculationResult struct {
	Success          bool            `json:"success"`
	RobotType        string          `json:"robot_type"`
	TypeOfControl    string          `json:"type_of_control"`
	Spline           bool            `json:"spline"`
	TrajectoryLength int             `json:"trajectory_length"`
	QualityLink1     *QualityMetrics `json:"quality_link_1,omitempty"`
	QualityLink2     *QualityMetrics `json:"quality_link_2,omitempty"`
}

// PlotImage - изображение графика или рабочей зоны в base64
type PlotImage struct {
	Success     bool   `json:"success"`
	PlotType    string `json:"plot_type,omitempty"`
	RobotType   string `json:"robot_type,omitempty"`
	ImageBase64 string `json:"image_base64"`
}

// SplineCyclegram - сплайн-интерполяция циклограммы для диагностики
type SplineCyclegram struct {
	Success       bool `json:"success"`
	SplineEnabled bool `json:"spline_enabled"`
	Data          struct {
		T  []float64 `json:"t"`
		Q1 []float64 `json:"q1"`
		Q2 []float64 `json:"q2"`
	} `json:"data"`
}

// PersistedConfigRecord - конфигурация, сохраненная на сервере
type PersistedConfigRecord struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	UserID     int64              `json:"user_id,omitempty"`
	Owner      string             `json:"username,omitempty"`
	ConfigData RobotConfiguration `json:"config_data"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// ConfigSummary - элемент списка сохраненных конфигураций
type ConfigSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"user_id,omitempty"`
	Owner     string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordRef указывает на текущую серверную запись, с которой связана конфигурация
type RecordRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LogKind - вид записи журнала
type LogKind string

const (
	LogInfo    LogKind = "info"
	LogSuccess LogKind = "success"
	LogError   LogKind = "error"
)

// LogEntry - запись журнала расчета, не изменяется после создания
type LogEntry struct {
	Message   string    `json:"message"`
	Kind      LogKind   `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// User - пользователь в панели администратора
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	ConfigsCount int       `json:"configs_count"`
}

// UserDetail - пользователь вместе с его конфигурациями
type UserDetail struct {
	User
	Configs []ConfigSummary `json:"configs"`
}

// ToggleAdminResult - ответ на переключение прав администратора
type ToggleAdminResult struct {
	IsAdmin bool   `json:"is_admin"`
	Message string `json:"message"`
}

// SessionState - состояние сессии пользователя
type SessionState int

const (
	SessionAnonymous SessionState = iota
	SessionPending
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionPending:
		return "pending"
	case SessionAuthenticated:
		return "authenticated"
	}
	return "anonymous"
}

func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CalculationPhase - этап расчета траектории
type CalculationPhase string

const (
	PhaseIdle         CalculationPhase = "idle"
	PhaseConfiguring  CalculationPhase = "configuring"
	PhaseContourSetup CalculationPhase = "contour_setup"
	PhaseCalculating  CalculationPhase = "calculating"
	PhaseSucceeded    CalculationPhase = "succeeded"
	PhaseFailed       CalculationPhase = "failed"
)

// CalculationOutcome описывает завершенный запуск расчета
type CalculationOutcome struct {
	RunID      string           `json:"run_id"`
	Phase      CalculationPhase `json:"phase"`
	FailedAt   CalculationPhase `json:"failed_at,omitempty"`
	Error      string           `json:"error,omitempty"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
}
