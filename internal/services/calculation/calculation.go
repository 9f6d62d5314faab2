// Package calculation выполняет многошаговый расчет траектории на внешнем
// сервисе и сообщает о ходе расчета в журнал пользователя.
package calculation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iwtcode/robotConfigurator/internal/adapters/api"
	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/internal/services/kafka"
	"github.com/iwtcode/robotConfigurator/internal/services/logsink"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

const (
	defaultSpeed   = 1
	publishTimeout = 10 * time.Second
)

// ConfigSource выдает снимок конфигурации для расчета.
type ConfigSource interface {
	Get() models.RobotConfiguration
}

// Orchestrator допускает только один расчет одновременно.
type Orchestrator struct {
	mu      sync.RWMutex
	phase   models.CalculationPhase
	result  *models.CalculationResult
	outcome *models.CalculationOutcome

	api       interfaces.CalculationAPI
	source    ConfigSource
	sink      *logsink.Sink
	publisher *kafka.ResultPublisher
	logger    *logging.Logger
	now       func() time.Time
	publishes sync.WaitGroup
}

func NewOrchestrator(
	calcAPI interfaces.CalculationAPI,
	source ConfigSource,
	sink *logsink.Sink,
	publisher *kafka.ResultPublisher,
	logger *logging.Logger,
) *Orchestrator {
	return &Orchestrator{
		phase:     models.PhaseIdle,
		api:       calcAPI,
		source:    source,
		sink:      sink,
		publisher: publisher,
		logger:    logger.WithPrefix("CALC"),
		now:       time.Now,
	}
}

// Run выполняет configure, настройку контура и calculate по снимку,
// снятому в момент запуска. Отмена ctx вызывающим не прерывает начатый
// расчет: ограничивает его только таймаут HTTP-клиента.
func (o *Orchestrator) Run(ctx context.Context) (*models.CalculationResult, error) {
	ctx = context.WithoutCancel(ctx)
	if err := o.begin(); err != nil {
		return nil, err
	}
	run := &models.CalculationOutcome{RunID: uuid.NewString(), StartedAt: o.now()}
	cfg := o.source.Get()
	log := o.logger.WithPrefix(run.RunID[:8])

	o.sink.Info("Начало расчёта траектории...")
	log.Info("Calculation started", "robot_type", cfg.RobotType, "movement", cfg.MovementType)

	result, err := o.pipeline(ctx, cfg, log)
	if err != nil {
		o.finish(run, nil, err)
		return nil, err
	}

	o.finish(run, result, nil)
	o.report(result)
	log.Info("Calculation succeeded", "points", result.TrajectoryLength)

	if o.publisher != nil {
		o.publishes.Add(1)
		go o.publish(log, kafka.ResultMessage{
			RunID:         run.RunID,
			CalculatedAt:  run.FinishedAt,
			Result:        *result,
			Configuration: cfg,
		})
	}
	return result, nil
}

// publish отправляет результат в фоне; ответ пользователю не ждет брокер.
func (o *Orchestrator) publish(log *logging.Logger, msg kafka.ResultMessage) {
	defer o.publishes.Done()
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := o.publisher.Publish(ctx, msg); err != nil {
		log.Warn("Result was not published", "error", err)
	}
}

// Wait дожидается завершения фоновых публикаций.
func (o *Orchestrator) Wait() {
	o.publishes.Wait()
}

func (o *Orchestrator) pipeline(ctx context.Context, cfg models.RobotConfiguration, log *logging.Logger) (*models.CalculationResult, error) {
	o.setPhase(models.PhaseConfiguring)
	o.sink.Info("Конфигурация робота...")
	status, err := o.api.Configure(ctx, api.NewConfigureRequest(cfg))
	if err != nil {
		return nil, o.fail(log, err)
	}
	if status != nil && status.Message != "" {
		log.Debug("Robot configured", "message", status.Message)
	}
	o.sink.Success("Робот успешно сконфигурирован")

	if cfg.MovementType == models.MovementContour {
		o.setPhase(models.PhaseContourSetup)
		if err := o.setupContour(ctx, cfg.Trajectory, log); err != nil {
			return nil, o.fail(log, err)
		}
	}

	o.setPhase(models.PhaseCalculating)
	o.sink.Info("Расчёт траектории...")
	result, err := o.api.Calculate(ctx)
	if err != nil {
		return nil, o.fail(log, err)
	}
	if !result.Success {
		o.sink.Error("Ошибка при расчёте траектории")
		log.Warn("Calculation rejected by service")
		return nil, apperrors.NewAppError(http.StatusOK, "Ошибка при расчёте траектории", apperrors.ErrCalculationFailed)
	}
	return result, nil
}

// setupContour передает контур; неполностью заданный контур пропускается.
func (o *Orchestrator) setupContour(ctx context.Context, tr models.Trajectory, log *logging.Logger) error {
	switch tr.Type {
	case models.TrajectoryCircle:
		c := tr.Circle
		if !c.Complete() {
			log.Info("Circle contour incomplete, skipped")
			return nil
		}
		o.sink.Info("Установка кругового контура...")
		return o.api.SetCircleContour(ctx, dto.CircleContourRequest{
			X:      c.X.Value,
			Y:      c.Y.Value,
			Radius: c.Radius.Value,
			Speed:  speed(c.Speed),
		})
	default:
		l := tr.Line
		if !l.Complete() {
			log.Info("Line contour incomplete, skipped")
			return nil
		}
		o.sink.Info("Установка линейного контура...")
		return o.api.SetLineContour(ctx, dto.LineContourRequest{
			X1:    l.X1.Value,
			X2:    l.X2.Value,
			Y1:    l.Y1.Value,
			Y2:    l.Y2.Value,
			Speed: speed(l.Speed),
		})
	}
}

// speed подставляет 1 для незаданной или нулевой скорости.
func speed(n models.Number) float64 {
	if !n.Valid || n.Value == 0 {
		return defaultSpeed
	}
	return n.Value
}

func (o *Orchestrator) report(r *models.CalculationResult) {
	o.sink.Success(fmt.Sprintf("Расчёт завершён успешно. Точек траектории: %d", r.TrajectoryLength))
	o.sink.Info("Тип робота: " + r.RobotType)
	o.sink.Info("Тип управления: " + r.TypeOfControl)
	for i, q := range []*models.QualityMetrics{r.QualityLink1, r.QualityLink2} {
		if q == nil {
			continue
		}
		o.sink.Info(fmt.Sprintf("Звено %d - Средняя ошибка: %.6f, Время регулирования: %.4f с", i+1, q.AvgError, q.AvgRegTime))
	}
}

func (o *Orchestrator) fail(log *logging.Logger, err error) error {
	o.sink.Error("Ошибка: " + UserMessage(err))
	log.Error("Calculation failed", "phase", o.State(), "error", err)
	return err
}

// UserMessage возвращает текст ошибки для журнала пользователя.
func UserMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

func (o *Orchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.phase != models.PhaseIdle {
		return apperrors.NewAppError(http.StatusConflict, "Расчёт уже выполняется", apperrors.ErrBusy)
	}
	o.phase = models.PhaseConfiguring
	return nil
}

func (o *Orchestrator) setPhase(p models.CalculationPhase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.phase = p
}

// finish сохраняет итог и возвращает оркестратор в Idle. Результат
// предыдущего расчета заменяется только при успехе.
func (o *Orchestrator) finish(run *models.CalculationOutcome, result *models.CalculationResult, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	run.FinishedAt = o.now()
	if err != nil {
		run.Phase = models.PhaseFailed
		run.FailedAt = o.phase
		run.Error = UserMessage(err)
	} else {
		run.Phase = models.PhaseSucceeded
		o.result = result
	}
	o.outcome = run
	o.phase = models.PhaseIdle
}

// Busy сообщает, выполняется ли расчет.
func (o *Orchestrator) Busy() bool {
	return o.State() != models.PhaseIdle
}

func (o *Orchestrator) State() models.CalculationPhase {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.phase
}

// Result возвращает последний успешный результат.
func (o *Orchestrator) Result() (*models.CalculationResult, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.result == nil {
		return nil, false
	}
	r := *o.result
	return &r, true
}

// LastOutcome возвращает итог последнего запуска.
func (o *Orchestrator) LastOutcome() (models.CalculationOutcome, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.outcome == nil {
		return models.CalculationOutcome{}, false
	}
	return *o.outcome, true
}
