package calculation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/adapters/api"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/internal/services/kafka"
	"github.com/iwtcode/robotConfigurator/internal/services/logsink"
	"github.com/iwtcode/robotConfigurator/internal/services/store"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	mu        sync.Mutex
	calls     []string
	bodies    map[string]map[string]interface{}
	failOn    string
	rejectRun bool
	gate      chan struct{}
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()
	record := func(name string, next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.mu.Lock()
			f.calls = append(f.calls, name)
			f.bodies[name] = body
			failing := f.failOn == name
			f.mu.Unlock()
			if name == "configure" && f.gate != nil {
				<-f.gate
			}
			if failing {
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Нет соединения с моделью"})
				return
			}
			next(w, r)
		}
	}
	ok := func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "ok"})
	}
	mux.HandleFunc("POST /api/robot/configure", record("configure", ok))
	mux.HandleFunc("POST /api/robot/contour/line", record("line", ok))
	mux.HandleFunc("POST /api/robot/contour/circle", record("circle", ok))
	mux.HandleFunc("POST /api/robot/calculate", record("calculate", func(w http.ResponseWriter, r *http.Request) {
		if f.rejectRun {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success":           true,
			"robot_type":        "Декартовый",
			"type_of_control":   "Позиционное",
			"trajectory_length": 250,
			"quality_link_1":    map[string]float64{"avg_error": 0.00125, "avg_reg_time": 0.25},
		})
	}))
	mux.HandleFunc("GET /api/robot/plot/{id}", record("plot", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "plot_type": r.PathValue("id"), "image_base64": "aW1n"})
	}))
	return mux
}

func (f *fakeService) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type recordingProducer struct {
	mu     sync.Mutex
	values [][]byte
	block  chan struct{}
}

func (r *recordingProducer) Produce(ctx context.Context, _, value []byte) error {
	if r.block != nil {
		select {
		case <-r.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, value)
	return nil
}

func (r *recordingProducer) Close() error { return nil }

func (r *recordingProducer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

type fixture struct {
	service  *fakeService
	store    *store.Store
	sink     *logsink.Sink
	producer *recordingProducer
	orch     *Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	service := &fakeService{bodies: map[string]map[string]interface{}{}}
	srv := httptest.NewServer(service.handler())
	t.Cleanup(srv.Close)

	st := store.New()
	sink := logsink.New(logging.Nop())
	producer := &recordingProducer{}
	client := api.NewClient(srv.URL, 5*time.Second, logging.Nop())
	orch := NewOrchestrator(client, st, sink, kafka.NewResultPublisher(producer, logging.Nop()), logging.Nop())
	return &fixture{service: service, store: st, sink: sink, producer: producer, orch: orch}
}

func messages(s *logsink.Sink) []string {
	var out []string
	for _, e := range s.Entries() {
		out = append(out, e.Message)
	}
	return out
}

func TestPositionRunEndToEnd(t *testing.T) {
	f := newFixture(t)

	result, err := f.orch.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 250, result.TrajectoryLength)
	require.Equal(t, []string{"configure", "calculate"}, f.service.calls)

	require.Equal(t, []string{
		"Начало расчёта траектории...",
		"Конфигурация робота...",
		"Робот успешно сконфигурирован",
		"Расчёт траектории...",
		"Расчёт завершён успешно. Точек траектории: 250",
		"Тип робота: Декартовый",
		"Тип управления: Позиционное",
		"Звено 1 - Средняя ошибка: 0.001250, Время регулирования: 0.2500 с",
	}, messages(f.sink))

	stored, ok := f.orch.Result()
	require.True(t, ok)
	require.Equal(t, 250, stored.TrajectoryLength)

	outcome, ok := f.orch.LastOutcome()
	require.True(t, ok)
	require.Equal(t, models.PhaseSucceeded, outcome.Phase)
	require.NotEmpty(t, outcome.RunID)
	require.Equal(t, models.PhaseIdle, f.orch.State())
	f.orch.Wait()
	require.Equal(t, 1, f.producer.count())

	body := f.service.bodies["configure"]
	require.Equal(t, "Декартовый", body["robot_type"])
	require.Equal(t, "Позиционное", body["type_of_control"])
	require.Equal(t, 1.0, body["x_max"])
}

func TestContourLineUsesDefaultSpeed(t *testing.T) {
	f := newFixture(t)
	cfg := models.DefaultConfiguration()
	cfg.MovementType = models.MovementContour
	cfg.Trajectory.Line = models.LineParams{X1: models.Num(0), X2: models.Num(1), Y1: models.Num(0), Y2: models.Num(0.5)}
	f.store.Replace(cfg)

	_, err := f.orch.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"configure", "line", "calculate"}, f.service.calls)
	require.Equal(t, 1.0, f.service.bodies["line"]["speed"])
	require.Contains(t, messages(f.sink), "Установка линейного контура...")
}

func TestIncompleteContourIsSkipped(t *testing.T) {
	f := newFixture(t)
	cfg := models.DefaultConfiguration()
	cfg.MovementType = models.MovementContour
	cfg.Trajectory.Type = models.TrajectoryCircle
	cfg.Trajectory.Circle = models.CircleParams{X: models.Num(0.1), Y: models.Num(0.1)}
	f.store.Replace(cfg)

	_, err := f.orch.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"configure", "calculate"}, f.service.calls)
	require.NotContains(t, messages(f.sink), "Установка кругового контура...")
}

func TestConfigureFailureStopsPipeline(t *testing.T) {
	f := newFixture(t)
	_, err := f.orch.Run(context.Background())
	require.NoError(t, err)

	f.service.failOn = "configure"
	f.service.calls = nil
	f.sink.Clear()

	_, err = f.orch.Run(context.Background())
	require.ErrorIs(t, err, apperrors.ErrTransport)
	require.Equal(t, []string{"configure"}, f.service.calls)

	msgs := messages(f.sink)
	require.Equal(t, "Ошибка: Нет соединения с моделью", msgs[len(msgs)-1])

	outcome, _ := f.orch.LastOutcome()
	require.Equal(t, models.PhaseFailed, outcome.Phase)
	require.Equal(t, models.PhaseConfiguring, outcome.FailedAt)

	prev, ok := f.orch.Result()
	require.True(t, ok)
	require.Equal(t, 250, prev.TrajectoryLength)
	require.False(t, f.orch.Busy())
}

func TestRejectedCalculation(t *testing.T) {
	f := newFixture(t)
	f.service.rejectRun = true

	_, err := f.orch.Run(context.Background())
	require.ErrorIs(t, err, apperrors.ErrCalculationFailed)
	require.Contains(t, messages(f.sink), "Ошибка при расчёте траектории")

	_, ok := f.orch.Result()
	require.False(t, ok)
	f.orch.Wait()
	require.Zero(t, f.producer.count())
}

func TestSecondRunIsRejectedWhileBusy(t *testing.T) {
	f := newFixture(t)
	f.service.gate = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := f.orch.Run(context.Background())
		done <- err
	}()

	require.Eventually(t, f.orch.Busy, time.Second, 5*time.Millisecond)
	_, err := f.orch.Run(context.Background())
	require.ErrorIs(t, err, apperrors.ErrBusy)

	close(f.service.gate)
	require.NoError(t, <-done)
	require.False(t, f.orch.Busy())
}

func TestCallerCancelDoesNotAbortRun(t *testing.T) {
	f := newFixture(t)
	f.service.gate = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := f.orch.Run(ctx)
		done <- err
	}()

	require.Eventually(t, func() bool {
		return f.orch.State() == models.PhaseConfiguring && len(f.service.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
	close(f.service.gate)

	require.NoError(t, <-done)
	require.Equal(t, []string{"configure", "calculate"}, f.service.snapshot())
	_, ok := f.orch.Result()
	require.True(t, ok)
}

func TestSlowBrokerDoesNotDelayRun(t *testing.T) {
	f := newFixture(t)
	f.producer.block = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := f.orch.Run(context.Background())
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run waited for the broker")
	}
	require.Zero(t, f.producer.count())

	close(f.producer.block)
	f.orch.Wait()
	require.Equal(t, 1, f.producer.count())
}

func TestPlot(t *testing.T) {
	f := newFixture(t)

	img, err := f.orch.Plot(context.Background(), models.PlotGeneral)
	require.NoError(t, err)
	require.Equal(t, "obobshennie_coordinates", img.PlotType)

	_, err = f.orch.Plot(context.Background(), models.PlotType("radar"))
	require.ErrorIs(t, err, apperrors.ErrValidation)
}
