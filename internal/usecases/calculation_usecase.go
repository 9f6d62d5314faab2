package usecases

import (
	"context"

	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/models"
)

// Calculate запускает расчет по текущей конфигурации.
func (u *Usecase) Calculate(ctx context.Context) (*models.CalculationResult, error) {
	return u.Calculation.Run(ctx)
}

func (u *Usecase) CalculationStatus() interfaces.CalculationStatus {
	status := interfaces.CalculationStatus{
		Phase: u.Calculation.State(),
		Busy:  u.Calculation.Busy(),
	}
	if result, ok := u.Calculation.Result(); ok {
		status.Result = result
	}
	if outcome, ok := u.Calculation.LastOutcome(); ok {
		status.Outcome = &outcome
	}
	return status
}

// Plot получает график; пустой вид означает вид из настроек графиков.
func (u *Usecase) Plot(ctx context.Context, kind string) (*models.PlotImage, error) {
	plot := models.PlotType(kind)
	if kind == "" {
		plot = u.Store.Get().GraphSettings.CoordType
	}
	return u.Calculation.Plot(ctx, plot)
}

func (u *Usecase) Workspace(ctx context.Context) (*models.PlotImage, error) {
	return u.Calculation.Workspace(ctx)
}

func (u *Usecase) SplineCyclegram(ctx context.Context) (*models.SplineCyclegram, error) {
	return u.Calculation.SplineCyclegram(ctx)
}

func (u *Usecase) Logs() []models.LogEntry {
	return u.Log.Entries()
}

func (u *Usecase) ClearLogs() {
	u.Log.Clear()
}

// SubscribeLogs подписывает на журнал; с withBacklog накопленные записи
// возвращаются атомарно с подпиской.
func (u *Usecase) SubscribeLogs(withBacklog bool) ([]models.LogEntry, <-chan models.LogEntry, func()) {
	if withBacklog {
		return u.Log.SubscribeWithBacklog()
	}
	entries, cancel := u.Log.Subscribe()
	return nil, entries, cancel
}
