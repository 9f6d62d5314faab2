package calculation

import (
	"context"
	"net/http"

	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

// Plot получает график выбранного вида по результатам последнего расчета.
func (o *Orchestrator) Plot(ctx context.Context, kind models.PlotType) (*models.PlotImage, error) {
	id, err := kind.APIID()
	if err != nil {
		return nil, apperrors.NewValidationError("plot_type", string(kind), err)
	}
	img, err := o.api.Plot(ctx, id)
	if err != nil {
		o.logger.Warn("Plot request failed", "plot_type", kind, "error", err)
		return nil, err
	}
	if !img.Success {
		return nil, apperrors.NewAppError(http.StatusOK, "Не удалось построить график", apperrors.ErrTransport)
	}
	return img, nil
}

// Workspace получает изображение рабочей зоны робота.
func (o *Orchestrator) Workspace(ctx context.Context) (*models.PlotImage, error) {
	img, err := o.api.Workspace(ctx)
	if err != nil {
		o.logger.Warn("Workspace request failed", "error", err)
		return nil, err
	}
	if !img.Success {
		return nil, apperrors.NewAppError(http.StatusOK, "Не удалось построить рабочую зону", apperrors.ErrTransport)
	}
	return img, nil
}

// SplineCyclegram получает сплайн-интерполяцию циклограммы.
func (o *Orchestrator) SplineCyclegram(ctx context.Context) (*models.SplineCyclegram, error) {
	data, err := o.api.SplineCyclegram(ctx)
	if err != nil {
		o.logger.Warn("Spline cyclegram request failed", "error", err)
		return nil, err
	}
	return data, nil
}
