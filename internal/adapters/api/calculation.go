package api

import (
	"context"
	"net/http"
	"net/url"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/models"
)

const robotPrefix = "/api/robot"

// Configure передает сервису полную конфигурацию робота.
func (c *Client) Configure(ctx context.Context, req dto.ConfigureRequest) (*dto.StatusResponse, error) {
	var out dto.StatusResponse
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     robotPrefix + "/configure",
		body:     req,
		fallback: "Неизвестная ошибка",
	}, classifyCalculation, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetLineContour задает линейный контур.
func (c *Client) SetLineContour(ctx context.Context, req dto.LineContourRequest) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		path:     robotPrefix + "/contour/line",
		body:     req,
		fallback: "Неизвестная ошибка",
	}, classifyCalculation, nil)
}

// SetCircleContour задает круговой контур.
func (c *Client) SetCircleContour(ctx context.Context, req dto.CircleContourRequest) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		path:     robotPrefix + "/contour/circle",
		body:     req,
		fallback: "Неизвестная ошибка",
	}, classifyCalculation, nil)
}

// Calculate запускает расчет траектории по текущему состоянию сервиса.
func (c *Client) Calculate(ctx context.Context) (*models.CalculationResult, error) {
	var out models.CalculationResult
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     robotPrefix + "/calculate",
		fallback: "Неизвестная ошибка",
	}, classifyCalculation, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Plot получает изображение графика по идентификатору сервиса.
func (c *Client) Plot(ctx context.Context, plotID string) (*models.PlotImage, error) {
	var out models.PlotImage
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     robotPrefix + "/plot/" + url.PathEscape(plotID),
		fallback: "Неизвестная ошибка",
	}, classifyCalculation, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Workspace получает изображение рабочей зоны робота.
func (c *Client) Workspace(ctx context.Context) (*models.PlotImage, error) {
	var out models.PlotImage
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     robotPrefix + "/workspace",
		fallback: "Неизвестная ошибка",
	}, classifyCalculation, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SplineCyclegram получает сплайн-интерполяцию циклограммы.
func (c *Client) SplineCyclegram(ctx context.Context) (*models.SplineCyclegram, error) {
	var out models.SplineCyclegram
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     robotPrefix + "/spline-cyclegram",
		fallback: "Неизвестная ошибка",
	}, classifyCalculation, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
