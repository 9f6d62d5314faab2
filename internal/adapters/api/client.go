package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

// Client обращается к сервису расчета и хранения конфигураций по HTTP/JSON.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logging.Logger
}

// New создает клиента по конфигурации приложения.
func New(cfg *config.AppConfig, logger *logging.Logger) *Client {
	return NewClient(cfg.Service.URL, cfg.Service.Timeout, logger)
}

// NewClient создает клиента для указанного адреса сервиса.
func NewClient(baseURL string, timeout time.Duration, logger *logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.WithPrefix("API"),
	}
}

type request struct {
	method      string
	path        string
	token       string
	body        interface{}
	raw         io.Reader
	contentType string
	fallback    string // сообщение, если сервис не вернул detail
}

// classifier сопоставляет HTTP-статус виду ошибки.
type classifier func(status int) error

func classifyDefault(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return apperrors.ErrAuthRequired
	case http.StatusForbidden:
		return apperrors.ErrForbidden
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	}
	return apperrors.ErrTransport
}

func classifyAdmin(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.ErrForbidden
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	}
	return apperrors.ErrTransport
}

func classifyAuth(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.ErrValidation
	}
	return classifyDefault(status)
}

func classifyCalculation(status int) error {
	return apperrors.ErrTransport
}

// do выполняет запрос и декодирует JSON-ответ в out, если он не nil.
func (c *Client) do(ctx context.Context, req request, classify classifier, out interface{}) error {
	resp, err := c.send(ctx, req, classify)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewAppError(resp.StatusCode, "Некорректный ответ сервиса", fmt.Errorf("%w: %v", apperrors.ErrTransport, err))
	}
	return nil
}

// send выполняет запрос и возвращает ответ с кодом 2xx. Тело закрывает вызывающий.
func (c *Client) send(ctx context.Context, req request, classify classifier) (*http.Response, error) {
	body := req.raw
	contentType := req.contentType
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("не удалось сериализовать запрос %s: %w", req.path, err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать запрос %s: %w", req.path, err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn("Request failed", "method", req.method, "path", req.path, "error", err)
		return nil, apperrors.NewAppError(0, "Сервис недоступен", fmt.Errorf("%w: %v", apperrors.ErrTransport, err))
	}
	c.logger.Debug("Request completed", "method", req.method, "path", req.path, "status", resp.StatusCode, "latency", time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	message := readDetail(resp.Body)
	if message == "" {
		message = req.fallback
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	return nil, apperrors.NewAppError(resp.StatusCode, message, classify(resp.StatusCode))
}

// readDetail извлекает поле detail из ответа с ошибкой.
func readDetail(r io.Reader) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		return text
	}
	return string(payload.Detail)
}
