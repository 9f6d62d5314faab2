package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second, logging.Nop())
}

func requireAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "ожидалась AppError, получено %v", err)
	return appErr
}

func TestReadDetail(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"detail":"Конфигурация не найдена"}`, "Конфигурация не найдена"},
		{`{"detail":[{"loc":["body","name"]}]}`, `[{"loc":["body","name"]}]`},
		{`{"message":"x"}`, ""},
		{`not json`, ""},
		{``, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, readDetail(strings.NewReader(tc.body)), tc.body)
	}
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		classify classifier
		want     error
	}{
		{"default 401", http.StatusUnauthorized, classifyDefault, apperrors.ErrAuthRequired},
		{"default 404", http.StatusNotFound, classifyDefault, apperrors.ErrNotFound},
		{"default 500", http.StatusInternalServerError, classifyDefault, apperrors.ErrTransport},
		{"admin 401", http.StatusUnauthorized, classifyAdmin, apperrors.ErrForbidden},
		{"admin 403", http.StatusForbidden, classifyAdmin, apperrors.ErrForbidden},
		{"auth 422", http.StatusUnprocessableEntity, classifyAuth, apperrors.ErrValidation},
		{"auth 401", http.StatusUnauthorized, classifyAuth, apperrors.ErrAuthRequired},
		{"calculation 404", http.StatusNotFound, classifyCalculation, apperrors.ErrTransport},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.classify(tc.status), tc.want)
		})
	}
}

func TestGetConfigNotFoundUsesDetail(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/configs/42", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Конфигурация не найдена"}`))
	})

	_, err := c.GetConfig(context.Background(), "tok", 42)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Конфигурация не найдена", appErr.Message)
}

func TestFallbackMessageWithoutDetail(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.DeleteUser(context.Background(), "tok", 3)
	require.ErrorIs(t, err, apperrors.ErrTransport)
	assert.Equal(t, "Ошибка удаления пользователя", requireAppError(t, err).Message)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := NewClient(srv.URL, time.Second, logging.Nop())
	srv.Close()

	_, err := c.Calculate(context.Background())
	require.ErrorIs(t, err, apperrors.ErrTransport)
	assert.Equal(t, 0, requireAppError(t, err).Code)
}

func TestLoginSendsCredentials(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"access_token":"abc","username":"operator","is_admin":true}`))
	})

	resp, err := c.Login(context.Background(), dto.Credentials{Username: "operator", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.AccessToken)
	assert.True(t, resp.IsAdmin)
}

func TestUploadFileRejected(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			assert.Equal(t, "robot.txt", header.Filename)
		}
		_, _ = w.Write([]byte(`{"success":false}`))
	})

	_, err := c.UploadFile(context.Background(), "robot.txt", strings.NewReader("robotType: scara"))
	require.ErrorIs(t, err, apperrors.ErrTransport)
}

func TestNewConfigureRequestDefaults(t *testing.T) {
	req := NewConfigureRequest(models.RobotConfiguration{})
	assert.Equal(t, "Декартовый", req.RobotType)
	assert.Equal(t, "Позиционное", req.TypeOfControl)
	assert.Equal(t, []float64{1, 1, 1, 1}, req.Kp)
	assert.Equal(t, 24.0, req.Umax[0])

	var cfg models.RobotConfiguration
	cfg.RobotType = models.RobotScara
	cfg.MovementType = models.MovementContour
	cfg.RegulatorParams.Kp[2] = models.Num(5)
	req = NewConfigureRequest(cfg)
	assert.Equal(t, "Скара", req.RobotType)
	assert.Equal(t, "Контурное", req.TypeOfControl)
	assert.Equal(t, 5.0, req.Kp[2])
}
