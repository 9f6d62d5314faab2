package handlers

import (
	"net/http"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware пишет итог запроса вместе с пользователем сессии,
// фазой расчета и видом ошибки use case.
func LoggingMiddleware(parentLogger *logging.Logger, uc interfaces.Usecases) gin.HandlerFunc {
	logger := parentLogger.WithPrefix("HTTP")

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		state, session := uc.SessionInfo()
		user := "-"
		if state == models.SessionAuthenticated {
			user = session.Username
		}
		fields := []interface{}{
			"method", c.Request.Method,
			"route", route(c),
			"status", status,
			"latency", time.Since(start),
			"session", state,
			"user", user,
			"calc_phase", uc.CalculationStatus().Phase,
		}
		if last := c.Errors.Last(); last != nil {
			_, kind := apperrors.HTTPStatus(last.Err)
			fields = append(fields, "error_kind", kind)
		}

		if status >= http.StatusInternalServerError {
			logger.Warn("Request failed", fields...)
			return
		}
		logger.Info("Request completed", fields...)
	}
}

// route возвращает шаблон маршрута; для неизвестных путей сам путь.
func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}

// CORSMiddleware разрешает обращения локального интерфейса с другого порта
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
