package handlers

import (
	"errors"
	"net/http"
	"strconv"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse возвращает стандартизированный ответ с ошибкой
func (h *Handler) ErrorResponse(c *gin.Context, err error, statusCode int, message string, showError bool) {
	errorMessage := message
	if showError && err != nil {
		errorMessage = message + ": " + err.Error()
	}

	if statusCode >= http.StatusInternalServerError {
		h.logger.Error(message, "error", err, "statusCode", statusCode)
	} else {
		h.logger.Warn(message, "error", err, "statusCode", statusCode)
	}
	if err != nil {
		_ = c.Error(err)
	}
	resp := dto.ErrorResponse{Status: "error"}
	resp.Error.Code = statusCode
	resp.Error.Message = errorMessage
	c.AbortWithStatusJSON(statusCode, resp)
}

// BadRequest возвращает ошибку 400
func (h *Handler) BadRequest(c *gin.Context, err error, message string) {
	if message == "" {
		message = apperrors.BadRequest
	}
	h.ErrorResponse(c, err, http.StatusBadRequest, message, true)
}

// Fail сопоставляет ошибку use case статусу ответа.
// Сообщение сервиса передается клиенту без внутренних подробностей.
func (h *Handler) Fail(c *gin.Context, err error) {
	status, message := apperrors.HTTPStatus(err)

	var appErr *apperrors.AppError
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &appErr) && appErr.Message != "":
		message = appErr.Message
	case errors.As(err, &validationErr):
		message = validationErr.Error()
	case status != http.StatusInternalServerError:
		message = err.Error()
	}
	h.ErrorResponse(c, err, status, message, false)
}

// OK возвращает успешный ответ с сообщением
func (h *Handler) OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Status: "ok", Message: message})
}

// idParam разбирает числовой идентификатор из пути
func (h *Handler) idParam(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, apperrors.NewValidationError("id", raw, err), "Некорректный идентификатор")
		return 0, false
	}
	return id, true
}
