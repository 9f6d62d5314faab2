package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	InternalServerError = "internal server error"
	BadRequest          = "bad request"
	NotFound            = "not_found"
	UnauthorizedError   = "unauthorized"
	ForbiddenError      = "forbidden"
	ConflictError       = "busy"
	BadGatewayError     = "upstream service error"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrAuthRequired      = errors.New("authorization required")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrTransport         = errors.New("transport error")
	ErrCalculationFailed = errors.New("calculation failed")
	ErrBusy              = errors.New("calculation already in progress")
)

// AppError описывает ошибку обращения к внешнему сервису.
type AppError struct {
	Code    int    `json:"code"`    // HTTP статус код, 0 для сетевых ошибок
	Message string `json:"message"` // Сообщение для пользователя
	Err     error  `json:"-"`       // Вид ошибки или внутренняя причина
}

func (a *AppError) Error() string {
	if a == nil {
		return ""
	}
	if a.Err != nil {
		if a.Code != 0 {
			return fmt.Sprintf("%s (code: %d): %v", a.Message, a.Code, a.Err)
		}
		return fmt.Sprintf("%s: %v", a.Message, a.Err)
	}
	return fmt.Sprintf("%s (code: %d)", a.Message, a.Code)
}

func (a *AppError) Unwrap() error {
	return a.Err
}

// NewAppError создает новый экземпляр AppError.
func NewAppError(httpCode int, message string, err error) *AppError {
	return &AppError{
		Code:    httpCode,
		Message: message,
		Err:     err,
	}
}

// ValidationError сообщает о некорректном значении поля формы.
type ValidationError struct {
	Field string
	Value string
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("некорректное значение %q: %v", e.Value, e.Cause)
	}
	return fmt.Sprintf("некорректное значение поля %s (%q): %v", e.Field, e.Value, e.Cause)
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}

// NewValidationError создает ошибку проверки поля.
func NewValidationError(field, value string, cause error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Cause: cause}
}

// HTTPStatus сопоставляет вид ошибки HTTP-статусу локального API.
func HTTPStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, BadRequest
	case errors.Is(err, ErrAuthRequired):
		return http.StatusUnauthorized, UnauthorizedError
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, ForbiddenError
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, NotFound
	case errors.Is(err, ErrBusy):
		return http.StatusConflict, ConflictError
	case errors.Is(err, ErrTransport), errors.Is(err, ErrCalculationFailed):
		return http.StatusBadGateway, BadGatewayError
	}
	return http.StatusInternalServerError, InternalServerError
}
