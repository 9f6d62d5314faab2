package handlers

import (
	"net/http"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/models"

	"github.com/gin-gonic/gin"
)

func sessionResponse(state models.SessionState, s models.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Status:   "ok",
		State:    state,
		Username: s.Username,
		IsAdmin:  s.IsAdmin,
	}
}

// @Summary Состояние сессии
// @Tags Session
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Router /session [get]
func (h *Handler) GetSession(c *gin.Context) {
	state, s := h.usecase.SessionInfo()
	c.JSON(http.StatusOK, sessionResponse(state, s))
}

// RestoreSession повторно проверяет сохраненный токен
func (h *Handler) RestoreSession(c *gin.Context) {
	if _, err := h.usecase.RestoreSession(c.Request.Context()); err != nil {
		h.Fail(c, err)
		return
	}
	state, s := h.usecase.SessionInfo()
	c.JSON(http.StatusOK, sessionResponse(state, s))
}

// @Summary Вход
// @Tags Session
// @Accept json
// @Produce json
// @Param input body models.Credentials true "Имя пользователя и пароль"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse "Неверный логин или пароль"
// @Router /session/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req dto.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "")
		return
	}
	s, err := h.usecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(models.SessionAuthenticated, s))
}

// @Summary Регистрация
// @Tags Session
// @Accept json
// @Produce json
// @Param input body models.RegisterForm true "Данные формы регистрации"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse "Ошибка проверки формы"
// @Router /session/register [post]
func (h *Handler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.BadRequest(c, err, "")
		return
	}
	s, err := h.usecase.Register(c.Request.Context(), form)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(models.SessionAuthenticated, s))
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context()); err != nil {
		h.Fail(c, err)
		return
	}
	h.OK(c, "Вы вышли из аккаунта")
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var form dto.ChangePasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.BadRequest(c, err, "")
		return
	}
	if err := h.usecase.ChangePassword(c.Request.Context(), form.CurrentPassword, form.NewPassword, form.ConfirmPassword); err != nil {
		h.Fail(c, err)
		return
	}
	h.OK(c, "Пароль успешно изменён")
}
