package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Список пользователей
// @Tags Admin
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} models.ErrorResponse "Нет прав администратора"
// @Router /admin/users [get]
func (h *Handler) AdminListUsers(c *gin.Context) {
	users, err := h.usecase.AdminListUsers(c.Request.Context())
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "users": users})
}

func (h *Handler) AdminGetUser(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	user, err := h.usecase.AdminGetUser(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "user": user})
}

func (h *Handler) AdminDeleteUser(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.usecase.AdminDeleteUser(c.Request.Context(), id); err != nil {
		h.Fail(c, err)
		return
	}
	h.OK(c, "Пользователь удалён")
}

func (h *Handler) AdminToggleAdmin(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	result, err := h.usecase.AdminToggleAdmin(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "result": result})
}

func (h *Handler) AdminListConfigs(c *gin.Context) {
	list, err := h.usecase.AdminListConfigs(c.Request.Context())
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "configs": list})
}

// AdminLoadConfig загружает чужую конфигурацию без привязки к записи
func (h *Handler) AdminLoadConfig(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	record, err := h.usecase.AdminLoadConfig(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "record": record, "config": h.usecase.Configuration()})
}

func (h *Handler) AdminDeleteConfig(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.usecase.AdminDeleteConfig(c.Request.Context(), id); err != nil {
		h.Fail(c, err)
		return
	}
	h.OK(c, "Конфигурация удалена")
}
