package handlers

import (
	"net/http"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/models"

	"github.com/gin-gonic/gin"
)

// @Summary Получить конфигурацию
// @Description Возвращает текущий снимок конфигурации робота.
// @Tags Config
// @Produce json
// @Success 200 {object} models.RobotConfiguration
// @Router /config [get]
func (h *Handler) GetConfiguration(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "config": h.usecase.Configuration()})
}

// @Summary Заменить конфигурацию
// @Description Полностью заменяет конфигурацию; значения приводятся к допустимым.
// @Tags Config
// @Accept json
// @Produce json
// @Param input body models.RobotConfiguration true "Новая конфигурация"
// @Success 200 {object} models.RobotConfiguration
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Router /config [put]
func (h *Handler) ReplaceConfiguration(c *gin.Context) {
	var cfg models.RobotConfiguration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		h.BadRequest(c, err, "Неверный формат конфигурации")
		return
	}
	replaced, err := h.usecase.ReplaceConfiguration(cfg)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "config": replaced})
}

// @Summary Применить форму группы
// @Description Проверяет значения формы и применяет их к группе конфигурации.
// @Tags Config
// @Accept json
// @Produce json
// @Param group path string true "Группа параметров"
// @Success 200 {object} models.RobotConfiguration
// @Failure 400 {object} models.ErrorResponse "Некорректное значение поля"
// @Router /config/{group} [patch]
func (h *Handler) ApplyGroup(c *gin.Context) {
	var form map[string]string
	if err := c.ShouldBindJSON(&form); err != nil {
		h.BadRequest(c, err, "Неверный формат формы")
		return
	}
	cfg, err := h.usecase.ApplyGroup(c.Param("group"), form)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "config": cfg})
}

// ConfirmTrajectoryType подтверждает выбор вида траектории
func (h *Handler) ConfirmTrajectoryType(c *gin.Context) {
	var req dto.TrajectoryTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "")
		return
	}
	cfg, err := h.usecase.ConfirmTrajectoryType(req.Type)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "config": cfg, "dialogs": h.usecase.Dialogs()})
}

func (h *Handler) GetDialogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dialogs": h.usecase.Dialogs()})
}

func (h *Handler) OpenDialog(c *gin.Context) {
	if err := h.usecase.OpenDialog(c.Param("name")); err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dialogs": h.usecase.Dialogs()})
}

func (h *Handler) CloseDialog(c *gin.Context) {
	if err := h.usecase.CloseDialog(c.Param("name")); err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dialogs": h.usecase.Dialogs()})
}
