package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Выполнить расчет
// @Description Отправляет конфигурацию сервису, устанавливает контур и запускает расчет траектории.
// @Tags Calculation
// @Produce json
// @Success 200 {object} models.CalculationResult
// @Failure 409 {object} models.ErrorResponse "Расчет уже выполняется"
// @Failure 502 {object} models.ErrorResponse "Ошибка сервиса расчета"
// @Router /calculation [post]
func (h *Handler) Calculate(c *gin.Context) {
	result, err := h.usecase.Calculate(c.Request.Context())
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "result": result})
}

func (h *Handler) CalculationStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "calculation": h.usecase.CalculationStatus()})
}

// Plot возвращает график; без параметра type используется вид из настроек
func (h *Handler) Plot(c *gin.Context) {
	image, err := h.usecase.Plot(c.Request.Context(), c.Query("type"))
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "plot": image})
}

func (h *Handler) Workspace(c *gin.Context) {
	image, err := h.usecase.Workspace(c.Request.Context())
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "plot": image})
}

func (h *Handler) SplineCyclegram(c *gin.Context) {
	data, err := h.usecase.SplineCyclegram(c.Request.Context())
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "spline": data})
}
