package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// @Summary Список конфигураций
// @Description Возвращает конфигурации текущего пользователя.
// @Tags Configs
// @Produce json
// @Success 200 {array} models.ConfigSummary
// @Failure 401 {object} models.ErrorResponse "Требуется авторизация"
// @Router /configs [get]
func (h *Handler) ListConfigs(c *gin.Context) {
	list, err := h.usecase.ListConfigs(c.Request.Context())
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "configs": list})
}

// @Summary Сохранить конфигурацию
// @Description Обновляет связанную запись или создает новую, если as_new или связи нет.
// @Tags Configs
// @Accept json
// @Produce json
// @Param input body models.SaveConfigRequest true "Имя и режим сохранения"
// @Success 200 {object} models.PersistedConfigRecord
// @Failure 400 {object} models.ErrorResponse "Пустое имя"
// @Failure 401 {object} models.ErrorResponse "Требуется авторизация"
// @Router /configs [post]
func (h *Handler) SaveConfig(c *gin.Context) {
	var req dto.SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BadRequest(c, err, "")
		return
	}
	record, err := h.usecase.SaveConfig(c.Request.Context(), req.Name, req.AsNew)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "record": record})
}

func (h *Handler) LoadConfig(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	record, err := h.usecase.LoadConfig(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "record": record, "config": h.usecase.Configuration()})
}

func (h *Handler) DeleteConfig(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteConfig(c.Request.Context(), id); err != nil {
		h.Fail(c, err)
		return
	}
	h.OK(c, "Конфигурация удалена")
}

func (h *Handler) CurrentRecord(c *gin.Context) {
	ref, label := h.usecase.CurrentRecord()
	c.JSON(http.StatusOK, dto.CurrentRecordResponse{Status: "ok", Record: ref, Label: label})
}

func (h *Handler) CurrentFile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "filename": h.usecase.CurrentFileName()})
}

// @Summary Импорт файла
// @Description Разбирает локальный YAML-файл и накладывает его группы на конфигурацию.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл конфигурации"
// @Success 200 {object} models.RobotConfiguration
// @Failure 400 {object} models.ErrorResponse "Файл не разобран"
// @Router /files/import [post]
func (h *Handler) ImportFile(c *gin.Context) {
	filename, r, ok := h.formFile(c)
	if !ok {
		return
	}
	defer r.Close()

	cfg, err := h.usecase.ImportFile(filename, r)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "config": cfg, "filename": h.usecase.CurrentFileName()})
}

// UploadFile отправляет файл на разбор сервису
func (h *Handler) UploadFile(c *gin.Context) {
	filename, r, ok := h.formFile(c)
	if !ok {
		return
	}
	defer r.Close()

	cfg, err := h.usecase.UploadFile(c.Request.Context(), filename, r)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "config": cfg, "filename": h.usecase.CurrentFileName()})
}

func (h *Handler) ExportFile(c *gin.Context) {
	var req dto.FileRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BadRequest(c, err, "")
		return
	}
	path, err := h.usecase.ExportFile(req.Filename)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FileResponse{Status: "ok", Path: path, Filename: filepath.Base(path)})
}

func (h *Handler) DownloadFile(c *gin.Context) {
	var req dto.FileRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BadRequest(c, err, "")
		return
	}
	path, err := h.usecase.DownloadFile(c.Request.Context(), req.Filename)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FileResponse{Status: "ok", Path: path, Filename: filepath.Base(path)})
}

// formFile открывает файл из поля file формы
func (h *Handler) formFile(c *gin.Context) (string, io.ReadCloser, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, err, "Файл не передан")
		return "", nil, false
	}
	f, err := header.Open()
	if err != nil {
		h.BadRequest(c, err, "Не удалось прочитать файл")
		return "", nil, false
	}
	return header.Filename, f, true
}
