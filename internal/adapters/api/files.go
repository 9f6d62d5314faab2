package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

// UploadFile отправляет файл конфигурации на разбор сервису.
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("не удалось подготовить файл %s: %w", filename, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("не удалось подготовить файл %s: %w", filename, err)
	}

	var out dto.UploadResponse
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/data/upload",
		raw:         &buf,
		contentType: mw.FormDataContentType(),
		fallback:    "Ошибка загрузки файла",
	}, classifyDefault, &out)
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, apperrors.NewAppError(http.StatusOK, "Не удалось загрузить файл", apperrors.ErrTransport)
	}
	return &out, nil
}

// DownloadFile получает от сервиса текстовое представление конфигурации.
func (c *Client) DownloadFile(ctx context.Context, cfg models.RobotConfiguration) ([]byte, error) {
	resp, err := c.send(ctx, request{
		method:   http.MethodPost,
		path:     "/api/data/download",
		body:     cfg,
		fallback: "Ошибка скачивания файла",
	}, classifyDefault)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewAppError(resp.StatusCode, "Ошибка скачивания файла", fmt.Errorf("%w: %v", apperrors.ErrTransport, err))
	}
	return data, nil
}
