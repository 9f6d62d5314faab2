package persistence

import (
	"context"
	"io"

	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

// RemoteFiles разбирает и формирует файлы конфигурации на стороне сервиса.
// Результат скачивания сохраняется в каталог экспорта.
type RemoteFiles struct {
	api    interfaces.FilesAPI
	files  *Files
	logger *logging.Logger
}

func NewRemoteFiles(api interfaces.FilesAPI, files *Files, logger *logging.Logger) *RemoteFiles {
	return &RemoteFiles{api: api, files: files, logger: logger.WithPrefix("FILES")}
}

// Import отправляет файл сервису и накладывает полученные группы на base.
// Возвращает имя файла, под которым сервис его принял.
func (rf *RemoteFiles) Import(ctx context.Context, filename string, r io.Reader, base models.RobotConfiguration) (models.RobotConfiguration, string, error) {
	resp, err := rf.api.UploadFile(ctx, filename, r)
	if err != nil {
		return base, "", err
	}
	if len(resp.State) == 0 {
		return base, "", apperrors.NewAppError(200, "Не удалось загрузить файл", apperrors.ErrTransport)
	}
	cfg, err := models.Overlay(base, resp.State)
	if err != nil {
		return base, "", apperrors.NewValidationError("state", "", err)
	}
	name := resp.Filename
	if name == "" {
		name = filename
	}
	rf.logger.Info("File parsed by service", "filename", name)
	return cfg, name, nil
}

// Export получает текст файла от сервиса и сохраняет его под нормализованным именем.
func (rf *RemoteFiles) Export(ctx context.Context, cfg models.RobotConfiguration, filename string) (string, error) {
	data, err := rf.api.DownloadFile(ctx, cfg)
	if err != nil {
		return "", err
	}
	return rf.files.write(NormalizeFilename(filename), data)
}
