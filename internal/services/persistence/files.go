package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename - имя файла, если пользователь его не задал
	DefaultFilename = "robot_config.txt"
	fileExt         = ".txt"
	maxFileSize     = 1 << 20
)

var errEmptyFile = errors.New("файл не содержит конфигурации")

// NormalizeFilename приводит имя файла к виду <имя>.txt.
func NormalizeFilename(name string) string {
	name = strings.TrimSpace(filepath.Base(strings.TrimSpace(name)))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return DefaultFilename
	}
	if !strings.HasSuffix(name, fileExt) {
		name += fileExt
	}
	return name
}

// Files читает и пишет конфигурацию в текстовом формате (YAML).
type Files struct {
	exportDir string
	logger    *logging.Logger
}

func NewFiles(cfg *config.AppConfig, logger *logging.Logger) *Files {
	return &Files{exportDir: cfg.Files.ExportDir, logger: logger.WithPrefix("FILES")}
}

func (f *Files) ExportDir() string {
	return f.exportDir
}

// Encode возвращает текстовое представление конфигурации.
func (f *Files) Encode(cfg models.RobotConfiguration) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("ошибка формирования файла конфигурации: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("ошибка формирования файла конфигурации: %w", err)
	}
	return buf.Bytes(), nil
}

// Export записывает конфигурацию в каталог экспорта и возвращает путь к файлу.
func (f *Files) Export(cfg models.RobotConfiguration, filename string) (string, error) {
	data, err := f.Encode(cfg)
	if err != nil {
		return "", err
	}
	return f.write(NormalizeFilename(filename), data)
}

// Import разбирает файл поверх base. Хранилище конфигурации не изменяется.
func (f *Files) Import(r io.Reader, base models.RobotConfiguration) (models.RobotConfiguration, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFileSize+1))
	if err != nil {
		return base, fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if len(data) > maxFileSize {
		return base, apperrors.NewValidationError("file", "", errors.New("файл слишком большой"))
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return base, apperrors.NewValidationError("file", "", err)
	}
	if doc == nil {
		return base, apperrors.NewValidationError("file", "", errEmptyFile)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return base, apperrors.NewValidationError("file", "", err)
	}
	cfg, err := models.Overlay(base, raw)
	if err != nil {
		return base, apperrors.NewValidationError("file", "", err)
	}
	return cfg, nil
}

// ImportFile открывает файл по пути и разбирает его поверх base.
func (f *Files) ImportFile(path string, base models.RobotConfiguration) (models.RobotConfiguration, error) {
	file, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("не удалось открыть файл %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := f.Import(file, base)
	if err != nil {
		f.logger.Warn("File import failed", "path", path, "error", err)
		return base, err
	}
	f.logger.Info("File imported", "path", path)
	return cfg, nil
}

func (f *Files) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(f.exportDir, 0755); err != nil {
		return "", fmt.Errorf("не удалось создать каталог %s: %w", f.exportDir, err)
	}
	path := filepath.Join(f.exportDir, name)
	tmp, err := os.CreateTemp(f.exportDir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("не удалось создать файл %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}
	f.logger.Info("File exported", "path", path, "bytes", len(data))
	return path, nil
}
