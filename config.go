package configurator

import (
	"os"
	"strconv"
	"strings"
)

// Config хранит настройки встраиваемого клиента
type Config struct {
	ServiceURL  string
	TimeoutMs   int
	ExportDir   string
	SessionPath string // файл sqlite для сохраненной сессии; пустой - хранить в памяти
	LogLevel    string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	serviceURL := os.Getenv("SERVICE_URL")
	if serviceURL == "" {
		serviceURL = "http://localhost:8000"
	}

	timeout, err := strconv.Atoi(os.Getenv("SERVICE_TIMEOUT_MS"))
	if err != nil || timeout <= 0 {
		timeout = 30000
	}

	exportDir := os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "./exports"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		ServiceURL:  strings.TrimRight(serviceURL, "/"),
		TimeoutMs:   timeout,
		ExportDir:   exportDir,
		SessionPath: os.Getenv("SESSION_DB_PATH"),
		LogLevel:    logLevel,
	}
}
