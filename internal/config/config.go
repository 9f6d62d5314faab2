package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig содержит конфигурацию приложения
type AppConfig struct {
	ServerPort string
	GinMode    string
	Service    ServiceConfig
	Database   DatabaseConfig
	Kafka      KafkaConfig
	Files      FilesConfig
	Logging    LoggerConfig
}

// ServiceConfig содержит адрес сервиса расчета и хранения конфигураций
type ServiceConfig struct {
	URL     string
	Timeout time.Duration
}

// LoggerConfig содержит настройки логгера
type LoggerConfig struct {
	Enable     bool
	LogsDir    string
	Level      string
	SavingDays int
}

// DatabaseConfig содержит настройки хранилища сохраненной сессии
type DatabaseConfig struct {
	Driver   string // sqlite или postgres
	Path     string // файл базы для sqlite
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// KafkaConfig содержит настройки публикации результатов расчета.
// Пустой Broker отключает публикацию.
type KafkaConfig struct {
	Broker string
	Topic  string
}

// FilesConfig содержит настройки файлового обмена
type FilesConfig struct {
	ExportDir string
}

// LoadConfiguration загружает конфигурацию из .env файла или переменных окружения
func LoadConfiguration() (*AppConfig, error) {
	_ = godotenv.Load()

	config := &AppConfig{
		ServerPort: getEnv("APP_PORT", "8082"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		Service: ServiceConfig{
			URL:     strings.TrimRight(getEnv("SERVICE_URL", "http://localhost:8000"), "/"),
			Timeout: time.Duration(getEnvAsInt("SERVICE_TIMEOUT_MS", 30000)) * time.Millisecond,
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "./robot_configurator.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Username: getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "root"),
			DBName:   getEnv("DB_NAME", "robot_configurator"),
		},
		Kafka: KafkaConfig{
			Broker: getEnv("KAFKA_BROKER", ""),
			Topic:  getEnv("KAFKA_TOPIC", "robot_calculations"),
		},
		Files: FilesConfig{
			ExportDir: getEnv("EXPORT_DIR", "./exports"),
		},
		Logging: LoggerConfig{
			Enable:     getEnvAsBool("LOGGER_ENABLE", true),
			LogsDir:    getEnv("LOGGER_LOGS_DIR", "./logs"),
			Level:      getEnv("LOGGER_LOG_LEVEL", "DEBUG"),
			SavingDays: getEnvAsInt("LOGGER_SAVING_DAYS", 7),
		},
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	val, _ := strconv.ParseBool(value)
	return val
}
