package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Enabled    bool      // Включено ли логирование
	Level      string    // DEBUG, INFO, WARN, ERROR
	LogsDir    string    // Директория для логов
	SavingDays uint      // Сколько дней хранить логи
	Output     io.Writer // По умолчанию os.Stdout
}

type Logger struct {
	config *Config
	base   *logrus.Logger
	file   *os.File
	prefix string
}

// NewLogger создает логгер с выводом в консоль и в дневной файл.
func NewLogger(cfg *Config, prefix string) *Logger {
	l := &Logger{
		config: cfg,
		prefix: formatPrefix("", prefix),
	}

	var output io.Writer = os.Stdout
	if cfg.Output != nil {
		output = cfg.Output
	}
	if cfg.Enabled && cfg.LogsDir != "" {
		if err := os.MkdirAll(cfg.LogsDir, 0755); err == nil {
			logFile := filepath.Join(cfg.LogsDir, time.Now().Format("2006-01-02")+".log")
			if file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
				l.file = file
				output = io.MultiWriter(output, file)
			}
		}
	}

	base := logrus.New()
	base.SetOutput(output)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)
	if !cfg.Enabled {
		base.SetOutput(io.Discard)
	}
	l.base = base

	if cfg.Enabled && cfg.LogsDir != "" && cfg.SavingDays > 0 {
		go l.cleanOldLogs()
	}

	return l
}

// Wrap использует готовый logrus-логгер, например логгер клиента библиотеки.
func Wrap(base *logrus.Logger, prefix string) *Logger {
	return &Logger{
		config: &Config{Enabled: true, Level: base.GetLevel().String()},
		base:   base,
		prefix: formatPrefix("", prefix),
	}
}

func formatPrefix(parent, prefix string) string {
	if prefix == "" {
		return parent
	}
	if parent != "" {
		parent += " "
	}
	return parent + "[" + prefix + "]"
}

func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{
		config: l.config,
		base:   l.base,
		file:   l.file,
		prefix: formatPrefix(l.prefix, prefix),
	}
}

// Logrus возвращает нижележащий логгер.
func (l *Logger) Logrus() *logrus.Logger {
	return l.base
}

func (l *Logger) cleanOldLogs() {
	for range time.Tick(24 * time.Hour) {
		files, err := os.ReadDir(l.config.LogsDir)
		if err != nil {
			l.Error("Failed to read logs directory", "error", err)
			continue
		}

		cutoff := time.Now().AddDate(0, 0, int(-l.config.SavingDays))
		for _, file := range files {
			if info, err := file.Info(); err == nil && !file.IsDir() && info.ModTime().Before(cutoff) {
				if err := os.Remove(filepath.Join(l.config.LogsDir, file.Name())); err != nil {
					l.Error("Failed to delete old log file", "file", file.Name(), "error", err)
				}
			}
		}
	}
}

func (l *Logger) log(level logrus.Level, msg string, fields ...interface{}) {
	if !l.config.Enabled || !l.base.IsLevelEnabled(level) {
		return
	}

	entryFields := make(logrus.Fields, len(fields)/2+1)
	for i := 0; i < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		var val interface{} = "?"
		if i+1 < len(fields) {
			val = fields[i+1]
		}
		entryFields[key] = val
	}

	if l.prefix != "" {
		msg = l.prefix + " " + msg
	}
	l.base.WithFields(entryFields).Log(level, msg)
}

func (l *Logger) ShouldLog(level string) bool {
	if !l.config.Enabled {
		return false
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return false
	}
	return l.base.IsLevelEnabled(lvl)
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.log(logrus.DebugLevel, msg, fields...) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.log(logrus.InfoLevel, msg, fields...) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.log(logrus.WarnLevel, msg, fields...) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.log(logrus.ErrorLevel, msg, fields...) }

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Nop возвращает выключенный логгер для тестов.
func Nop() *Logger {
	return NewLogger(&Config{Enabled: false}, "")
}
