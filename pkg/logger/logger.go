package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/clog"
)

// Logger printf-логгер поверх slog
// Пишет в консоль (clog) или в JSON файл, если указан путь
type Logger struct {
	log  *slog.Logger
	file *os.File
}

// New создает логгер с заданным уровнем
// Если file пустой, логи пишутся в stdout
func New(file string, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if file == "" {
		handler := clog.New(
			clog.WithWriter(os.Stdout),
			clog.WithLevel(lvl),
			clog.WithColor(true),
		)
		return &Logger{log: slog.New(handler)}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", file, err)
	}

	return &Logger{
		log:  slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl})),
		file: f,
	}, nil
}

// NewWithWriter создает логгер, пишущий JSON в w
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		log: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// Discard логгер, который ничего не пишет (для тестов)
func Discard() *Logger {
	return NewWithWriter(io.Discard, slog.LevelError+1)
}

// ParseLevel разбирает уровень логирования (debug, info, warn, error)
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", level)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
