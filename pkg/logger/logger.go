// Package logger provides the process-wide structured logger. It is a thin
// wrapper around zerolog writing to stderr and, when a filename is configured,
// to a size-rotated log file as well.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Environment string `yaml:"environment"`
	Filename    string `yaml:"filename"`
	Level       string `yaml:"level"`
	MaxSize     int    `yaml:"max_backup_size_in_mb"`
	MaxBackups  int    `yaml:"max_backups"`
	Compress    bool   `yaml:"compress_backups"`
}

var log zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitGlobalLogger configures the global logger. Safe to call once at startup
// before any other package logs.
func InitGlobalLogger(cfg *Config) {
	writers := make([]io.Writer, 0, 2)

	if cfg.Environment == "prod" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if cfg.Filename != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			Compress:   cfg.Compress,
		})
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	log = zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
}

func Debug(msg string, keyValues ...any) {
	write(log.Debug(), msg, keyValues)
}

func Info(msg string, keyValues ...any) {
	write(log.Info(), msg, keyValues)
}

func Warn(msg string, keyValues ...any) {
	write(log.Warn(), msg, keyValues)
}

func Error(msg string, keyValues ...any) {
	write(log.Error(), msg, keyValues)
}

// Fatal logs the message and exits with a non-zero status.
func Fatal(msg string, keyValues ...any) {
	write(log.Fatal(), msg, keyValues)
}

func write(event *zerolog.Event, msg string, keyValues []any) {
	// Key-value pairs; a trailing key without a value is logged as-is.
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, keyValues[i+1])
	}
	if len(keyValues)%2 != 0 {
		event = event.Interface("arg", keyValues[len(keyValues)-1])
	}

	event.Msg(msg)
}
