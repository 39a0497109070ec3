package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldOperation = "operation"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Logger wraps zerolog.Logger with a service name. A nil *Logger is valid
// and discards all output.
type Logger struct {
	logger  zerolog.Logger
	service string
}

// New creates a logger from config.
func New(cfg Config, serviceName string) *Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	output := outputWriter(cfg.Output)
	var zl zerolog.Logger
	if strings.EqualFold(cfg.Format, "console") {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: output, NoColor: cfg.NoColor})
	} else {
		zl = zerolog.New(output)
	}
	zl = zl.Level(level).With().Str("service", serviceName).Logger()
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}

	return &Logger{logger: zl, service: serviceName}
}

// NewDefault creates a console logger at info level.
func NewDefault(serviceName string) *Logger {
	return New(Config{Level: "info", Format: "console", Timestamp: true}, serviceName)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{logger: l.logger.With().Str(FieldComponent, name).Logger(), service: l.service}
}

// WithField returns a logger with an additional field attached.
func (l *Logger) WithField(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{logger: l.logger.With().Interface(key, value).Logger(), service: l.service}
}

// Trace logs at trace level.
func (l *Logger) Trace(msg string) {
	if l == nil {
		return
	}
	l.logger.Trace().Msg(msg)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.logger.Debug().Msg(msg)
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Debug().Msgf(format, args...)
}

// Info logs at info level.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.logger.Info().Msg(msg)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.logger.Warn().Msg(msg)
}

// Error logs at error level with the given error attached.
func (l *Logger) Error(msg string, err error) {
	if l == nil {
		return
	}
	l.logger.Error().Err(err).Msg(msg)
}

// Zerolog returns the underlying zerolog.Logger for advanced use cases.
func (l *Logger) Zerolog() zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return l.logger
}

func outputWriter(output string) io.Writer {
	if output == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}
