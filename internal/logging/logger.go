package logging

import (
	"fmt"
	"io"

	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006-01-02 15:04:05"

// New builds the console logger shared by every account. Per-account
// handles are derived from it with ForSession.
func New(level string) (*zap.Logger, error) {
	return NewWithWriter(level, colorable.NewColorableStdout(), true)
}

func NewWithWriter(level string, out io.Writer, color bool) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", level, err)
		}
		lvl = parsed
	}

	config := zap.NewDevelopmentEncoderConfig()
	config.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	config.EncodeCaller = nil
	if color {
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.AddSync(out),
		lvl,
	)), nil
}

// ForSession scopes a logger to one messenger session.
func ForSession(base *zap.Logger, sessionName string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}

	return base.With(zap.String("session", sessionName))
}
