// Package logger configures the process-wide zap logger.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the global sugared logger. It stays a no-op until Init runs.
var L = zap.NewNop().Sugar()

// Init builds a console logger on stderr with the given level (debug, info,
// warn, error). The default is warn so digests on stdout stay clean. Unknown
// levels fall back to the default.
func Init(level string) {
	zapLevel := zapcore.WarnLevel
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zapLevel,
	)
	L = zap.New(core).Sugar()
}

// Sync flushes buffered log entries. Safe to call on the no-op logger.
func Sync() {
	_ = L.Sync()
}
