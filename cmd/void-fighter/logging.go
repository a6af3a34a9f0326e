package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir      = "logs"
	logFileName = "void-fighter.log"
	maxLogSize  = 10 * 1024 * 1024
)

// newLogger builds the run logger. Without the debug flag it is a nop:
// the terminal belongs to the game, so everything not written to the
// log file is written nowhere.
func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", logDir, err)
	}
	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.EncoderConfig.ConsoleSeparator = "  "
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// rotateLog moves an oversized previous log aside so every run
// appends to a bounded file. Rotation failures are ignored; logging
// then appends to the big file, which beats not logging.
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	rotated := fmt.Sprintf("%s.%s.log", path[:len(path)-len(".log")], time.Now().Format("20060102-150405"))
	_ = os.Rename(path, rotated)
}
