package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kingrea/winchester/internal/config"
)

// FileName is the process log inside .winchester/logs.
const FileName = "winchester.log"

// New builds the process logger. It writes JSON lines to
// .winchester/logs/winchester.log so the terminal stays clean while the TUI
// owns the screen.
func New(projectDir string, verbose bool) (*zap.Logger, error) {
	logDir := filepath.Join(projectDir, config.ProjectDirName, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(logDir, FileName)}
	cfg.ErrorOutputPaths = []string{filepath.Join(logDir, FileName)}
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
