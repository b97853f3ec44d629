package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/winchester/internal/config"
)

func TestNewWritesToProjectLog(t *testing.T) {
	projectDir := t.TempDir()
	logger, err := New(projectDir, true)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("carousel bound")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(projectDir, config.ProjectDirName, "logs", FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "carousel bound") {
		t.Fatalf("debug entry missing from log: %s", data)
	}
}
