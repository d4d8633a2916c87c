package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	closer, err := Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { Log = newDiscard() })

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
	For("world").Debug("dungeon generated")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, `"component":"world"`) || !strings.Contains(line, `"msg":"dungeon generated"`) {
		t.Errorf("unexpected log line %q", line)
	}
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_FILE", "-")
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { Log = newDiscard() })

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
}

func TestInitUnwritableFile(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	if _, err := Init(); err == nil {
		t.Error("expected an error for an unwritable log path")
	}
}
