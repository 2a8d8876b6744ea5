package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "clicksnitch.log")

	log, closer := New(Config{Level: "debug", File: path})
	log.WithField("url", "https://example.com").Debug("scan started")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "scan started") || !strings.Contains(out, "url=") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log, closer := New(Config{Level: "chatty"})
	defer closer.Close()

	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", log.GetLevel())
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	log, closer := New(Config{Level: "warn", File: path})
	log.Info("hidden")
	log.Warn("shown")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info line should have been filtered")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn line missing")
	}
}
