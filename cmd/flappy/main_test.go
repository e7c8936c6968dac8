package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestRecordPath(t *testing.T) {
	tests := []struct {
		backend, path, expected string
	}{
		{storage.BackendJSON, "", filepath.Join("~", ".flappy", "high_score.json")},
		{storage.BackendSQLite, "", filepath.Join("~", ".flappy", "high_score.db")},
		{storage.BackendJSON, "/tmp/x.json", "/tmp/x.json"},
	}

	for _, tc := range tests {
		if got := recordPath(tc.backend, tc.path); got != tc.expected {
			t.Errorf("recordPath(%q, %q) = %q, expected %q", tc.backend, tc.path, got, tc.expected)
		}
	}
}

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	printRecord(&buf, storage.Record{HighScore: 12, Path: "/games"}, "/games")
	if buf.String() != "High score: 12\n" {
		t.Errorf("same context: %q", buf.String())
	}

	buf.Reset()
	printRecord(&buf, storage.Record{HighScore: 12, Path: "/games"}, "/elsewhere")
	if !strings.HasPrefix(buf.String(), "High score: 0\n") || !strings.Contains(buf.String(), "/games") {
		t.Errorf("other context: %q", buf.String())
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flappy.log")

	logger, closer, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("high score saved", "high_score", 3)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "flappy") || !strings.Contains(string(data), "high_score=3") {
		t.Errorf("log = %q", data)
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
}

func TestLoadSoundsLogsEffects(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	sounds := loadSounds(audio.NewBank(fstest.MapFS{}, 0.3), logger)
	for _, snd := range []game.Sound{sounds.Wing, sounds.Hit, sounds.Point} {
		if _, ok := snd.(*audio.Sound); !ok {
			t.Fatalf("effect %T should come from the bank", snd)
		}
	}

	out := buf.String()
	for _, name := range []string{"sfx_wing.wav", "sfx_hit.wav", "sfx_point.wav"} {
		if !strings.Contains(out, "name="+name) {
			t.Errorf("log should name %s, got %q", name, out)
		}
	}
	if !strings.Contains(out, "volume=0.3") {
		t.Errorf("log should carry the volume, got %q", out)
	}
	if strings.Contains(out, "sound unavailable") {
		t.Errorf("built-in effects should load, got %q", out)
	}
}
