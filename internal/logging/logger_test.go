package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func reset(t *testing.T) {
	t.Helper()
	CloseAll()
	configMu.Lock()
	config = Config{}
	configMu.Unlock()
	t.Cleanup(CloseAll)
}

// TestDisabledModeWritesNothing checks production mode stays silent.
func TestDisabledModeWritesNothing(t *testing.T) {
	reset(t)
	ws := t.TempDir()

	if err := Initialize(ws, Config{DebugMode: false}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Get(CategoryWizard).Info("should not appear")

	if _, err := os.Stat(filepath.Join(ws, ".quickreview", "logs")); !os.IsNotExist(err) {
		t.Errorf("expected no logs directory in production mode, got err=%v", err)
	}
	if IsDebugMode() {
		t.Error("expected debug mode off")
	}
}

// TestCategoryFilesAreCreated checks per-category files in debug mode.
func TestCategoryFilesAreCreated(t *testing.T) {
	reset(t)
	ws := t.TempDir()

	cfg := Config{
		DebugMode:  true,
		Level:      "debug",
		Categories: map[string]bool{"audio": false},
	}
	if err := Initialize(ws, cfg); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Get(CategoryWizard).Info("step %d -> %d", 1, 2)
	Get(CategoryAudio).Info("muted category")
	CloseAll()

	date := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(ws, ".quickreview", "logs", date+"_wizard.log"))
	if err != nil {
		t.Fatalf("expected wizard log file: %v", err)
	}
	if !strings.Contains(string(data), "step 1 -> 2") {
		t.Errorf("wizard log missing message, got %q", data)
	}

	if _, err := os.Stat(filepath.Join(ws, ".quickreview", "logs", date+"_audio.log")); !os.IsNotExist(err) {
		t.Error("disabled category should not create a file")
	}
}

func TestInitializeRequiresWorkspace(t *testing.T) {
	reset(t)
	if err := Initialize("", Config{}); err == nil {
		t.Error("expected error for empty workspace")
	}
}

func TestWithAttachesFields(t *testing.T) {
	reset(t)
	ws := t.TempDir()
	if err := Initialize(ws, Config{DebugMode: true, JSONFormat: true}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Get(CategoryPoster).With(map[string]interface{}{"session": "abc"}).Info("exported")
	CloseAll()

	date := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(ws, ".quickreview", "logs", date+"_poster.log"))
	if err != nil {
		t.Fatalf("expected poster log: %v", err)
	}
	if !strings.Contains(string(data), `"session":"abc"`) {
		t.Errorf("expected session field in %q", data)
	}
}

func TestConfigEnabled(t *testing.T) {
	cfg := Config{}
	if cfg.Enabled(CategoryPoster) {
		t.Error("debug mode off must disable every category")
	}

	cfg = Config{DebugMode: true, Categories: map[string]bool{"audio": false, "poster": true}}
	for _, cat := range Categories() {
		want := cat != CategoryAudio
		if got := cfg.Enabled(cat); got != want {
			t.Errorf("Enabled(%s) = %v, want %v", cat, got, want)
		}
	}
}
