package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("QUICKREVIEW_OUTPUT_DIR sets poster output", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("QUICKREVIEW_OUTPUT_DIR", "/srv/posters")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/srv/posters", cfg.Poster.OutputDir)
	})

	t.Run("QUICKREVIEW_THEME is normalized", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("QUICKREVIEW_THEME", " Cyber ")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "cyber", cfg.UI.Theme)
	})

	t.Run("QUICKREVIEW_CHROME sets browser binary", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("QUICKREVIEW_CHROME", "/usr/bin/chromium")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/usr/bin/chromium", cfg.Browser.Bin)
	})

	t.Run("QUICKREVIEW_AUDIO_TRACK sets track", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("QUICKREVIEW_AUDIO_TRACK", "/music/loop.mp3")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/music/loop.mp3", cfg.Audio.Track)
	})

	t.Run("empty values leave config alone", func(t *testing.T) {
		clearEnv(t)

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("overrides apply on top of the file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("QUICKREVIEW_THEME", "ocean")

		path := t.TempDir() + "/" + FileName
		file := DefaultConfig()
		file.UI.Theme = "coffee"
		if err := file.Save(path); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		assert.Equal(t, "ocean", cfg.UI.Theme)
	})
}
