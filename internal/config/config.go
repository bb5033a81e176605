package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quickreview/internal/audio"
	"quickreview/internal/browser"
	"quickreview/internal/poster"
	"quickreview/internal/theme"
	"quickreview/internal/toast"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside the workspace state dir.
const FileName = "config.yaml"

// Config holds all Quick Review configuration.
type Config struct {
	UI      UIConfig       `yaml:"ui"`
	Poster  PosterConfig   `yaml:"poster"`
	Browser browser.Config `yaml:"browser"`
	Audio   AudioConfig    `yaml:"audio"`
	Logging LoggingConfig  `yaml:"logging"`
}

// UIConfig configures the interactive wizard.
type UIConfig struct {
	Theme           string `yaml:"theme"`             // cosmic, coffee, ocean, cyber
	ToastDurationMs int    `yaml:"toast_duration_ms"` // auto-dismiss delay
}

// PosterConfig configures poster export.
type PosterConfig struct {
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"` // 9:16 or A4
}

// AudioConfig configures the ambient track.
type AudioConfig struct {
	Track   string   `yaml:"track"`
	Command []string `yaml:"command"` // player argv; the track is appended
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:           string(theme.Default),
			ToastDurationMs: int(toast.DefaultDuration / time.Millisecond),
		},
		Poster: PosterConfig{
			OutputDir: ".",
			Format:    string(poster.DefaultFormat),
		},
		Browser: browser.DefaultConfig(),
		Audio: AudioConfig{
			Track:   audio.DefaultTrack,
			Command: append([]string(nil), audio.DefaultCommand...),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns the config path for a workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, ".quickreview", FileName)
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("QUICKREVIEW_OUTPUT_DIR"); dir != "" {
		c.Poster.OutputDir = dir
	}
	if id := os.Getenv("QUICKREVIEW_THEME"); id != "" {
		c.UI.Theme = strings.ToLower(strings.TrimSpace(id))
	}
	if bin := os.Getenv("QUICKREVIEW_CHROME"); bin != "" {
		c.Browser.Bin = bin
	}
	if track := os.Getenv("QUICKREVIEW_AUDIO_TRACK"); track != "" {
		c.Audio.Track = track
	}
}

// ToastDuration returns the toast auto-dismiss delay.
func (c *Config) ToastDuration() time.Duration {
	if c.UI.ToastDurationMs <= 0 {
		return toast.DefaultDuration
	}
	return time.Duration(c.UI.ToastDurationMs) * time.Millisecond
}

// ThemeID returns the configured theme, falling back to the default.
func (c *Config) ThemeID() theme.ID {
	id := theme.ID(c.UI.Theme)
	if !theme.Valid(id) {
		return theme.Default
	}
	return id
}

// PosterFormat returns the configured poster format, falling back to the
// default.
func (c *Config) PosterFormat() poster.Format {
	if f, ok := poster.ParseFormat(c.Poster.Format); ok {
		return f
	}
	return poster.DefaultFormat
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !theme.Valid(theme.ID(c.UI.Theme)) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.UI.Theme, theme.IDs())
	}
	if _, ok := poster.ParseFormat(c.Poster.Format); !ok {
		return fmt.Errorf("invalid poster format: %s (valid: %s, %s)", c.Poster.Format, poster.FormatStory, poster.FormatPost)
	}
	if c.Poster.OutputDir == "" {
		return fmt.Errorf("poster output_dir must not be empty")
	}
	if c.UI.ToastDurationMs < 0 {
		return fmt.Errorf("toast_duration_ms must not be negative")
	}
	if c.Browser.RenderTimeoutMs < 0 {
		return fmt.Errorf("browser render_timeout_ms must not be negative")
	}
	if unknown := c.Logging.unknownCategories(); len(unknown) > 0 {
		return fmt.Errorf("unknown logging categories: %v", unknown)
	}
	return nil
}
