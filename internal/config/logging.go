package config

import (
	"sort"

	"quickreview/internal/logging"
)

// LoggingConfig is the logging section of config.yaml.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	Format     string          `yaml:"format"`     // json, text
	DebugMode  bool            `yaml:"debug_mode"` // off = no log files at all
	Categories map[string]bool `yaml:"categories"` // per-category switches, unlisted = on
}

// IsCategoryEnabled mirrors logging.Config.Enabled for a category name.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	return c.ForLogger().Enabled(logging.Category(category))
}

// unknownCategories returns configured category names the logger does not
// know about.
func (c *LoggingConfig) unknownCategories() []string {
	known := make(map[string]bool)
	for _, cat := range logging.Categories() {
		known[string(cat)] = true
	}
	var unknown []string
	for name := range c.Categories {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// ForLogger converts the section into the logging package config.
func (c LoggingConfig) ForLogger() logging.Config {
	return logging.Config{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		JSONFormat: c.Format == "json",
		Categories: c.Categories,
	}
}
