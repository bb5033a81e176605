// Package logging provides config-driven categorized file logging for the
// interactive wizard. Logs are written to .quickreview/logs/ with one file
// per category. When debug mode is off every logger is a no-op, so the
// terminal UI is never disturbed by log output.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup and configuration
	CategoryWizard    Category = "wizard"    // Step transitions and field edits
	CategoryPoster    Category = "poster"    // Poster composition and export
	CategoryBrowser   Category = "browser"   // Headless Chrome rasterizer
	CategoryLoader    Category = "loader"    // Capability loading
	CategoryAudio     Category = "audio"     // Ambient track playback
	CategoryClipboard Category = "clipboard" // Copy actions
	CategoryImages    Category = "images"    // Background image references
)

// Config mirrors config.LoggingConfig to avoid an import cycle.
type Config struct {
	DebugMode  bool
	Level      string
	JSONFormat bool
	Categories map[string]bool
}

// Logger is a category-scoped logger. The zero value is unusable; obtain
// one through Get.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	config    Config
	configMu  sync.RWMutex
)

// Initialize sets up the logging directory under workspace. With debug
// mode off it only records the config and returns.
func Initialize(workspace string, cfg Config) error {
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	configMu.Lock()
	config = cfg
	configMu.Unlock()

	if !cfg.DebugMode {
		return nil
	}

	dir := filepath.Join(workspace, ".quickreview", "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	loggersMu.Lock()
	logsDir = dir
	loggersMu.Unlock()

	boot := Get(CategoryBoot)
	boot.Info("=== Quick Review logging initialized ===")
	boot.Info("Logs directory: %s", dir)
	boot.Info("Log level: %s", levelOf(cfg.Level))
	return nil
}

// IsDebugMode returns whether debug logging is enabled.
func IsDebugMode() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return config.DebugMode
}

// IsCategoryEnabled returns whether a specific category writes anything.
func IsCategoryEnabled(category Category) bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return config.Enabled(category)
}

// Enabled reports whether cfg lets category write. Debug mode gates
// everything; unlisted categories are on.
func (c Config) Enabled(category Category) bool {
	if !c.DebugMode {
		return false
	}
	on, listed := c.Categories[string(category)]
	return !listed || on
}

// Categories lists every known category.
func Categories() []Category {
	return []Category{
		CategoryBoot, CategoryWizard, CategoryPoster, CategoryBrowser,
		CategoryLoader, CategoryAudio, CategoryClipboard, CategoryImages,
	}
}

func levelOf(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func nop(category Category) *Logger {
	return &Logger{category: category, sugar: zap.NewNop().Sugar()}
}

// Get returns (or creates) the logger for category. A no-op logger is
// returned when debug mode or the category is disabled, or when the log
// file cannot be opened.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return nop(category)
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	dir := logsDir
	loggersMu.RUnlock()

	if dir == "" {
		return nop(category)
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}

	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(dir, fmt.Sprintf("%s_%s.log", date, category))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return nop(category)
	}

	configMu.RLock()
	cfg := config
	configMu.RUnlock()

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.JSONFormat {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(file), zap.NewAtomicLevelAt(levelOf(cfg.Level)))

	l := &Logger{
		category: category,
		file:     file,
		sugar:    zap.New(core).Named(string(category)).Sugar(),
	}
	loggers[category] = l
	return l
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs an error.
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// With returns a logger that attaches fields to every entry.
func (l *Logger) With(fields map[string]interface{}) *Logger {
	kv := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return &Logger{category: l.category, sugar: l.sugar.With(kv...)}
}

// CloseAll flushes and closes every open log file and forgets the loggers.
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for cat, l := range loggers {
		_ = l.sugar.Sync()
		if l.file != nil {
			_ = l.file.Close()
		}
		delete(loggers, cat)
	}
	logsDir = ""
}
