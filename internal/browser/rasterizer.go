// Package browser drives a headless Chrome instance to turn poster HTML
// into PNG bytes.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"quickreview/internal/logging"
	"quickreview/internal/poster"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
)

// Config holds browser configuration.
type Config struct {
	DebuggerURL     string   `yaml:"debugger_url"`
	Bin             string   `yaml:"bin"`
	Launch          []string `yaml:"launch"`
	Headless        bool     `yaml:"headless"`
	RenderTimeoutMs int      `yaml:"render_timeout_ms"`
	ScaleFactor     float64  `yaml:"scale_factor"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Headless:        true,
		RenderTimeoutMs: 30000,
		ScaleFactor:     2,
	}
}

// RenderTimeout returns the per-render timeout.
func (c Config) RenderTimeout() time.Duration {
	if c.RenderTimeoutMs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.RenderTimeoutMs) * time.Millisecond
}

// Scale returns the device scale factor used for captures.
func (c Config) Scale() float64 {
	if c.ScaleFactor <= 0 {
		return 2
	}
	return c.ScaleFactor
}

// Rasterizer owns the Chrome instance. It is safe for concurrent use;
// renders are serialized.
type Rasterizer struct {
	cfg        Config
	mu         sync.Mutex
	browser    *rod.Browser
	controlURL string
}

// NewRasterizer creates an unstarted rasterizer.
func NewRasterizer(cfg Config) *Rasterizer {
	return &Rasterizer{cfg: cfg}
}

// Start connects to an existing Chrome or launches a new one.
func (r *Rasterizer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.startLocked(ctx)
}

func (r *Rasterizer) startLocked(ctx context.Context) error {
	log := logging.Get(logging.CategoryBrowser)

	if r.browser != nil {
		if _, err := r.browser.Version(); err == nil {
			return nil
		}
		log.Warn("stale browser connection detected, reconnecting")
		_ = r.browser.Close()
		r.browser = nil
		r.controlURL = ""
	}

	controlURL := r.cfg.DebuggerURL
	if controlURL == "" {
		l := launcher.New().Headless(r.cfg.Headless)
		if r.cfg.Bin != "" {
			l = l.Bin(r.cfg.Bin)
		}
		for _, raw := range r.cfg.Launch {
			name, val, hasVal := parseFlag(raw)
			if name == "" {
				continue
			}
			if hasVal {
				l = l.Set(name, val)
			} else {
				l = l.Set(name)
			}
		}
		url, err := l.Launch()
		if err != nil {
			return fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = url
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		return fmt.Errorf("connect to chrome: %w", err)
	}

	r.browser = b
	r.controlURL = controlURL
	log.Info("chrome connected (headless=%v)", r.cfg.Headless)
	return nil
}

// parseFlag splits "--name=value" into a launcher flag.
func parseFlag(raw string) (flags.Flag, string, bool) {
	name, val, hasVal := strings.Cut(strings.TrimLeft(strings.TrimSpace(raw), "-"), "=")
	return flags.Flag(name), val, hasVal
}

// ControlURL returns the WebSocket debugger URL.
func (r *Rasterizer) ControlURL() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.controlURL
}

// IsConnected reports whether a browser is attached.
func (r *Rasterizer) IsConnected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.browser != nil
}

// Render loads html into a fresh page sized to size and captures the
// poster element. The browser is started on first use.
func (r *Rasterizer) Render(ctx context.Context, html string, size poster.Size) ([]byte, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid poster size %dx%d", size.Width, size.Height)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.startLocked(ctx); err != nil {
		return nil, err
	}
	if r.browser == nil {
		return nil, errors.New("browser not connected")
	}

	log := logging.Get(logging.CategoryBrowser)
	start := time.Now()

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer func() { _ = page.Close() }()

	p := page.Context(ctx).Timeout(r.cfg.RenderTimeout())

	if err := p.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             size.Width,
		Height:            size.Height,
		DeviceScaleFactor: r.cfg.Scale(),
		Mobile:            false,
	}); err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}
	if err := p.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if err := p.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	el, err := p.Element("#" + poster.ElementID)
	if err != nil {
		return nil, fmt.Errorf("find poster element: %w", err)
	}
	png, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return nil, fmt.Errorf("capture poster: %w", err)
	}

	log.Debug("rendered %dx%d poster in %s (%d bytes)", size.Width, size.Height, time.Since(start), len(png))
	return png, nil
}

// Shutdown closes the browser.
func (r *Rasterizer) Shutdown() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.controlURL = ""
	return err
}
