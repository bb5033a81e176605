package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickreview/cmd/review/ui"
	"quickreview/internal/audio"
	"quickreview/internal/browser"
	"quickreview/internal/imageref"
	"quickreview/internal/loader"
	"quickreview/internal/logging"
	"quickreview/internal/poster"

	"github.com/spf13/cobra"
)

var errColorsDisabled = errors.New("colors disabled by NO_COLOR")

// confettiAvailable reports whether the terminal may draw colored
// particles.
func confettiAvailable(context.Context) error {
	if os.Getenv("NO_COLOR") != "" {
		return errColorsDisabled
	}
	return nil
}

// runInteractive wires the collaborators and starts the wizard.
func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	boot := logging.Get(logging.CategoryBoot)
	boot.Info("starting wizard (theme=%s, format=%s)", cfg.ThemeID(), cfg.PosterFormat())

	images := imageref.NewRegistry()
	raster := browser.NewRasterizer(cfg.Browser)
	defer func() {
		if err := raster.Shutdown(); err != nil {
			boot.Warn("browser shutdown: %v", err)
		}
	}()

	caps := loader.New()
	caps.Register(loader.Confetti, confettiAvailable)
	caps.Register(loader.Rasterizer, raster.Start)

	player := audio.NewController(audio.ExecPlayer{Command: cfg.Audio.Command}, cfg.Audio.Track)
	defer func() { _ = player.Close() }()

	return ui.Run(ui.Options{
		Context:       ctx,
		Theme:         cfg.ThemeID(),
		Format:        cfg.PosterFormat(),
		ToastDuration: cfg.ToastDuration(),
		Loader:        caps,
		Images:        images,
		Exporter: &poster.Exporter{
			Rasterizer: raster,
			Images:     images,
			Dir:        cfg.Poster.OutputDir,
		},
		Audio: player,
		Seed:  uint64(time.Now().UnixNano()),
	})
}
