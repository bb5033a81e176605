package main

import (
	"context"
	"fmt"

	"quickreview/internal/browser"
	"quickreview/internal/imageref"
	"quickreview/internal/loader"
	"quickreview/internal/poster"
	"quickreview/internal/theme"
	"quickreview/internal/wizard"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type posterFlags struct {
	reviewFlags
	image  string
	format string
	theme  string
	out    string
	html   bool
}

// posterRasterizer is the browser.Rasterizer surface the command uses.
type posterRasterizer interface {
	poster.Rasterizer
	Start(ctx context.Context) error
	Shutdown() error
}

// rasterizerFactory is a package-level variable to allow stubbing Chrome
// in tests.
var rasterizerFactory = func(c browser.Config) posterRasterizer {
	return browser.NewRasterizer(c)
}

func newPosterCmd() *cobra.Command {
	var flags posterFlags

	cmd := &cobra.Command{
		Use:   "poster",
		Short: "Render the review poster to a PNG",
		Example: `  review poster --place "Cafe X" --rating 5 --pros "great coffee" --image bg.jpg
  review poster -p "Cafe X" -r 4 --format A4 --theme cyber --out ./posters`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoster(cmd, &flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.image, "image", "", "Background image file")
	cmd.Flags().StringVar(&flags.format, "format", "", "Poster format: 9:16 or A4 (default from config)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Theme: cosmic, coffee, ocean, cyber (default from config)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&flags.html, "html", false, "Print the poster HTML instead of rendering it")
	return cmd
}

func runPoster(cmd *cobra.Command, flags *posterFlags) error {
	format := cfg.PosterFormat()
	if flags.format != "" {
		f, ok := poster.ParseFormat(flags.format)
		if !ok {
			return fmt.Errorf("unknown poster format %q (valid: 9:16, A4)", flags.format)
		}
		format = f
	}
	themeID := cfg.ThemeID()
	if flags.theme != "" {
		themeID = theme.ID(flags.theme)
		if !theme.Valid(themeID) {
			return fmt.Errorf("unknown theme %q (valid: %v)", flags.theme, theme.IDs())
		}
	}
	dir := cfg.Poster.OutputDir
	if flags.out != "" {
		dir = flags.out
	}
	if flags.place == "" {
		return errPlaceRequired
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	images := imageref.NewRegistry()
	raster := rasterizerFactory(cfg.Browser)
	defer func() {
		if err := raster.Shutdown(); err != nil {
			logger.Warn("Browser shutdown failed", zap.Error(err))
		}
	}()

	caps := loader.New()
	caps.Register(loader.Rasterizer, raster.Start)

	s := wizard.New(wizard.Deps{
		Notifier:     cliNotifier{w: cmd.ErrOrStderr()},
		Capabilities: caps,
		Images:       images,
		Exporter:     &poster.Exporter{Rasterizer: raster, Images: images, Dir: dir},
	}, wizard.WithTheme(themeID), wizard.WithPosterFormat(format))
	defer s.Close()

	if err := flags.apply(s); err != nil {
		return err
	}
	if flags.image != "" {
		ref, err := images.Create(flags.image)
		if err != nil {
			return err
		}
		s.SetPosterImage(ref)
	}
	s.GoToStep(wizard.StepStudio)

	if flags.html {
		var bg *imageref.Image
		if d := s.Poster(); d.HasBackground() {
			img, err := images.Resolve(d.Background)
			if err != nil {
				return err
			}
			bg = &img
		}
		html, err := poster.RenderHTML(s.Poster(), bg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), html)
		return nil
	}

	logger.Debug("Starting rasterizer", zap.Bool("headless", cfg.Browser.Headless))
	if err := caps.EnsureLoaded(ctx, loader.Rasterizer); err != nil {
		logger.Warn("Rasterizer unavailable", zap.Error(err))
	}

	path, err := s.ExportPoster(ctx)
	if err != nil {
		return err
	}
	logger.Info("Poster saved",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.String("theme", string(themeID)))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
