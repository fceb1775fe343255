package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// Render a still frame and write it as a PPM image.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := createScene(ctx.String("scene"), ctx.String("scene-file"))
	if err != nil {
		return err
	}
	applyOverrides(ctx, sc)

	config := renderer.RenderConfig{
		Width:      sc.Width,
		Height:     sc.Height,
		Seed:       ctx.Int64("seed"),
		NumWorkers: ctx.Int("workers"),
	}
	if err := validateSettings(config, sc.SamplingConfig); err != nil {
		return err
	}

	out, closeOut, err := openOutput(ctx.String("out"))
	if err != nil {
		return err
	}
	defer closeOut()

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q", sc.Name)
	stats, err := renderScene(runCtx, sc, config, ctx.Float64("gamma"), out)
	if err != nil {
		return err
	}

	displayFrameStats(stats)
	return nil
}

// createScene resolves a built-in scene name or, when set, a YAML scene file.
func createScene(name, file string) (*scene.Scene, error) {
	if file != "" {
		return loaders.LoadSceneFile(file)
	}
	if name == "" {
		return nil, errors.New("missing scene name")
	}
	return scene.Lookup(name)
}

// applyOverrides copies explicitly set flags onto the scene's recommended settings.
func applyOverrides(ctx *cli.Context, sc *scene.Scene) {
	width, height := sc.Width, sc.Height
	if ctx.IsSet("width") {
		width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		height = ctx.Int("height")
	}
	if width != sc.Width || height != sc.Height {
		sc.SetResolution(width, height)
	}

	if ctx.IsSet("spp") {
		sc.SamplingConfig.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("max-depth") {
		sc.SamplingConfig.MaxDepth = ctx.Int("max-depth")
	}
}

func validateSettings(config renderer.RenderConfig, sampling renderer.SamplingConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if sampling.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", renderer.ErrInvalidSamples, sampling.SamplesPerPixel)
	}
	return nil
}

func renderScene(ctx context.Context, sc *scene.Scene, config renderer.RenderConfig, gamma float64, out io.Writer) (renderer.RenderStats, error) {
	rt := renderer.NewRaytracer(sc, config)
	rt.SetSamplingConfig(sc.SamplingConfig)

	img, stats, err := rt.Render(ctx)
	if err != nil {
		return stats, err
	}

	if err := renderer.WritePPM(out, img, gamma); err != nil {
		return stats, err
	}
	return stats, nil
}

// openOutput returns stdout for "-" and a newly created file otherwise.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("while creating output file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			logger.Warningf("could not close %s: %v", path, err)
		}
	}, nil
}

func displayFrameStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics\n%s", renderer.StatsTable(stats))
}
