package main

import (
	"context"
	"errors"
	"image"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	engineinput "mapquiz/pkg/engine/input"
	"mapquiz/pkg/engine/world"
	"mapquiz/pkg/game/catalog"
	"mapquiz/pkg/game/config"
	"mapquiz/pkg/game/devtools"
	"mapquiz/pkg/game/gameplay"
	"mapquiz/pkg/game/i18n"
	"mapquiz/pkg/game/renderer"
	ebitenrenderer "mapquiz/pkg/game/renderer/ebiten"
	"mapquiz/pkg/game/renderer/tui"
	"mapquiz/pkg/log"
)

const (
	releaseVersion = "1.0.0"
)

// Overview map size for the catalog subcommand
const (
	dumpRows = 25
	dumpCols = 50
)

func main() {
	if err := config.LoadDotEnv(config.DefaultDotEnv); err != nil {
		log.Warn("%v", err)
	}

	cfg := config.Defaults()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newCmd(&cfg).ExecuteContext(ctx)
	stop()

	if err != nil {
		log.Error("%v", err)
	}
	os.Exit(exitCode(err))
}

// exitCode is 1 for any error that stops the quiz, including a data file
// that cannot be loaded. Leaving the quiz early is not an error.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

func newCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mapquiz",
		Short:         "A map quiz: name every district to label it on the map.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindEnv(cmd.Flags()); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return setup(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd.Context(), cfg)
		},
	}

	cfg.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(&cobra.Command{
		Use:   "catalog",
		Short: "Load the data file and print every entity with its coordinates.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpCatalog(cmd, cfg)
		},
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("mapquiz v{{.Version}}\n")

	return cmd
}

// setup applies the log level and locale
func setup(cfg *config.Config) error {
	level, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if err := i18n.Load(cfg.Locale); err != nil {
		log.Warn("%v; using %s", err, i18n.Active())
	}
	return nil
}

func play(ctx context.Context, cfg *config.Config) error {
	cat, err := catalog.Load(cfg.DataPath, cfg.Columns())
	if err != nil {
		return err
	}
	log.Info("loaded %d entities from %s", cat.Len(), cfg.DataPath)

	background, err := renderer.BackgroundOrPlaceholder(cfg.MapPath)
	if err != nil {
		log.Warn("%v; drawing a placeholder instead", err)
	}

	surface, device, err := newSurface(cfg, background)
	if err != nil {
		return err
	}

	session := gameplay.New(cat, surface, gameplay.Options{
		MessageDelay: cfg.MessageDelay,
		Logger:       log.Default(),
		Device:       device,
	})

	err = surface.Run(ctx, session.Run)

	snap := session.Snapshot()
	log.Info("finished: %s with %d/%d found", snap.Status, snap.Score, snap.Total)

	// Closing the window or the input stream is how a player leaves
	if errors.Is(err, renderer.ErrInputClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newSurface(cfg *config.Config, background image.Image) (renderer.Surface, engineinput.Device, error) {
	switch cfg.Renderer {
	case config.RendererTUI:
		return tui.New(tui.Options{
			In:         os.Stdin,
			Out:        os.Stdout,
			Width:      float64(cfg.Width),
			Height:     float64(cfg.Height),
			Background: background,
		}), engineinput.DeviceTerminal, nil
	default:
		surface, err := ebitenrenderer.New(ebitenrenderer.Options{
			Title:      cfg.Title,
			Width:      cfg.Width,
			Height:     cfg.Height,
			Background: background,
			Logger:     log.Default(),
		})
		if err != nil {
			return nil, engineinput.DeviceUnknown, err
		}
		return surface, engineinput.DeviceWindow, nil
	}
}

func dumpCatalog(cmd *cobra.Command, cfg *config.Config) error {
	cat, err := catalog.Load(cfg.DataPath, cfg.Columns())
	if err != nil {
		return err
	}

	return devtools.DumpCatalog(cmd.OutOrStdout(), cat, devtools.DumpOptions{
		Source: cfg.DataPath,
		Bounds: world.CenteredBounds(float64(cfg.Width), float64(cfg.Height)),
		Rows:   dumpRows,
		Cols:   dumpCols,
	})
}
