// Package config holds the command-line and environment configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mapquiz/pkg/game/catalog"
	"mapquiz/pkg/game/i18n"
	"mapquiz/pkg/log"
)

// EnvPrefix is prepended to every environment variable, e.g. MAPQUIZ_DATA
const EnvPrefix = "MAPQUIZ"

// Renderer backends
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

type Config struct {
	DataPath     string
	NameColumn   string
	XColumn      string
	YColumn      string
	MapPath      string
	Renderer     string
	Title        string
	Width        int
	Height       int
	MessageDelay time.Duration
	Locale       string
	LogLevel     string
}

// Defaults returns the configuration for the Sindh districts quiz
func Defaults() Config {
	cols := catalog.DefaultColumns()
	return Config{
		DataPath:     "Districts.csv",
		NameColumn:   cols.Name,
		XColumn:      cols.X,
		YColumn:      cols.Y,
		MapPath:      "Sindh_Districts.gif",
		Renderer:     RendererEbiten,
		Title:        "Sindh Districts Game - Educational Quiz",
		Width:        700,
		Height:       700,
		MessageDelay: 2 * time.Second,
		Locale:       i18n.DefaultLocale,
		LogLevel:     "info",
	}
}

// Columns returns the CSV header names
func (c *Config) Columns() catalog.Columns {
	return catalog.Columns{Name: c.NameColumn, X: c.XColumn, Y: c.YColumn}
}

func (c *Config) Validate() error {
	if c.DataPath == "" {
		return errors.New("--data must not be empty")
	}
	if c.NameColumn == "" || c.XColumn == "" || c.YColumn == "" {
		return errors.New("column names must not be empty")
	}
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("invalid renderer %q (must be %s or %s)", c.Renderer, RendererEbiten, RendererTUI)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d (must be positive)", c.Width, c.Height)
	}
	if c.MessageDelay <= 0 {
		return fmt.Errorf("invalid message delay %v (must be positive)", c.MessageDelay)
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// AddFlags registers every option on fs with its default. Flags shared by
// subcommands go on a persistent flag set.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	d := Defaults()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&c.DataPath, "data", "d", d.DataPath, "CSV file with one row per district (env: MAPQUIZ_DATA)")
	fs.StringVar(&c.NameColumn, "name-column", d.NameColumn, "header of the name column (env: MAPQUIZ_NAME_COLUMN)")
	fs.StringVar(&c.XColumn, "x-column", d.XColumn, "header of the x coordinate column (env: MAPQUIZ_X_COLUMN)")
	fs.StringVar(&c.YColumn, "y-column", d.YColumn, "header of the y coordinate column (env: MAPQUIZ_Y_COLUMN)")
	fs.StringVarP(&c.MapPath, "map", "m", d.MapPath, "background map image (env: MAPQUIZ_MAP)")
	fs.StringVarP(&c.Renderer, "renderer", "r", d.Renderer, "display backend, ebiten or tui (env: MAPQUIZ_RENDERER)")
	fs.StringVar(&c.Title, "title", d.Title, "window title (env: MAPQUIZ_TITLE)")
	fs.IntVar(&c.Width, "width", d.Width, "map width in map units (env: MAPQUIZ_WIDTH)")
	fs.IntVar(&c.Height, "height", d.Height, "map height in map units (env: MAPQUIZ_HEIGHT)")
	fs.DurationVar(&c.MessageDelay, "message-delay", d.MessageDelay, "how long feedback messages stay visible (env: MAPQUIZ_MESSAGE_DELAY)")
	fs.StringVar(&c.Locale, "locale", d.Locale, "message language (env: MAPQUIZ_LOCALE)")
	fs.StringVar(&c.LogLevel, "log-level", d.LogLevel, "error, warn, info, debug or trace (env: MAPQUIZ_LOG_LEVEL)")
}

// BindEnv applies MAPQUIZ_* environment variables to every flag in fs that
// was not set on the command line.
func BindEnv(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			if err := fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				errs = append(errs, fmt.Errorf("%s_%s: %w", EnvPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), err))
			}
		}
	})
	return errors.Join(errs...)
}

// DefaultDotEnv is read at startup when present
const DefaultDotEnv = ".env"

// LoadDotEnv reads KEY=value pairs from path into the environment so
// BindEnv sees them. A missing file is not an error, and variables already
// set in the environment win.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
