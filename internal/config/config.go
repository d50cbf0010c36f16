package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/seriesview/internal/app"
	"github.com/atomicstack/seriesview/internal/viewport"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	EnvFile string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envEnvFile          = "SERIESVIEW_ENV_FILE"
	envCatalog          = "SERIESVIEW_CATALOG"
	envWatch            = "SERIESVIEW_WATCH"
	envSeries           = "SERIESVIEW_SERIES"
	envWindow           = "SERIESVIEW_WINDOW"
	envLevel            = "SERIESVIEW_LEVEL"
	envZoom             = "SERIESVIEW_ZOOM"
	envContrastOffset   = "SERIESVIEW_CONTRAST_OFFSET"
	envBrightnessOffset = "SERIESVIEW_BRIGHTNESS_OFFSET"
	envWidth            = "SERIESVIEW_WIDTH"
	envHeight           = "SERIESVIEW_HEIGHT"
	envShowFooter       = "SERIESVIEW_FOOTER"
	envTrace            = "SERIESVIEW_TRACE"
	envLogFile          = "SERIESVIEW_LOG_FILE"

	defaultEnvFile  = ".env"
	defaultSeriesID = 2
)

// Load parses configuration from CLI arguments, environment variables and an
// optional dotenv file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	envFile, err := mergeEnvFile(env)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("seriesview", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	defaults := viewport.DefaultAdjustments
	calibration := viewport.DefaultCalibration

	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a YAML series catalog (built-in demo study when empty)")
	watch := fs.Duration("watch", envOrDuration(env, envWatch, 0), "reload the catalog file at this interval (0 disables)")
	series := fs.Int("series", envOrInt(env, envSeries, defaultSeriesID), "series id shown at startup (falls back to the first series)")
	window := fs.Float64("window", envOrFloat(env, envWindow, defaults.Window), "initial window (0-100)")
	level := fs.Float64("level", envOrFloat(env, envLevel, defaults.Level), "initial level (0-100)")
	zoom := fs.Float64("zoom", envOrFloat(env, envZoom, defaults.Zoom), "initial zoom percent (50-200)")
	contrastOffset := fs.Float64("contrast-offset", envOrFloat(env, envContrastOffset, calibration.ContrastOffset), "offset added to the window to obtain contrast percent")
	brightnessOffset := fs.Float64("brightness-offset", envOrFloat(env, envBrightnessOffset, calibration.BrightnessOffset), "offset added to the level to obtain brightness percent")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:   *catalogPath,
			WatchInterval: *watch,
			SeriesID:      *series,
			Adjustments: viewport.Adjustments{
				Window: *window,
				Level:  *level,
				Zoom:   *zoom,
			},
			Calibration: viewport.Calibration{
				ContrastOffset:   *contrastOffset,
				BrightnessOffset: *brightnessOffset,
			},
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		EnvFile: envFile,
		Flags: map[string]string{
			"catalog":           *catalogPath,
			"watch":             watch.String(),
			"series":            strconv.Itoa(*series),
			"window":            formatFloat(*window),
			"level":             formatFloat(*level),
			"zoom":              formatFloat(*zoom),
			"contrast-offset":   formatFloat(*contrastOffset),
			"brightness-offset": formatFloat(*brightnessOffset),
			"width":             strconv.Itoa(*width),
			"height":            strconv.Itoa(*height),
			"footer":            strconv.FormatBool(*footer),
			"trace":             strconv.FormatBool(*trace),
			"logFile":           *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// mergeEnvFile fills env with values from the dotenv file named by
// SERIESVIEW_ENV_FILE, or ./.env when present. Values already in env win.
// It returns the path that was read, if any.
func mergeEnvFile(env map[string]string) (string, error) {
	path, explicit := env[envEnvFile]
	path = strings.TrimSpace(path)
	if !explicit || path == "" {
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return "", nil
		}
		path = defaultEnvFile
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return "", fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range values {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
	return path, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks settings that cannot be enforced by flag parsing alone.
// Out-of-range adjustments are not errors; the viewport clamps them.
func Validate(cfg Config) error {
	if cfg.App.WatchInterval < 0 {
		return fmt.Errorf("watch interval must be >= 0 (got %s)", cfg.App.WatchInterval)
	}
	if cfg.App.CatalogPath == "" {
		if cfg.App.WatchInterval > 0 {
			return errors.New("--watch requires --catalog")
		}
		return nil
	}
	info, err := os.Stat(cfg.App.CatalogPath)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("catalog %s is a directory", cfg.App.CatalogPath)
	}
	return nil
}
