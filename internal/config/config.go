// Package config loads the qrmatrix command settings from the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"paepcke.de/qrmatrix"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	OutputTerm = "term"
	OutputPNG  = "png"
)

// Config holds the command settings.
type Config struct {
	Version   int            `env:"QR_VERSION" envDefault:"4"`
	Level     qrmatrix.Level `env:"QR_LEVEL" envDefault:"H"`
	QuietZone int            `env:"QR_QUIET_ZONE" envDefault:"4"`

	Output    string `env:"QR_OUTPUT" envDefault:"term"`
	TermStyle string `env:"QR_TERM_STYLE" envDefault:"ansi"`

	PNGPath    string  `env:"QR_PNG_PATH" envDefault:"qrcode.png"`
	PNGSize    int     `env:"QR_PNG_SIZE" envDefault:"256"`
	Margin     int     `env:"QR_MARGIN" envDefault:"10"`
	ColorDark  string  `env:"QR_COLOR_DARK" envDefault:"#000000"`
	ColorLight string  `env:"QR_COLOR_LIGHT" envDefault:"#ffffff"`
	Roundness  float64 `env:"QR_ROUNDNESS" envDefault:"0"`
	PixelSize  float64 `env:"QR_PIXEL_SIZE" envDefault:"1"`

	LogLevel slog.Level `env:"QR_LOG_LEVEL" envDefault:"warn"`
	LogJSON  bool       `env:"QR_LOG_JSON" envDefault:"false"`
}

// Load reads the given .env files (".env" when none are named, missing
// files are ignored), parses the environment and validates the result.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Version < 1 || c.Version > qrmatrix.MaxVersion {
		errs = append(errs, fmt.Errorf("QR_VERSION %d not in 1..%d", c.Version, qrmatrix.MaxVersion))
	}
	if c.QuietZone < 0 {
		errs = append(errs, fmt.Errorf("QR_QUIET_ZONE %d is negative", c.QuietZone))
	}
	switch c.Output {
	case OutputTerm:
		if _, err := qrmatrix.ParseTermStyle(c.TermStyle); err != nil {
			errs = append(errs, err)
		}
	case OutputPNG:
		if c.PNGPath == "" {
			errs = append(errs, errors.New("QR_PNG_PATH is empty"))
		}
		if c.PNGSize <= 2*c.Margin {
			errs = append(errs, fmt.Errorf("QR_PNG_SIZE %d too small for margin %d", c.PNGSize, c.Margin))
		}
		if c.Roundness < 0 || c.Roundness > 1 {
			errs = append(errs, fmt.Errorf("QR_ROUNDNESS %v not in 0..1", c.Roundness))
		}
		if c.PixelSize <= 0 || c.PixelSize > 1 {
			errs = append(errs, fmt.Errorf("QR_PIXEL_SIZE %v not in (0, 1]", c.PixelSize))
		}
		for _, s := range []string{c.ColorDark, c.ColorLight} {
			if _, err := qrmatrix.ParseHexColor(s); err != nil {
				errs = append(errs, err)
			}
		}
	default:
		errs = append(errs, fmt.Errorf("QR_OUTPUT %q is neither %q nor %q", c.Output, OutputTerm, OutputPNG))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
