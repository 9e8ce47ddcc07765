package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paepcke.de/qrmatrix"
)

func missing(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missing(t))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Version)
	assert.Equal(t, qrmatrix.LevelH, cfg.Level)
	assert.Equal(t, 4, cfg.QuietZone)
	assert.Equal(t, OutputTerm, cfg.Output)
	assert.Equal(t, "ansi", cfg.TermStyle)
	assert.Equal(t, 256, cfg.PNGSize)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("QR_VERSION", "10")
	t.Setenv("QR_LEVEL", "q")
	t.Setenv("QR_OUTPUT", "png")
	t.Setenv("QR_PNG_SIZE", "512")
	t.Setenv("QR_ROUNDNESS", "0.5")
	t.Setenv("QR_LOG_LEVEL", "debug")
	t.Setenv("QR_LOG_JSON", "true")

	cfg, err := Load(missing(t))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Version)
	assert.Equal(t, qrmatrix.LevelQ, cfg.Level)
	assert.Equal(t, OutputPNG, cfg.Output)
	assert.Equal(t, 512, cfg.PNGSize)
	assert.InDelta(t, 0.5, cfg.Roundness, 1e-9)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoadDotEnv(t *testing.T) {
	// godotenv never overrides variables that are already set.
	t.Setenv("QR_LEVEL", "L")
	t.Setenv("QR_VERSION", "")
	os.Unsetenv("QR_VERSION")
	t.Setenv("QR_TERM_STYLE", "")
	os.Unsetenv("QR_TERM_STYLE")

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("QR_VERSION=7\nQR_LEVEL=H\nQR_TERM_STYLE=half\n"), 0o600))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Version)
	assert.Equal(t, qrmatrix.LevelL, cfg.Level)
	assert.Equal(t, "half", cfg.TermStyle)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("QR_VERSION", "four")
	_, err := Load(missing(t))
	assert.Error(t, err)

	t.Setenv("QR_VERSION", "4")
	t.Setenv("QR_LEVEL", "X")
	_, err = Load(missing(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid error correction level")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Version:    4,
			Level:      qrmatrix.LevelM,
			QuietZone:  4,
			Output:     OutputPNG,
			TermStyle:  "ansi",
			PNGPath:    "qr.png",
			PNGSize:    256,
			Margin:     10,
			ColorDark:  "#000",
			ColorLight: "#fff",
			PixelSize:  1,
		}
	}
	require.NoError(t, valid().Validate())

	tests := map[string]func(c *Config){
		"version zero": func(c *Config) { c.Version = 0 },
		"version 11":   func(c *Config) { c.Version = 11 },
		"quiet zone":   func(c *Config) { c.QuietZone = -1 },
		"output":       func(c *Config) { c.Output = "svg" },
		"term style":   func(c *Config) { c.Output = OutputTerm; c.TermStyle = "sixel" },
		"png path":     func(c *Config) { c.PNGPath = "" },
		"png size":     func(c *Config) { c.PNGSize = 20 },
		"roundness":    func(c *Config) { c.Roundness = 1.5 },
		"pixel size":   func(c *Config) { c.PixelSize = 0 },
		"dark color":   func(c *Config) { c.ColorDark = "black" },
		"light color":  func(c *Config) { c.ColorLight = "#12" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	t.Run("joins every failure", func(t *testing.T) {
		c := valid()
		c.Version = 0
		c.PNGPath = ""
		err := c.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "QR_VERSION")
		assert.Contains(t, err.Error(), "QR_PNG_PATH")
	})

	t.Run("png settings ignored for terminal output", func(t *testing.T) {
		c := valid()
		c.Output = OutputTerm
		c.PNGPath = ""
		c.ColorDark = "black"
		assert.NoError(t, c.Validate())
	})
}
