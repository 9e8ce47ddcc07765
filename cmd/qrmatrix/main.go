package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"paepcke.de/qrmatrix"
	"paepcke.de/qrmatrix/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		out("[qrmatrix] [error] " + err.Error())
		os.Exit(1)
	}
	logger := newLogger(cfg)

	var text string
	switch {
	case isPipe():
		text = getPipe()
	case isOsArgs():
		text = getOsArg()
	default:
		out("[qrmatrix] [error] no pipe or input parameter found, example: echo https://paepcke.de | qrmatrix")
		os.Exit(1)
	}

	m, err := qrmatrix.Encode(text, cfg.Version, cfg.Level, qrmatrix.WithLogger(logger))
	if err != nil {
		logger.Error("encode failed", slog.Any("error", err))
		out("[qrmatrix] [error] unable to encode input to qr code: " + err.Error())
		os.Exit(1)
	}

	if err := render(cfg, m); err != nil {
		logger.Error("render failed", slog.Any("error", err))
		out("[qrmatrix] [error] " + err.Error())
		os.Exit(1)
	}
}

func render(cfg config.Config, m *qrmatrix.Matrix) error {
	if cfg.Output == config.OutputPNG {
		return renderPNG(cfg, m)
	}
	style, err := qrmatrix.ParseTermStyle(cfg.TermStyle)
	if err != nil {
		return err
	}
	return qrmatrix.NewTermDrawer(os.Stdout, cfg.QuietZone, style).Draw(m)
}

func renderPNG(cfg config.Config, m *qrmatrix.Matrix) error {
	d := qrmatrix.NewImageDrawer(cfg.PNGSize, cfg.PNGSize)
	d.Margin = cfg.Margin
	d.QuietZone = cfg.QuietZone
	d.Roundness = cfg.Roundness
	d.PixelSize = cfg.PixelSize
	dark, err := qrmatrix.ParseHexColor(cfg.ColorDark)
	if err != nil {
		return err
	}
	lightColor, err := qrmatrix.ParseHexColor(cfg.ColorLight)
	if err != nil {
		return err
	}
	d.Dark, d.Light = dark, lightColor
	if err := d.Draw(m); err != nil {
		return err
	}

	f, err := os.Create(cfg.PNGPath)
	if err != nil {
		return err
	}
	if err := d.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

//
// LITTLE GENERIC HELPER SECTION
//

// out ...
func out(msg string) {
	os.Stdout.Write([]byte(msg + "\n"))
}

// isPipe ...
func isPipe() bool {
	out, _ := os.Stdin.Stat()
	return out.Mode()&os.ModeCharDevice == 0
}

// getPipe ...
func getPipe() string {
	pipe, err := io.ReadAll(os.Stdin)
	if err != nil {
		out("[qrmatrix] [error] reading data from pipe")
		os.Exit(1)
	}
	return strings.TrimRight(string(pipe), "\r\n")
}

// isOsArgs ...
func isOsArgs() bool {
	return len(os.Args) > 1
}

// getOsArg ...
func getOsArg() string {
	return os.Args[1]
}
