// Command shapeview displays a shape in a window and transforms it in
// response to key presses.
//
// Without a configuration file it shows a sliced disc bound to the classic
// layout: WASD moves, Z and X rotate, E and Q scale, I/K/L/O combine all three,
// 1 to 3 switch between fill, outline, and points, and Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"honnef.co/go/geom3/internal/scene"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration `file` (default: built-in disc and key layout)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*configPath); err != nil {
		slog.Error("shapeview failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := scene.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = scene.LoadConfig(configPath)
		if err != nil {
			return err
		}
		slog.Info("loaded config", "path", configPath)
	}

	sc, err := scene.New(cfg)
	if err != nil {
		return err
	}
	g, err := newGame(sc, cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	slog.Info("opening window", "width", cfg.Window.Width, "height", cfg.Window.Height, "bindings", len(g.bindings))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
