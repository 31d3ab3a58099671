package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"pacman/internal/config"
	"pacman/internal/game"
	"pacman/internal/logging"
	"pacman/internal/playthrough"
	"pacman/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML config file; defaults are used when empty")
	seed := flag.Int64("seed", 0, "seed for ghost decisions; 0 picks one from the clock")
	record := flag.String("record", "", "write the playthrough to this file when the window closes")
	scale := flag.Float64("scale", 1.5, "window scale factor")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	log, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, *configPath, *seed, *record, *scale); err != nil {
		log.Error("pacman failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger, configPath string, seed int64, record string, scale float64) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting",
		zap.String("config", configPath),
		zap.Int64("seed", seed),
		zap.Int("tileSize", cfg.TileSize),
		zap.Int("frameRate", cfg.FrameRate))

	sim, err := game.New(cfg, seed, game.WithLogger(log))
	if err != nil {
		return err
	}

	opts := []ui.Option{ui.WithLogger(log)}
	var p *playthrough.Playthrough
	if record != "" {
		p = playthrough.New(cfg, seed)
		opts = append(opts, ui.WithRecorder(p))
	}
	app := ui.NewApp(sim, opts...)

	ebiten.SetWindowTitle("Pacman (Go + Ebiten)")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(int(float64(app.Width())*scale), int(float64(app.Height())*scale))
	ebiten.SetTPS(cfg.FrameRate)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	log.Info("game closed",
		zap.Stringer("state", sim.State()),
		zap.Int("score", sim.Score()))
	if p != nil {
		if err := p.Save(record); err != nil {
			return fmt.Errorf("save playthrough: %w", err)
		}
		log.Info("playthrough saved",
			zap.String("path", record),
			zap.Stringer("id", p.Id),
			zap.Int("frames", len(p.History)))
	}
	return nil
}
