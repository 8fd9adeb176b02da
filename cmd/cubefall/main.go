// Command cubefall runs the falling cube simulation without a window,
// logging falls, resets and bounces.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akmonengine/cubefall/config"
	"github.com/akmonengine/cubefall/driver"
)

func main() {
	if err := run(); err != nil {
		slog.Error("cubefall failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "scene file (.toml, .yaml or .yml)")
	watch := flag.Bool("watch", false, "reload tuning and script when the config file changes")
	script := flag.String("script", "", "input script, e.g. right:60,none:30,left:10 (overrides the config)")
	loopScript := flag.Bool("loop", false, "replay the script when it ends")
	rate := flag.Int("rate", -1, "ticks per second, 0 runs unthrottled (overrides the config)")
	maxTicks := flag.Uint64("ticks", 0, "stop after this many ticks (overrides the config)")
	verbose := flag.Bool("v", false, "log every bounce")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *script != "" {
		cfg.Script = *script
	}
	if *loopScript {
		cfg.LoopScript = true
	}
	if *rate >= 0 {
		cfg.TickRate = *rate
	}
	if *maxTicks > 0 {
		cfg.MaxTicks = *maxTicks
	}

	input, err := driver.ParseScript(cfg.Script)
	if err != nil {
		return err
	}
	input.Loop = cfg.LoopScript

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var ticks <-chan time.Time
	if cfg.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
		defer ticker.Stop()
		ticks = ticker.C
	} else {
		ticks = driver.Unthrottled(ctx)
	}

	world := cfg.World()
	loop := driver.NewLoop(world, input, ticks, logger)
	loop.MaxTicks = cfg.MaxTicks
	loop.Scene = &cfg

	if *watch {
		if *configPath == "" {
			return errors.New("-watch needs -config")
		}
		if loop.Reload, err = config.Watch(ctx, *configPath, logger); err != nil {
			return err
		}
	}

	logger.Info("simulation started",
		"tick_rate", cfg.TickRate,
		"max_ticks", cfg.MaxTicks,
		"script_ticks", input.Length(),
	)

	steps, err := loop.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	cube := world.Cube
	logger.Info("simulation stopped",
		"steps", steps,
		"phase", world.Simulator.Phase(),
		"x", fmt.Sprintf("%.4f", cube.Position.X()),
		"y", fmt.Sprintf("%.4f", cube.Position.Y()),
		"vy", fmt.Sprintf("%.5f", cube.Velocity.Y()),
	)

	return nil
}
