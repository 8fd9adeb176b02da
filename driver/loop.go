package driver

import (
	"context"
	"log/slog"
	"time"

	"github.com/akmonengine/cubefall"
	"github.com/akmonengine/cubefall/config"
)

// Loop steps a world once per value received on Ticks.
// All stepping and reloads happen on the goroutine calling Run.
type Loop struct {
	World *cubefall.World
	Input InputSource
	Ticks <-chan time.Time

	// 0 runs until the context is done or Ticks is closed
	MaxTicks uint64
	// Optional; each config replaces the tuning and, when set, the script
	Reload   <-chan config.Config
	// Config the world was built from; reloads changing its cube or ground are reported
	Scene    *config.Config

	logger    *slog.Logger
	steps     uint64
	// Step at which Input was installed; Input is sampled relative to it
	inputBase uint64
}

func NewLoop(world *cubefall.World, input InputSource, ticks <-chan time.Time, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	if input == nil {
		input = Script{}
	}

	l := &Loop{
		World:  world,
		Input:  input,
		Ticks:  ticks,
		logger: logger,
	}
	world.Simulator.Events.SubscribeAll(l.logEvent)

	return l
}

// Run steps until MaxTicks is reached, Ticks is closed or ctx is done.
// It returns the number of steps taken, and ctx.Err() when cancelled first.
func (l *Loop) Run(ctx context.Context) (uint64, error) {
	if l.steps == 0 && l.World.Embedded() {
		l.logger.Warn("cube starts inside the platform",
			"cube", l.World.Cube.Position,
			"ground", l.World.Ground.Position,
		)
	}

	for l.MaxTicks == 0 || l.steps < l.MaxTicks {
		select {
		case <-ctx.Done():
			return l.steps, ctx.Err()
		case cfg, ok := <-l.Reload:
			if !ok {
				l.Reload = nil
				continue
			}
			l.apply(cfg)
		case _, ok := <-l.Ticks:
			if !ok {
				return l.steps, nil
			}
			l.World.Step(l.Input.Sample(l.steps - l.inputBase))
			l.steps++
		}
	}

	return l.steps, nil
}

// Steps returns the number of steps taken so far
func (l *Loop) Steps() uint64 {
	return l.steps
}

func (l *Loop) apply(cfg config.Config) {
	l.World.Simulator.Tuning = cfg.SimulationTuning()

	if cfg.Script != "" {
		script, err := ParseScript(cfg.Script)
		if err != nil {
			l.logger.Error("ignoring reloaded script", "error", err)
		} else {
			script.Loop = cfg.LoopScript
			l.Input = script
			l.inputBase = l.steps
		}
	}

	if l.Scene != nil && (cfg.Cube != l.Scene.Cube || cfg.Ground != l.Scene.Ground) {
		l.logger.Warn("ignoring reloaded cube and ground, restart to apply them")
	}

	l.logger.Info("config reloaded",
		"tick", l.steps,
		"horizontal_speed", cfg.Tuning.HorizontalSpeed,
		"damping", cfg.Tuning.Damping,
		"fall_threshold", cfg.Tuning.FallThreshold,
	)
}

func (l *Loop) logEvent(event cubefall.Event) {
	switch e := event.(type) {
	case cubefall.BounceEvent:
		l.logger.Debug("bounce", "tick", e.Tick, "impact", e.ImpactVelocity, "rebound", e.ReboundVelocity)
	case cubefall.ResetEvent:
		l.logger.Info("cube reset", "tick", e.Tick, "last_position", e.LastPosition)
	case cubefall.FellOffEdgeEvent:
		l.logger.Info("cube fell off the edge", "tick", e.Tick, "position", e.Body.Position)
	case cubefall.ReturnedOverPlatformEvent:
		l.logger.Debug("cube back over platform", "tick", e.Tick, "position", e.Body.Position)
	}
}

// Unthrottled returns a tick channel that is always ready, until ctx is done
func Unthrottled(ctx context.Context) <-chan time.Time {
	ch := make(chan time.Time)
	go func() {
		defer close(ch)
		for {
			select {
			case ch <- time.Time{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
