package cubefall

import (
	"github.com/akmonengine/cubefall/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// HORIZONTAL_SPEED is the x velocity set while a move key is held (units/frame)
	HORIZONTAL_SPEED = 0.05
	// DAMPING scales the vertical speed on each ground contact
	DAMPING = 0.8
	// FALL_THRESHOLD is the height below which a body that left the platform is reset
	FALL_THRESHOLD = -10.0
)

// Tuning holds the constants of the step function
type Tuning struct {
	HorizontalSpeed float64
	Damping         float64 // 0 = no rebound, must stay below 1
	FallThreshold   float64
}

func DefaultTuning() Tuning {
	return Tuning{
		HorizontalSpeed: HORIZONTAL_SPEED,
		Damping:         DAMPING,
		FallThreshold:   FALL_THRESHOLD,
	}
}

// Phase is the vertical state of the dynamic body
type Phase uint8

const (
	PHASE_OVER_PLATFORM Phase = iota
	PHASE_OFF_PLATFORM
	// PHASE_RESETTING only lasts for the step that resets the body
	PHASE_RESETTING
)

func (p Phase) String() string {
	switch p {
	case PHASE_OVER_PLATFORM:
		return "over-platform"
	case PHASE_OFF_PLATFORM:
		return "off-platform"
	case PHASE_RESETTING:
		return "resetting"
	}
	return "unknown"
}

// Simulator advances one dynamic body against one static platform, one frame per Step.
// It has no notion of time: the caller decides when to step.
type Simulator struct {
	Tuning Tuning
	Events Events

	phase Phase
	tick  uint64
}

func NewSimulator(tuning Tuning) *Simulator {
	return &Simulator{
		Tuning: tuning,
		Events: NewEvents(),
	}
}

// Step advances body by one frame with the default tuning.
// ground is only read.
func Step(body, ground *actor.Body, input Input) {
	s := Simulator{Tuning: DefaultTuning()}
	s.Step(body, ground, input)
}

// Step advances body by one frame against ground, using the held keys of input.
// The order of operations is fixed: bounds, horizontal velocity, horizontal move,
// overlap test, then either free fall (with reset) or ground collision.
func (s *Simulator) Step(body, ground *actor.Body, input Input) {
	s.tick++

	body.RecomputeBounds()

	body.Velocity[0] = input.Direction().Sign() * s.Tuning.HorizontalSpeed
	body.Position[0] += body.Velocity.X()

	if !Overlapping(body, ground) {
		s.transition(body, PHASE_OFF_PLATFORM)

		body.Velocity[1] += body.Gravity
		body.Position[1] += body.Velocity.Y()

		if body.Position.Y() < s.Tuning.FallThreshold {
			s.reset(body)
		}
	} else {
		s.transition(body, PHASE_OVER_PLATFORM)
		s.applyGravity(body, ground)
	}

	s.Events.flush()
}

// applyGravity integrates the vertical motion of a body above the platform.
// Only the platform's top surface is considered, its thickness is ignored.
func (s *Simulator) applyGravity(body, ground *actor.Body) {
	body.Velocity[1] += body.Gravity

	// where we hit the ground
	if body.Bounds.Bottom+body.Velocity.Y() <= ground.Bounds.Top {
		impact := body.Velocity.Y()
		body.Velocity[1] *= s.Tuning.Damping
		body.Velocity[1] = -body.Velocity.Y()

		s.Events.emit(BounceEvent{
			Body:            body,
			Tick:            s.tick,
			ImpactVelocity:  impact,
			ReboundVelocity: body.Velocity.Y(),
		})
		return
	}

	body.Position[1] += body.Velocity.Y()
}

// reset sends the body back to the world origin, not to its spawn point
func (s *Simulator) reset(body *actor.Body) {
	s.phase = PHASE_RESETTING
	last := body.Position

	body.Reset(mgl64.Vec3{0, 0, 0})

	s.Events.emit(ResetEvent{Body: body, Tick: s.tick, LastPosition: last})
	s.phase = PHASE_OVER_PLATFORM
}

func (s *Simulator) transition(body *actor.Body, next Phase) {
	if s.phase == next {
		return
	}

	switch next {
	case PHASE_OFF_PLATFORM:
		s.Events.emit(FellOffEdgeEvent{Body: body, Tick: s.tick})
	case PHASE_OVER_PLATFORM:
		s.Events.emit(ReturnedOverPlatformEvent{Body: body, Tick: s.tick})
	}
	s.phase = next
}

// Phase returns the state reached at the end of the last step
func (s *Simulator) Phase() Phase {
	return s.phase
}

// Tick returns the number of steps taken
func (s *Simulator) Tick() uint64 {
	return s.tick
}

// Overlapping reports whether the x interval of body intersects the x interval of ground.
// Height and depth are ignored: a body off the platform in depth still counts as above it.
func Overlapping(body, ground *actor.Body) bool {
	return body.AABB().OverlapsX(ground.AABB())
}
