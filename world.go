package cubefall

import (
	"github.com/akmonengine/cubefall/actor"
	"github.com/go-gl/mathgl/mgl64"
)

type World struct {
	// The dynamic body, mutated by each step
	Cube *actor.Body

	// The static platform, never mutated after creation
	Ground *actor.Body

	// Active set: the bodies a renderer should draw
	Bodies []*actor.Body

	Simulator *Simulator
}

// NewWorld creates a world where cube falls onto ground. Both bodies are active.
func NewWorld(cube, ground *actor.Body, tuning Tuning) *World {
	w := &World{
		Cube:      cube,
		Ground:    ground,
		Simulator: NewSimulator(tuning),
	}
	w.AddBody(cube)
	w.AddBody(ground)

	// A reset must leave the cube in the active set
	w.Simulator.Events.Subscribe(RESET, func(event Event) {
		if reset := event.(ResetEvent); !w.Contains(reset.Body) {
			w.AddBody(reset.Body)
		}
	})

	return w
}

// NewReferenceWorld builds the default scene: a 5x0.5x10 blue platform two units
// below a unit cube that starts falling slowly.
func NewReferenceWorld(tuning Tuning) *World {
	ground := actor.NewBody(5, 0.5, 10, "#0000ff", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -2, 0})
	cube := actor.NewBody(1, 1, 1, actor.DEFAULT_COLOR, mgl64.Vec3{0, -0.01, 0}, mgl64.Vec3{0, 0, 0})

	return NewWorld(cube, ground, tuning)
}

// AddBody adds a body to the active set
func (w *World) AddBody(body *actor.Body) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a body from the active set
func (w *World) RemoveBody(body *actor.Body) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}
}

func (w *World) Contains(body *actor.Body) bool {
	for _, b := range w.Bodies {
		if b == body {
			return true
		}
	}
	return false
}

// Embedded reports whether the cube's box intersects the platform's box on all three axes.
// Stepping only looks at the platform's top face, so an embedded cube is bounced up from inside it.
func (w *World) Embedded() bool {
	return w.Cube.AABB().Overlaps(w.Ground.AABB())
}

// Step advances the cube by one frame
func (w *World) Step(input Input) {
	w.Simulator.Step(w.Cube, w.Ground, input)
}
