package cubefall

import (
	"testing"

	"github.com/akmonengine/cubefall/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferenceWorld(t *testing.T) {
	world := NewReferenceWorld(DefaultTuning())

	require.Len(t, world.Bodies, 2)
	assert.True(t, world.Contains(world.Cube))
	assert.True(t, world.Contains(world.Ground))

	assert.Equal(t, mgl64.Vec3{5, 0.5, 10}, world.Ground.Extents())
	assert.Equal(t, mgl64.Vec3{0, -2, 0}, world.Ground.Position)
	assert.Equal(t, "#0000ff", world.Ground.Color)

	assert.Equal(t, mgl64.Vec3{1, 1, 1}, world.Cube.Extents())
	assert.Equal(t, mgl64.Vec3{0, -0.01, 0}, world.Cube.Velocity)
	assert.Equal(t, actor.DEFAULT_COLOR, world.Cube.Color)
}

func TestWorld_Step(t *testing.T) {
	world := NewReferenceWorld(DefaultTuning())

	world.Step(Input{})

	assert.InDelta(t, -0.015, world.Cube.Position.Y(), 1e-12)
	assert.Equal(t, mgl64.Vec3{0, -2, 0}, world.Ground.Position)
	assert.Equal(t, uint64(1), world.Simulator.Tick())
}

func TestWorld_AddRemoveBody(t *testing.T) {
	world := NewReferenceWorld(DefaultTuning())
	extra := actor.NewBody(1, 1, 1, "", mgl64.Vec3{}, mgl64.Vec3{})

	world.AddBody(extra)
	assert.True(t, world.Contains(extra))
	assert.Len(t, world.Bodies, 3)

	world.RemoveBody(extra)
	assert.False(t, world.Contains(extra))
	assert.Len(t, world.Bodies, 2)

	// Removing an unknown body is a no-op
	world.RemoveBody(extra)
	assert.Len(t, world.Bodies, 2)
}

func TestWorld_ResetKeepsCubeActive(t *testing.T) {
	world := NewReferenceWorld(DefaultTuning())
	world.Cube.Position = mgl64.Vec3{4, -9.999, 0}
	world.RemoveBody(world.Cube)
	require.False(t, world.Contains(world.Cube))

	world.Step(Input{})

	assert.True(t, world.Contains(world.Cube))
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, world.Cube.Position)

	// A reset never duplicates the cube
	world.Cube.Position = mgl64.Vec3{4, -9.999, 0}
	world.Step(Input{})
	assert.Len(t, world.Bodies, 2)
}

func TestWorld_RunsIndefinitely(t *testing.T) {
	world := NewReferenceWorld(DefaultTuning())

	resets := 0
	world.Simulator.Events.Subscribe(RESET, func(event Event) { resets++ })

	// Keep pushing right: the cube leaves the platform, falls, resets and starts over
	for i := 0; i < 3000; i++ {
		world.Step(Input{Right: true})
	}

	assert.Greater(t, resets, 1)
	assert.Greater(t, world.Cube.Position.Y(), FALL_THRESHOLD)
}

func TestWorld_Embedded(t *testing.T) {
	tests := []struct {
		name     string
		position mgl64.Vec3
		expected bool
	}{
		{"Spawn", mgl64.Vec3{0, 0, 0}, false},
		{"Above the platform", mgl64.Vec3{0, -1, 0}, false},
		{"Inside the platform", mgl64.Vec3{0, -2, 0}, true},
		{"Level with the platform, past its depth", mgl64.Vec3{0, -2, 20}, false},
		{"Level with the platform, past its edge", mgl64.Vec3{4, -2, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := NewReferenceWorld(DefaultTuning())
			world.Cube.Reset(tt.position)

			assert.Equal(t, tt.expected, world.Embedded())
		})
	}
}
