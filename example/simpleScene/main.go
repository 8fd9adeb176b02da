package main

import (
	"fmt"

	"github.com/akmonengine/cubefall"
)

// SetupScene creates the reference scene and prints every event it emits
func SetupScene() *cubefall.World {
	world := cubefall.NewReferenceWorld(cubefall.DefaultTuning())

	world.Simulator.Events.SubscribeAll(func(event cubefall.Event) {
		switch e := event.(type) {
		case cubefall.BounceEvent:
			fmt.Printf("   bounce: impact=%.5f rebound=%.5f\n", e.ImpactVelocity, e.ReboundVelocity)
		case cubefall.FellOffEdgeEvent:
			fmt.Printf("   cube fell off the edge at %v\n", e.Body.Position)
		case cubefall.ResetEvent:
			fmt.Printf("   reset from %v\n", e.LastPosition)
		default:
			fmt.Printf("   %v\n", event.Type())
		}
	})

	return world
}

// input holds right for a while so that the cube drops off the platform
func input(step int) cubefall.Input {
	return cubefall.Input{Right: step >= 120 && step < 200}
}

func main() {
	world := SetupScene()
	cube, ground := world.Cube, world.Ground

	fmt.Printf("Ground: position %v, top %.3f\n", ground.Position, ground.Bounds.Top)
	fmt.Printf("Cube: position %v, velocity %v\n", cube.Position, cube.Velocity)
	fmt.Println()

	const maxSteps = 400
	for step := 0; step < maxSteps; step++ {
		world.Step(input(step))

		fmt.Printf("%4d %-13v x=%7.3f y=%8.4f vy=%8.5f\n",
			step+1, world.Simulator.Phase(), cube.Position.X(), cube.Position.Y(), cube.Velocity.Y())
	}
}
