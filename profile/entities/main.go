// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/TheBitDrifter/roster"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

type health struct {
	Current, Max int
}

func main() {
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(50, 100000)
	p.Stop()
}

func run(rounds, numEntities int) {
	posComp := roster.FactoryNewComponent[position]()
	velComp := roster.FactoryNewComponent[velocity]()
	healthComp := roster.FactoryNewComponent[health]()

	for i := 0; i < rounds; i++ {
		world := roster.Factory.NewWorld()
		for j := 0; j < numEntities; j++ {
			entity := world.Spawn(
				posComp.With(position{}),
				velComp.With(velocity{X: 1, Y: 1}),
			)
			if j%2 == 0 {
				_ = world.Insert(entity, healthComp.With(health{Current: 10, Max: 10}))
			}
		}
		world.Clear()
	}
}
