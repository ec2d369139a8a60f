// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type frozen struct{}

func main() {
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(1000, 100000)
	p.Stop()
}

func run(iters, numEntities int) {
	posComp := roster.FactoryNewComponent[position]()
	velComp := roster.FactoryNewComponent[velocity]()
	frozenComp := roster.FactoryNewComponent[frozen]()

	world := roster.Factory.NewWorld()
	for j := 0; j < numEntities; j++ {
		if j%10 == 0 {
			world.Spawn(posComp.With(position{}), velComp.With(velocity{X: 1, Y: 1}), frozenComp.With(frozen{}))
			continue
		}
		world.Spawn(posComp.With(position{}), velComp.With(velocity{X: 1, Y: 1}))
	}

	query := roster.Factory.NewQuery(posComp, velComp).Without(frozenComp)
	for i := 0; i < iters; i++ {
		cursor := world.Find(query)
		for cursor.Next() {
			pos := posComp.GetFromCursor(cursor)
			vel := velComp.GetFromCursor(cursor)
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}
