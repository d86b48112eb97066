package qport

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSimulator(t *testing.T) {
	Convey("Given a simulator", t, func() {
		sim := NewSimulator()

		Convey("When creating a run", func() {
			id, tel, err := sim.NewRun(complex(0.6, 0), complex(0.8, 0))

			Convey("Then it is registered under its ID", func() {
				So(err, ShouldBeNil)
				So(tel, ShouldNotBeNil)
				So(sim.ActiveRuns(), ShouldEqual, 1)

				found, ok := sim.Run(id)
				So(ok, ShouldBeTrue)
				So(found, ShouldEqual, tel)
			})

			Convey("Then removing it empties the registry", func() {
				So(sim.Remove(id), ShouldBeTrue)
				So(sim.ActiveRuns(), ShouldEqual, 0)
				So(sim.Remove(id), ShouldBeFalse)
			})
		})

		Convey("When creating a run with degenerate amplitudes", func() {
			_, _, err := sim.NewRun(0, 0)

			Convey("Then nothing is registered", func() {
				So(err, ShouldNotBeNil)
				So(sim.ActiveRuns(), ShouldEqual, 0)
			})
		})

		Convey("When driving several runs concurrently", func() {
			const runs = 16

			var wg sync.WaitGroup
			faithful := make([]bool, runs)
			for i := 0; i < runs; i++ {
				_, tel, err := sim.NewRun(
					complex(0.6, 0), complex(0, 0.8),
					WithSeed(int64(i)),
				)
				So(err, ShouldBeNil)

				wg.Add(1)
				go func(i int, tel *Teleporter) {
					defer wg.Done()
					if result, err := tel.Run(); err == nil {
						faithful[i] = result.Faithful
					}
				}(i, tel)
			}
			wg.Wait()

			Convey("Then every independent run teleports faithfully", func() {
				So(sim.ActiveRuns(), ShouldEqual, runs)
				for i := 0; i < runs; i++ {
					So(faithful[i], ShouldBeTrue)
				}
			})
		})
	})
}
