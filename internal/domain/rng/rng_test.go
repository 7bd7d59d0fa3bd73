package rng_test

import (
	"testing"

	"github.com/okian/touchline/internal/domain/rng"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeeded(t *testing.T) {
	Convey("Given two sources with the same seed", t, func() {
		a := rng.NewSeeded(7)
		b := rng.NewSeeded(7)

		Convey("Then they should replay the same stream", func() {
			for i := 0; i < 100; i++ {
				So(a.IntRange(0, 1000), ShouldEqual, b.IntRange(0, 1000))
				So(a.Gaussian(0, 10), ShouldEqual, b.Gaussian(0, 10))
			}
		})
	})

	Convey("Given a seeded source", t, func() {
		src := rng.NewSeeded(42)

		Convey("When drawing integers in a range", func() {
			Convey("Then every draw should be inside the inclusive bounds", func() {
				for i := 0; i < 500; i++ {
					v := src.IntRange(2, 5)
					So(v, ShouldBeBetweenOrEqual, 2, 5)
				}
			})

			Convey("And reversed bounds should behave the same", func() {
				for i := 0; i < 100; i++ {
					So(src.IntRange(5, 2), ShouldBeBetweenOrEqual, 2, 5)
				}
			})
		})

		Convey("When asking for certain and impossible chances", func() {
			Convey("Then they should be deterministic", func() {
				So(src.Chance(1), ShouldBeTrue)
				So(src.Chance(0), ShouldBeFalse)
			})
		})
	})
}

func TestHelpers(t *testing.T) {
	Convey("Given a seeded source", t, func() {
		src := rng.NewSeeded(3)

		Convey("When sampling from a slice", func() {
			items := []int{1, 2, 3, 4, 5, 6}
			out := rng.Sample(src, items, 4)

			Convey("Then it should return distinct elements without touching the input", func() {
				So(len(out), ShouldEqual, 4)
				seen := map[int]bool{}
				for _, v := range out {
					So(seen[v], ShouldBeFalse)
					seen[v] = true
				}
				So(items, ShouldResemble, []int{1, 2, 3, 4, 5, 6})
			})

			Convey("And asking for more than available should return everything", func() {
				So(len(rng.Sample(src, items, 10)), ShouldEqual, 6)
			})
		})

		Convey("When a weighted pick has a single positive weight", func() {
			items := []rng.Weighted[string]{{Value: "a", Weight: 0}, {Value: "b", Weight: 3}, {Value: "c", Weight: -1}}

			Convey("Then it should always pick that element", func() {
				for i := 0; i < 50; i++ {
					So(rng.WeightedPick(src, items), ShouldEqual, "b")
				}
			})
		})

		Convey("When drawing ids", func() {
			a := rng.NewID(rng.NewSeeded(11))
			b := rng.NewID(rng.NewSeeded(11))

			Convey("Then the same seed should produce the same id", func() {
				So(a, ShouldEqual, b)
				So(len(a), ShouldEqual, 36)
			})
		})
	})
}
