package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	dedupe "github.com/okian/touchline/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryTracker(t *testing.T) {
	ctx := context.Background()

	Convey("Given a new memory tracker", t, func() {
		tr := dedupe.NewMemoryTracker()
		So(tr.Size(), ShouldEqual, 0)

		Convey("When a report ID is recorded for the first time", func() {
			seen := tr.Record(ctx, "report-1")

			Convey("Then it should not be reported as seen", func() {
				So(seen, ShouldBeFalse)
				So(tr.Size(), ShouldEqual, 1)
			})

			Convey("And recording it again should report it as seen", func() {
				So(tr.Record(ctx, "report-1"), ShouldBeTrue)
				So(tr.Size(), ShouldEqual, 1)
			})
		})

		Convey("When a recorded report ID is forgotten", func() {
			tr.Record(ctx, "report-1")
			tr.Record(ctx, "report-2")
			tr.Forget(ctx, "report-1")
			tr.Forget(ctx, "missing")

			Convey("Then it can be recorded again", func() {
				So(tr.Size(), ShouldEqual, 1)
				So(tr.Record(ctx, "report-1"), ShouldBeFalse)
				So(tr.Record(ctx, "report-2"), ShouldBeTrue)
			})
		})
	})

	Convey("Given a tracker bounded to three IDs", t, func() {
		tr := dedupe.NewMemoryTracker(dedupe.WithCapacity(3))
		for _, id := range []string{"r1", "r2", "r3"} {
			So(tr.Record(ctx, id), ShouldBeFalse)
		}

		Convey("When a fourth ID is recorded", func() {
			So(tr.Record(ctx, "r4"), ShouldBeFalse)

			Convey("Then the oldest ID should have been evicted", func() {
				So(tr.Size(), ShouldEqual, 3)
				So(tr.Record(ctx, "r4"), ShouldBeTrue)
				So(tr.Record(ctx, "r3"), ShouldBeTrue)
				So(tr.Record(ctx, "r1"), ShouldBeFalse)
				So(tr.Size(), ShouldEqual, 3)
			})
		})

		Convey("When an ID is forgotten before eviction", func() {
			tr.Forget(ctx, "r2")
			tr.Record(ctx, "r4")

			Convey("Then the freed slot should be used without evicting", func() {
				So(tr.Size(), ShouldEqual, 3)
				So(tr.Record(ctx, "r1"), ShouldBeTrue)
			})
		})
	})

	Convey("Given an unbounded tracker", t, func() {
		tr := dedupe.NewMemoryTracker(dedupe.WithCapacity(0))

		Convey("When many IDs are recorded", func() {
			for i := 0; i < 1000; i++ {
				tr.Record(ctx, fmt.Sprintf("report-%d", i))
			}

			Convey("Then none should be evicted", func() {
				So(tr.Size(), ShouldEqual, 1000)
				So(tr.Record(ctx, "report-0"), ShouldBeTrue)
			})
		})
	})
}

func TestMemoryTrackerConcurrency(t *testing.T) {
	Convey("Given a tracker shared by several goroutines", t, func() {
		tr := dedupe.NewMemoryTracker()
		const workers, perWorker = 10, 100

		Convey("When every goroutine records the same IDs", func() {
			var wg sync.WaitGroup
			var mu sync.Mutex
			fresh := 0
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < perWorker; j++ {
						if !tr.Record(context.Background(), fmt.Sprintf("report-%d", j)) {
							mu.Lock()
							fresh++
							mu.Unlock()
						}
					}
				}()
			}
			wg.Wait()

			Convey("Then each ID should be fresh exactly once", func() {
				So(fresh, ShouldEqual, perWorker)
				So(tr.Size(), ShouldEqual, perWorker)
			})
		})
	})
}
