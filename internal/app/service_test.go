package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	repository "github.com/okian/pitchgen/internal/adapters/repository"
	service "github.com/okian/pitchgen/internal/app"
	"github.com/okian/pitchgen/internal/domain/datasets"
	"github.com/okian/pitchgen/internal/domain/table"
	"github.com/okian/pitchgen/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			stats := svc.GetStats()
			So(stats["defaultSeed"], ShouldEqual, datasets.DefaultSeed)
			So(stats["sessionCount"], ShouldEqual, datasets.DefaultSessionCount)
			So(stats["cacheSize"], ShouldEqual, repository.DefaultMaxEntries)
			So(stats["cachedTables"], ShouldEqual, 0)
			So(svc.DefaultSeed(), ShouldEqual, 42)
		})

		Convey("Then every dataset is listed in report order", func() {
			So(svc.Names(), ShouldResemble, []string{"athletes", "sessions", "tracking", "events", "wellness"})
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithSeed(7),
			service.WithSessionCount(10),
			service.WithEventCount(20),
			service.WithTracking(5, 25),
			service.WithWellnessDays(2),
			service.WithCacheSize(1),
		)

		Convey("Then stats reflect them", func() {
			stats := svc.GetStats()
			So(stats["defaultSeed"], ShouldEqual, 7)
			So(stats["eventCount"], ShouldEqual, 20)
			So(stats["trackingHz"], ShouldEqual, 25.0)
		})

		Convey("Then the tracking title follows the rate", func() {
			title, err := svc.Title(service.Tracking)
			So(err, ShouldBeNil)
			So(title, ShouldEqual, "TRACKING (25Hz)")
		})
	})
}

func TestService_Dataset(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with small tables", t, func() {
		svc := service.New(
			service.WithSessionCount(12),
			service.WithEventCount(30),
			service.WithTracking(10, 10),
			service.WithWellnessDays(3),
		)

		Convey("When every dataset is requested", func() {
			shapes := map[string][2]int{
				service.Athletes: {15, 17},
				service.Sessions: {12, 16},
				service.Tracking: {40, 10},
				service.Events:   {30, 15},
				service.Wellness: {15, 9},
			}

			Convey("Then each table has the configured shape", func() {
				for name, shape := range shapes {
					tbl, err := svc.Dataset(ctx, name, 42)
					So(err, ShouldBeNil)
					So(tbl.Name, ShouldEqual, name)
					So(tbl.NumRows(), ShouldEqual, shape[0])
					So(tbl.NumCols(), ShouldEqual, shape[1])
				}
			})
		})

		Convey("When the same dataset is requested twice", func() {
			first, err := svc.Dataset(ctx, service.Events, 5)
			So(err, ShouldBeNil)
			second, err := svc.Dataset(ctx, service.Events, 5)
			So(err, ShouldBeNil)

			Convey("Then the cached table is identical and stored once", func() {
				So(second, ShouldResemble, first)
				So(svc.GetStats()["cachedTables"], ShouldEqual, 1)
			})
		})

		Convey("When different seeds are requested", func() {
			a, _ := svc.Dataset(ctx, service.Sessions, 1)
			b, _ := svc.Dataset(ctx, service.Sessions, 2)

			Convey("Then the tables differ", func() {
				So(a.Rows, ShouldNotResemble, b.Rows)
			})
		})

		Convey("When an unknown dataset is requested", func() {
			_, err := svc.Dataset(ctx, "injuries", 1)

			Convey("Then ErrUnknownDataset is returned", func() {
				So(errors.Is(err, service.ErrUnknownDataset), ShouldBeTrue)
				_, err = svc.Title("injuries")
				So(errors.Is(err, service.ErrUnknownDataset), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service with a logger and a one-entry cache", t, func() {
		var buf bytes.Buffer
		So(logger.InitWithWriter(&buf), ShouldBeNil)
		svc := service.New(service.WithLogger(logger.Get()), service.WithCacheSize(1))

		_, _ = svc.Dataset(ctx, service.Wellness, 1)
		_, _ = svc.Dataset(ctx, service.Wellness, 2)

		Convey("Then generation is logged and the cache stays bounded", func() {
			So(buf.String(), ShouldContainSubstring, "dataset generated")
			So(buf.String(), ShouldContainSubstring, "dataset=wellness")
			So(svc.GetStats()["cachedTables"], ShouldEqual, 1)
		})
	})

	Convey("Given a store that fails reads", t, func() {
		svc := service.New(service.WithStore(failingStore{}))

		Convey("When a dataset is requested", func() {
			_, err := svc.Dataset(ctx, service.Athletes, 1)

			Convey("Then the store error is returned", func() {
				So(errors.Is(err, errStoreDown), ShouldBeTrue)
			})
		})
	})
}

var errStoreDown = errors.New("store down")

type failingStore struct{}

func (failingStore) Get(context.Context, repository.Key) (table.Table, error) {
	return table.Table{}, errStoreDown
}

func (failingStore) Put(context.Context, repository.Key, table.Table) error { return errStoreDown }

func (failingStore) Len(context.Context) int { return 0 }
