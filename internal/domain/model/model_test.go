package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/okian/pitchgen/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEnumLabels(t *testing.T) {
	Convey("Given the closed enumerations", t, func() {
		Convey("Then known values render their labels", func() {
			So(model.Goalkeeper.String(), ShouldEqual, "Goalkeeper")
			So(model.Recovery.String(), ShouldEqual, "Recovery")
			So(model.Clearance.String(), ShouldEqual, "Clearance")
			So(model.OffTarget.String(), ShouldEqual, "Off target")
			So(model.Head.String(), ShouldEqual, "Head")
		})

		Convey("Then unknown values do not panic", func() {
			So(model.Position(99).String(), ShouldEqual, "Unknown(99)")
			So(model.EventType(0).String(), ShouldEqual, "Unknown(0)")
		})

		Convey("Then shot outcomes are distinguished from play outcomes", func() {
			So(model.Goal.IsShotOutcome(), ShouldBeTrue)
			So(model.Blocked.IsShotOutcome(), ShouldBeTrue)
			So(model.Successful.IsShotOutcome(), ShouldBeFalse)
			So(model.Failed.IsShotOutcome(), ShouldBeFalse)
		})

		Convey("Then labels are used when marshaling to JSON", func() {
			b, err := json.Marshal(map[string]any{"type": model.Match})
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"type":"Match"}`)
		})
	})
}

func TestRecordValues(t *testing.T) {
	Convey("Given one record of each kind", t, func() {
		day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
		records := []interface {
			Columns() []string
			Values() []string
		}{
			model.Athlete{ID: "ATL_001", ContractUntil: day},
			model.Session{ID: "SES_0001", Date: day},
			model.TrackingSample{Frame: 1},
			model.Event{ID: "EVT_00001"},
			model.WellnessEntry{Date: day},
		}

		Convey("Then every row matches its schema width", func() {
			for _, r := range records {
				So(len(r.Values()), ShouldEqual, len(r.Columns()))
			}
		})

		Convey("Then dates use the calendar layout", func() {
			So(model.Session{Date: day}.Values()[2], ShouldEqual, "2024-01-03")
		})
	})
}

func TestEventShotDetail(t *testing.T) {
	Convey("Given a shot and a pass", t, func() {
		shot := model.Event{Type: model.Shot, Shot: &model.ShotDetail{XG: 0.125}}
		pass := model.Event{Type: model.Pass}

		Convey("Then only the shot carries an xG value", func() {
			xg, ok := shot.XG()
			So(ok, ShouldBeTrue)
			So(xg, ShouldEqual, 0.125)

			_, ok = pass.XG()
			So(ok, ShouldBeFalse)
		})

		Convey("Then the flattened xg cell is empty for the pass", func() {
			So(shot.Values()[12], ShouldEqual, "0.125")
			So(pass.Values()[12], ShouldEqual, "")
		})

		Convey("Then the clock converts to seconds", func() {
			So(model.Event{Minute: 2, Second: 5}.ClockSeconds(), ShouldEqual, 125)
		})
	})
}
