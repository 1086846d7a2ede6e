package report_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/okian/pitchgen/internal/domain/datasets"
	"github.com/okian/pitchgen/internal/domain/table"
	"github.com/okian/pitchgen/internal/report"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/text/language"
)

func TestWrite(t *testing.T) {
	Convey("Given the tracking table", t, func() {
		tbl := table.From("tracking", datasets.Tracking())
		var buf bytes.Buffer

		Convey("When writing the default report", func() {
			err := report.Write(&buf, "TRACKING (10Hz)", tbl)
			So(err, ShouldBeNil)
			out := buf.String()

			Convey("Then the banner and grouped counts are present", func() {
				So(out, ShouldContainSubstring, "TRACKING (10Hz)")
				So(out, ShouldContainSubstring, "Rows: 1,200 | Columns: 10")
			})

			Convey("Then only the first eight columns are listed", func() {
				So(out, ShouldContainSubstring, "Columns: frame, time_s, athlete_id, team, x, y, speed_ms, accel_ms2...")
			})

			Convey("Then three preview rows follow the header", func() {
				lines := strings.Split(strings.TrimSpace(out), "\n")
				So(lines[len(lines)-4], ShouldStartWith, "frame")
				So(lines[len(lines)-1], ShouldStartWith, "2 ")
			})
		})

		Convey("When writing with a custom preview", func() {
			err := report.Write(&buf, "TRACKING", tbl, report.WithPreviewRows(1), report.WithMaxColumns(20), report.WithLanguage(language.German))
			So(err, ShouldBeNil)
			out := buf.String()

			Convey("Then counts follow the locale and every column is listed", func() {
				So(out, ShouldContainSubstring, "Rows: 1.200")
				So(out, ShouldContainSubstring, "period, match_id\n")
			})
		})
	})
}

func TestWriteCSV(t *testing.T) {
	Convey("Given the wellness table", t, func() {
		tbl := table.From("wellness", datasets.Wellness())
		var buf bytes.Buffer

		Convey("When writing CSV", func() {
			So(report.WriteCSV(&buf, tbl), ShouldBeNil)

			Convey("Then it parses back to header plus rows", func() {
				records, err := csv.NewReader(&buf).ReadAll()
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, tbl.NumRows()+1)
				So(records[0], ShouldResemble, tbl.Columns)
				So(records[1], ShouldResemble, tbl.Rows[0])
			})
		})
	})
}
