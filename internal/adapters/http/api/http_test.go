package api_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/pitchgen/internal/adapters/http/api"
	service "github.com/okian/pitchgen/internal/app"
	"github.com/okian/pitchgen/internal/domain/table"
	"github.com/okian/pitchgen/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func newRouter(deps api.Dependencies) http.Handler {
	return api.NewServer(deps, logger.Nop()).Router(context.Background())
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
	return body
}

func TestHTTPRoutes(t *testing.T) {
	Convey("Given the API backed by a small service", t, func() {
		svc := service.New(service.WithEventCount(20), service.WithSessionCount(10))
		router := newRouter(svc)

		Convey("When checking health", func() {
			w := get(router, "/healthz")

			Convey("Then it reports ok", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"status":"ok"`)
				So(w.Header().Get(api.RequestIDHeader), ShouldNotBeEmpty)
			})
		})

		Convey("When a request ID is supplied", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
			req.Header.Set(api.RequestIDHeader, "abc-123")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Convey("Then it is echoed back", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "abc-123")
			})
		})

		Convey("When listing datasets", func() {
			w := get(router, "/datasets")
			var body struct {
				Datasets []string `json:"datasets"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)

			Convey("Then all five names are returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(body.Datasets, ShouldResemble, service.Names())
			})
		})

		Convey("When fetching a dataset as JSON", func() {
			w := get(router, "/datasets/events?seed=3&limit=5")
			var tbl table.Table
			So(json.Unmarshal(w.Body.Bytes(), &tbl), ShouldBeNil)

			Convey("Then the limited table is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("X-Dataset-Seed"), ShouldEqual, "3")
				So(tbl.Name, ShouldEqual, "events")
				So(len(tbl.Rows), ShouldEqual, 5)
				So(tbl.Columns, ShouldContain, "xg")
			})

			Convey("Then the same seed returns the same rows", func() {
				again := get(router, "/datasets/events?seed=3&limit=5")
				So(again.Body.String(), ShouldEqual, w.Body.String())
			})
		})

		Convey("When fetching a dataset without a seed", func() {
			w := get(router, "/datasets/athletes")

			Convey("Then the default seed is used", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("X-Dataset-Seed"), ShouldEqual, "42")
			})
		})

		Convey("When fetching a dataset as CSV", func() {
			w := get(router, "/datasets/sessions?format=csv")
			records, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()

			Convey("Then a header and every row are written", func() {
				So(err, ShouldBeNil)
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "text/csv")
				So(len(records), ShouldEqual, 11)
				So(records[0][0], ShouldEqual, "session_id")
			})
		})

		Convey("When the dataset is unknown", func() {
			w := get(router, "/datasets/injuries")

			Convey("Then 404 not_found is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeError(w)["code"], ShouldEqual, "not_found")
			})
		})

		Convey("When query parameters are invalid", func() {
			for _, target := range []string{
				"/datasets/events?seed=abc",
				"/datasets/events?limit=-1",
				"/datasets/events?limit=x",
				"/datasets/events?format=xml",
			} {
				w := get(router, target)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w)["code"], ShouldEqual, "bad_request")
			}
		})

		Convey("When reading stats after a request", func() {
			_ = get(router, "/datasets/wellness")
			w := get(router, "/stats")
			var stats map[string]any
			So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)

			Convey("Then the cached table is counted", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(stats["cachedTables"], ShouldEqual, 1.0)
			})
		})

		Convey("When scraping metrics after traffic", func() {
			_ = get(router, "/datasets/tracking?limit=1")
			w := get(router, "/metrics")

			Convey("Then the dataset and HTTP families are exposed", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "pitchgen_datasets_generated_total")
				So(w.Body.String(), ShouldContainSubstring, `endpoint="/datasets/{name}"`)
			})
		})

		Convey("When the route does not exist", func() {
			w := get(router, "/leaderboard")

			Convey("Then 404 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeError(w)["code"], ShouldEqual, "not_found")
			})

			Convey("Then the request still gets an ID", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldNotBeEmpty)
			})

			Convey("Then it is counted as an unmatched request", func() {
				body := get(router, "/metrics").Body.String()
				So(body, ShouldContainSubstring, `pitchgen_http_requests_total{endpoint="unmatched",method="GET",status_code="404"}`)
				So(body, ShouldContainSubstring, `error_type="not_found"`)
			})
		})

		Convey("When the method is wrong", func() {
			req := httptest.NewRequest(http.MethodPost, "/datasets", http.NoBody)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Convey("Then 405 is returned with a request ID", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(w.Header().Get(api.RequestIDHeader), ShouldNotBeEmpty)
			})

			Convey("Then it is counted with its status", func() {
				body := get(router, "/metrics").Body.String()
				So(body, ShouldContainSubstring, `method="POST",status_code="405"`)
			})
		})
	})
}

type brokenDeps struct{ panics bool }

func (brokenDeps) GetStats() map[string]interface{} { return nil }
func (brokenDeps) Names() []string                  { return nil }
func (brokenDeps) DefaultSeed() int64               { return 1 }
func (b brokenDeps) Dataset(context.Context, string, int64) (table.Table, error) {
	if b.panics {
		panic("boom")
	}
	return table.Table{}, errors.New("disk full")
}

func TestHTTPFailures(t *testing.T) {
	Convey("Given dependencies that fail", t, func() {
		Convey("When generation returns an unexpected error", func() {
			w := get(newRouter(brokenDeps{}), "/datasets/events")

			Convey("Then 500 internal_error is returned", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(decodeError(w)["code"], ShouldEqual, "internal_error")
			})
		})

		Convey("When a handler panics", func() {
			w := get(newRouter(brokenDeps{panics: true}), "/datasets/events")

			Convey("Then the panic is recovered as 500", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
			})
		})
	})
}

func TestRecoveryAfterHeaders(t *testing.T) {
	Convey("Given a handler that panics after writing its status", t, func() {
		h := api.RecoveryMiddleware(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("partial"))
			panic("late failure")
		}))
		w := get(h, "/datasets/events")

		Convey("Then the written response is left untouched", func() {
			So(w.Code, ShouldEqual, http.StatusAccepted)
			So(w.Body.String(), ShouldEqual, "partial")
		})
	})

	Convey("Given a handler that panics before writing", t, func() {
		h := api.RecoveryMiddleware(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("early failure")
		}))
		w := get(h, "/datasets/events")

		Convey("Then a JSON 500 is written", func() {
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(decodeError(w)["code"], ShouldEqual, "internal_error")
		})
	})
}

func TestErrorKinds(t *testing.T) {
	Convey("Given a wrapped API error", t, func() {
		cause := errors.New("invalid seed")
		err := api.WrapKind("api.get_dataset", api.ErrBadRequest, cause)

		Convey("Then both kind and cause match", func() {
			So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.get_dataset: bad request: invalid seed")
		})

		Convey("Then a bare kind has no cause", func() {
			bare := api.NewKind("api.route", api.ErrNotFound)
			So(errors.Is(bare, api.ErrNotFound), ShouldBeTrue)
			So(bare.Error(), ShouldEqual, "api.route: not found")
		})
	})
}
