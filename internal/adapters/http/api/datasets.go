package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	service "github.com/okian/pitchgen/internal/app"
	"github.com/okian/pitchgen/internal/report"
)

// Response formats for GET /datasets/{name}.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// DatasetsHandler serves generated tables.
type DatasetsHandler struct {
	deps Dependencies
}

// NewDatasetsHandler creates a new datasets handler.
func NewDatasetsHandler(deps Dependencies) *DatasetsHandler {
	return &DatasetsHandler{deps: deps}
}

type listResponse struct {
	Datasets []string `json:"datasets"`
}

// HandleList handles GET /datasets requests.
func (h *DatasetsHandler) HandleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, listResponse{Datasets: h.deps.Names()})
}

type datasetQuery struct {
	seed   int64
	format string
	limit  int // negative means all rows
}

func parseDatasetQuery(r *http.Request, defaultSeed int64) (datasetQuery, error) {
	q := datasetQuery{seed: defaultSeed, format: FormatJSON, limit: -1}
	values := r.URL.Query()

	if raw := values.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, fmt.Errorf("invalid seed %q", raw)
		}
		q.seed = seed
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return q, fmt.Errorf("invalid limit %q", raw)
		}
		q.limit = n
	}
	switch f := values.Get("format"); f {
	case "", FormatJSON:
	case FormatCSV:
		q.format = FormatCSV
	default:
		return q, fmt.Errorf("unsupported format %q", f)
	}
	return q, nil
}

// HandleGet handles GET /datasets/{name}?seed=N&format=json|csv&limit=N requests.
func (h *DatasetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_dataset"
	name := mux.Vars(r)["name"]

	q, err := parseDatasetQuery(r, h.deps.DefaultSeed())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	t, err := h.deps.Dataset(r.Context(), name, q.seed)
	if err != nil {
		if errors.Is(err, service.ErrUnknownDataset) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
		return
	}
	t = t.Head(q.limit)

	w.Header().Set("X-Dataset-Seed", strconv.FormatInt(q.seed, 10))
	if q.format == FormatCSV {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
		w.WriteHeader(http.StatusOK)
		_ = report.WriteCSV(w, t)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
