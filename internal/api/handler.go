package api

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/hfwleague/fantasy-soccer-backends/internal/pipeline"
)

const maxUploadBytes = 32 << 20

type handler struct {
	scorer *pipeline.Scorer
	log    *zap.Logger
}

// DocumentError reports one failed document in a batch without aborting
// the rest.
type DocumentError struct {
	Document string `json:"document"`
	Error    string `json:"error"`
}

// ScoreResponse is the combined result across every uploaded document.
type ScoreResponse struct {
	Rows   []pipeline.ScoreRow `json:"rows"`
	Errors []DocumentError     `json:"errors,omitempty"`
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// scoreReports accepts one or more saved report documents as multipart
// files under "reports" and returns the combined, score-descending table.
// Failures are isolated per document.
func (h *handler) scoreReports(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form upload")
		return
	}
	files := r.MultipartForm.File["reports"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, `no files uploaded under field "reports"`)
		return
	}

	var resp ScoreResponse
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			resp.Errors = append(resp.Errors, DocumentError{fh.Filename, err.Error()})
			continue
		}
		body, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			resp.Errors = append(resp.Errors, DocumentError{fh.Filename, err.Error()})
			continue
		}

		rows, err := h.scorer.ScoreMatch(string(body))
		if err != nil {
			h.log.Warn("document rejected",
				zap.String("document", fh.Filename), zap.Error(err))
			resp.Errors = append(resp.Errors, DocumentError{fh.Filename, err.Error()})
			continue
		}
		resp.Rows = append(resp.Rows, rows...)
	}

	if len(resp.Rows) == 0 && len(resp.Errors) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	pipeline.SortRows(resp.Rows)

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="scores.csv"`)
		if err := pipeline.WriteCSV(w, resp.Rows); err != nil {
			h.log.Error("write csv response", zap.Error(err))
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
