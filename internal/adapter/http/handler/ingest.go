package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
)

type IngestService interface {
	IngestSample(ctx context.Context) (models.IngestResult, error)
	IngestFromSource(ctx context.Context, url string) (models.IngestResult, error)
}

type Ingest struct {
	s IngestService
	l logger.Logger
}

func NewIngest(s IngestService, l logger.Logger) *Ingest {
	return &Ingest{
		s: s,
		l: l,
	}
}

type ingestRequest struct {
	SourceURL string `json:"source_url"`
}

// IngestData godoc
// @Summary      Ingest taxi trip data
// @Description  Replaces the current dataset. Without a body the synthetic sample dataset is generated; with {"source_url": "..."} the records are fetched from that URL.
// @Tags         Ingest
// @Accept       json
// @Produce      json
// @Param        request  body  ingestRequest  false  "optional external source"
// @Success      200  {object}  models.IngestResult
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/ingest [post]
func (h *Ingest) IngestData(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "ingest_data")

	var req ingestRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := readJSON(w, r, &req); err != nil {
			// io.EOF means an empty body, which is fine here
			if !errors.Is(err, io.EOF) {
				badRequestResponse(w, err.Error())
				return
			}
		}
	}

	var (
		result models.IngestResult
		err    error
	)
	if req.SourceURL != "" {
		result, err = h.s.IngestFromSource(ctx, req.SourceURL)
	} else {
		result, err = h.s.IngestSample(ctx)
	}

	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "data ingestion failed", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message":      "Data ingestion completed",
		"trips_loaded": result.TripsLoaded,
		"batch_id":     result.BatchID,
		"source":       result.Source,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
