package api

import (
	"bytes"
	"net/http"

	"github.com/wgomg/nucleo/internal/config"
	"github.com/wgomg/nucleo/internal/nucleotide"
	"github.com/wgomg/nucleo/internal/render"
	"github.com/wgomg/nucleo/internal/utils"
	"github.com/wgomg/nucleo/internal/utils/httputils"
)

const logPreviewLength = 60

type Handler struct {
	logger *utils.Logger
	cache  *utils.ResultCache[nucleotide.Analysis]
	cfg    *config.Config
}

func NewHandler(
	logger *utils.Logger,
	cache *utils.ResultCache[nucleotide.Analysis],
	cfg *config.Config,
) *Handler {
	return &Handler{
		logger: logger,
		cache:  cache,
		cfg:    cfg,
	}
}

func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	httputils.LimitBody(w, r, h.cfg.Counter.MaxSequenceBytes)
	if _, err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
		h.logger.Error(&reqID, "Failed to read request body: %v", err)
		httputils.HandleError(w, err)
		return
	}

	var payload CountRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	analysis := h.Analyze(payload.Sequence, reqID)

	if err := httputils.SuccessResponse(w, "Sequence analyzed successfully", analysis); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

// HandlePage serves the form page. GET shows the default sequence, POST the
// submitted one.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	input := h.cfg.Counter.DefaultSequence
	if r.Method == http.MethodPost {
		httputils.LimitBody(w, r, h.cfg.Counter.MaxSequenceBytes)

		value, err := httputils.FormValue(r, "sequence")
		if err != nil {
			h.logger.Error(&reqID, "Form decode error: %v", err)
			httputils.HandleError(w, err)
			return
		}
		input = value
	}

	analysis := h.Analyze(input, reqID)

	var buf bytes.Buffer
	if err := render.Page(&buf, render.NewPageData(input, analysis)); err != nil {
		h.logger.Error(&reqID, "Failed to render page: %v", err)
		httputils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) Analyze(raw string, reqID string) nucleotide.Analysis {
	seq := nucleotide.Normalize(raw)

	analysis, hit := h.cache.GetOrCompute(seq, func() nucleotide.Analysis {
		return nucleotide.Analyze(seq)
	})

	h.logger.Debug(&reqID, "Sequence %s: length=%d, gc=%s, cache_hit=%v, cache_hit_rate=%.2f",
		utils.Truncate(seq, logPreviewLength),
		analysis.Stats.TotalLength,
		analysis.Stats.FormatGC(),
		hit,
		h.cache.HitRate(),
	)
	return analysis
}
