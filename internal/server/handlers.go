// Package server exposes the extraction pipeline over a small HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/parcelworks/labelextract/internal/common"
	"github.com/parcelworks/labelextract/internal/pipeline"
)

type Handler struct {
	orch *pipeline.Orchestrator
	log  *slog.Logger
}

func New(orch *pipeline.Orchestrator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{orch: orch, log: logger}
}

type extractRequest struct {
	Text string `json:"text"`
}

// HandleExtract runs one raw scan text through the pipeline.
//
//	POST /api/extract  {"text": "..."}  ->  {"recipient_name": "...", "recipient_address": "..."}
//
// Backend connectivity failures map to 502/504; everything else always
// yields a record, empty fields included.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	res, err := h.orch.Run(r.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrTimeout):
			http.Error(w, "model backend timeout", http.StatusGatewayTimeout)
		case errors.Is(err, common.ErrBackendUnavailable):
			http.Error(w, "model backend unavailable", http.StatusBadGateway)
		default:
			h.log.Error("server.extract.failed", "error", err)
			http.Error(w, "extraction failed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res.Record); err != nil {
		h.log.Error("server.extract.encode_error", "error", err)
	}
}
