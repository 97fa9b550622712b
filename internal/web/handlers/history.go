package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yourhome24/expose/internal/history"
	"github.com/yourhome24/expose/internal/store"
)

// HistoryHandler handles the history listing, export and delete endpoints.
type HistoryHandler struct {
	store store.Store
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(st store.Store) *HistoryHandler {
	return &HistoryHandler{store: st}
}

type historyResponse struct {
	Data []store.Record `json:"data"`
}

// List returns the most recent records, newest first. Optional query
// parameters narrow the fetched window: city and property_type filter
// exactly, q searches case-insensitively across text and payload fields.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecent(r.Context(), store.ListLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	query := r.URL.Query()
	records = history.FilterBy(records, query.Get("city"), query.Get("property_type"))
	records = history.Search(records, query.Get("q"))

	if records == nil {
		records = []store.Record{}
	}
	respondJSON(w, http.StatusOK, historyResponse{Data: records})
}

// ExportCSV streams the recent history as a CSV download. Errors are plain
// text here; the consumer is a browser download, not the SPA.
func (h *HistoryHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecent(r.Context(), store.ExportLimit)
	if err != nil {
		http.Error(w, "Error: failed to load history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", history.CSVFilename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(history.ExportCSV(records)))
}

// Delete removes exactly one record. Unlike the insert on the write path,
// failures here are surfaced: the caller awaits a definite outcome to decide
// whether to roll back its optimistic removal.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing id")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// DBTest probes store connectivity.
func (h *HistoryHandler) DBTest(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
