package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autolens/autolens-api/internal/logger"
	"github.com/autolens/autolens-api/internal/models"
	"github.com/autolens/autolens-api/internal/services"
)

// HistoryLister defines the journal listing the handler needs.
type HistoryLister interface {
	List(ctx context.Context, filter string) []models.HistoryEntry
}

// HistoryGetter defines the journal lookup the handler needs.
type HistoryGetter interface {
	Get(ctx context.Context, id string) (models.HistoryEntry, error)
}

// HistoryClearer defines the journal wipe the handler needs.
type HistoryClearer interface {
	Clear(ctx context.Context) error
}

// HistoryListResponse represents the identification history
// swagger:model HistoryListResponse
type HistoryListResponse struct {
	// Entries, newest first
	Entries []models.HistoryEntry `json:"entries"`
}

// HistoryErrorResponse represents an error response for history operations
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// default: Entry not found
	Error string `json:"error"`
}

// NewHistoryListHandler returns an HTTP handler for listing identification history.
// @Summary List identification history
// @Description Returns past identifications, newest first. An optional q parameter filters by make, model or year.
// @Tags history
// @Produce json
// @Param q query string false "Case-insensitive substring filter"
// @Success 200 {object} handlers.HistoryListResponse "History entries"
// @Router /history [get]
func NewHistoryListHandler(svc HistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := svc.List(r.Context(), r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HistoryListResponse{Entries: entries})
	}
}

// NewHistoryGetHandler returns an HTTP handler for reading a single history entry.
// @Summary Get a history entry
// @Description Returns a single identification by its entry ID.
// @Tags history
// @Produce json
// @Param id path string true "History entry ID"
// @Success 200 {object} models.HistoryEntry "History entry"
// @Failure 404 {object} handlers.HistoryErrorResponse "Entry not found"
// @Router /history/{id} [get]
func NewHistoryGetHandler(svc HistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		entry, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Entry not found"})
				return
			}
			logger.Log.Errorw("failed to read history entry", "entry_id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(entry)
	}
}

// NewHistoryClearHandler returns an HTTP handler for wiping the identification history.
// @Summary Clear identification history
// @Description Removes every entry from the identification history.
// @Tags history
// @Produce json
// @Success 204 "History cleared"
// @Failure 500 {object} handlers.HistoryErrorResponse "Internal server error"
// @Router /history [delete]
func NewHistoryClearHandler(svc HistoryClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context()); err != nil {
			logger.Log.Errorw("failed to clear history", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
