package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/autolens/autolens-api/internal/logger"
	"github.com/autolens/autolens-api/internal/models"
	"github.com/autolens/autolens-api/internal/storage"
)

// HistoryStore defines the store operations the journal needs.
type HistoryStore interface {
	GetRaw(ctx context.Context, key string) ([]byte, bool) // Reads a serialized value
	Set(ctx context.Context, key string, value any) error  // Writes and broadcasts a value
}

// HistoryService keeps the bounded, most-recent-first identification journal.
type HistoryService struct {
	store HistoryStore
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(store HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Append builds an entry for the record, prepends it to the journal and
// truncates to the most recent entries. Entries are never mutated afterwards.
func (s *HistoryService) Append(ctx context.Context, record models.VehicleRecord, imageDataURL string) (models.HistoryEntry, error) {
	entry := models.HistoryEntry{
		ID:        uuid.NewString(),
		Make:      record.Make,
		Model:     record.Model,
		Year:      record.Year,
		Image:     imageDataURL,
		Details:   record,
		Timestamp: time.Now().UTC(),
	}

	entries := storage.Get(ctx, s.store, models.KeyHistory, []models.HistoryEntry{})
	entries = append([]models.HistoryEntry{entry}, entries...)
	if len(entries) > models.HistoryCap {
		entries = entries[:models.HistoryCap]
	}

	if err := s.store.Set(ctx, models.KeyHistory, entries); err != nil {
		logger.Log.Errorw("failed to persist history entry", "entry_id", entry.ID, "error", err)
		return models.HistoryEntry{}, err
	}

	return entry, nil
}

// List returns entries newest first. A non-empty filter keeps only entries
// whose "make model year" contains it, case-insensitively.
func (s *HistoryService) List(ctx context.Context, filter string) []models.HistoryEntry {
	entries := storage.Get(ctx, s.store, models.KeyHistory, []models.HistoryEntry{})
	if filter == "" {
		return entries
	}

	needle := strings.ToLower(filter)
	filtered := make([]models.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		haystack := strings.ToLower(fmt.Sprintf("%s %s %s", entry.Make, entry.Model, entry.Year))
		if strings.Contains(haystack, needle) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// Get returns the entry with the given id, or ErrNotFound.
func (s *HistoryService) Get(ctx context.Context, id string) (models.HistoryEntry, error) {
	for _, entry := range s.List(ctx, "") {
		if entry.ID == id {
			return entry, nil
		}
	}
	return models.HistoryEntry{}, ErrNotFound
}

// Clear removes every entry from the journal.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.store.Set(ctx, models.KeyHistory, []models.HistoryEntry{})
}
