package models

import "time"

// HistoryEntry pairs a VehicleRecord with its source image and metadata.
// Entries are never mutated after creation; the journal keeps at most
// HistoryCap of them, newest first.
// swagger:model HistoryEntry
type HistoryEntry struct {
	// Unique entry ID
	ID string `json:"id"`

	// Flattened record summary for list views
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  string `json:"year"`

	// Inline base64-encoded source image (data URL)
	Image string `json:"image"`

	// Full identification result
	Details VehicleRecord `json:"details"`

	Timestamp time.Time `json:"timestamp"`
}

// HistoryCap is the maximum number of journal entries retained.
const HistoryCap = 10
