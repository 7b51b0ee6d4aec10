package models

import "time"

// GameRecord is a user-defined play session built from a game template.
// Plain CRUD record; expiry is derived from creation time plus a fixed
// 24 hour duration.
// swagger:model GameRecord
type GameRecord struct {
	ID          string `json:"id"`
	TemplateID  string `json:"templateId"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Inline game image (data URL)
	Image string `json:"image"`

	// example: ongoing
	Status string `json:"status"`

	EntryCount int     `json:"entryCount"`
	EntryFee   float64 `json:"entryFee"`
	PrizePool  float64 `json:"prizePool"`

	// Template-specific settings (time limit, difficulty, ...)
	Config map[string]any `json:"config"`

	CreatedAt time.Time `json:"createdAt"`
	EndTime   time.Time `json:"endTime"`
}
