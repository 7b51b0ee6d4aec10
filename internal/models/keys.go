package models

// Store keys for all persisted application state.
const (
	KeyTokens  = "tokens"         // integer token balance
	KeyHistory = "vehicleHistory" // capped list of history entries, newest first
	KeyGames   = "games"          // list of game records
)
