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

// GameCreator defines the game creation the handler needs.
type GameCreator interface {
	Create(ctx context.Context, params services.CreateGameParams) (models.GameRecord, error)
}

// GameLister defines the game listing the handler needs.
type GameLister interface {
	List(ctx context.Context) []models.GameRecord
}

// GameGetter defines the game lookup the handler needs.
type GameGetter interface {
	Get(ctx context.Context, id string) (models.GameRecord, error)
}

// CreateGameRequest represents the JSON body for creating a game
// swagger:model CreateGameRequest
type CreateGameRequest struct {
	// Template the game is based on
	TemplateID string `json:"template_id"`

	// Game title
	// required: true
	// default: Friday Night Quiz
	Title string `json:"title"`

	// Game description
	Description string `json:"description"`

	// Cover image URL
	// required: true
	Image string `json:"image"`

	// Entry fee in tokens
	// default: 10
	EntryFee float64 `json:"entry_fee"`

	// Template-specific settings
	Config map[string]any `json:"config"`
}

// GameListResponse represents the stored games
// swagger:model GameListResponse
type GameListResponse struct {
	// Games, newest first
	Games []models.GameRecord `json:"games"`
}

// GameErrorResponse represents an error response for game operations
// swagger:model GameErrorResponse
type GameErrorResponse struct {
	// Error message
	// default: Invalid game parameters
	Error string `json:"error"`
}

// NewGameCreateHandler returns an HTTP handler for creating a game from a template.
// @Summary Create a game
// @Description Creates a game session from a template. The prize pool is derived from the entry fee and the game stays open for 24 hours.
// @Tags games
// @Accept json
// @Produce json
// @Param request body handlers.CreateGameRequest true "Game parameters"
// @Success 201 {object} models.GameRecord "Game created"
// @Failure 400 {object} handlers.GameErrorResponse "Invalid game parameters"
// @Router /games [post]
func NewGameCreateHandler(svc GameCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode game request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GameErrorResponse{Error: "Invalid request body"})
			return
		}

		game, err := svc.Create(ctx, services.CreateGameParams{
			TemplateID:  req.TemplateID,
			Title:       req.Title,
			Description: req.Description,
			Image:       req.Image,
			EntryFee:    req.EntryFee,
			Config:      req.Config,
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				logger.Log.Warnw("rejected game parameters", "title", req.Title)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GameErrorResponse{Error: "Invalid game parameters"})
				return
			}
			logger.Log.Errorw("failed to create game", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GameErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(game)
	}
}

// NewGameListHandler returns an HTTP handler for listing games.
// @Summary List games
// @Description Returns all stored games, newest first.
// @Tags games
// @Produce json
// @Success 200 {object} handlers.GameListResponse "Stored games"
// @Router /games [get]
func NewGameListHandler(svc GameLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games := svc.List(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GameListResponse{Games: games})
	}
}

// NewGameGetHandler returns an HTTP handler for reading a single game.
// @Summary Get a game
// @Description Returns a single game by its ID.
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.GameRecord "Game"
// @Failure 404 {object} handlers.GameErrorResponse "Game not found"
// @Router /games/{id} [get]
func NewGameGetHandler(svc GameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		game, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GameErrorResponse{Error: "Game not found"})
				return
			}
			logger.Log.Errorw("failed to read game", "game_id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GameErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(game)
	}
}
