package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/autolens/autolens-api/internal/logger"
	"github.com/autolens/autolens-api/internal/models"
	"github.com/autolens/autolens-api/internal/storage"
)

// gameDuration is how long a created game stays open.
const gameDuration = 24 * time.Hour

// prizePoolShare is the fraction of the entry fee that feeds the prize pool.
const prizePoolShare = 0.9

// GameStore defines the store operations game CRUD needs.
type GameStore interface {
	GetRaw(ctx context.Context, key string) ([]byte, bool) // Reads a serialized value
	Set(ctx context.Context, key string, value any) error  // Writes and broadcasts a value
}

// CreateGameParams is the input for creating a game from a template.
type CreateGameParams struct {
	TemplateID  string
	Title       string
	Description string
	Image       string
	EntryFee    float64
	Config      map[string]any
}

// GameService manages user-defined play sessions. Plain CRUD over the store;
// the only derived value is the expiry at creation time plus a fixed duration.
type GameService struct {
	store GameStore
}

// NewGameService creates a new GameService.
func NewGameService(store GameStore) *GameService {
	return &GameService{store: store}
}

// Create validates the params, builds a game record and prepends it to the
// stored list.
func (s *GameService) Create(ctx context.Context, params CreateGameParams) (models.GameRecord, error) {
	if strings.TrimSpace(params.Title) == "" || params.Image == "" {
		return models.GameRecord{}, ErrInvalidInput
	}
	if params.EntryFee < 0 {
		return models.GameRecord{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	game := models.GameRecord{
		ID:          uuid.NewString(),
		TemplateID:  params.TemplateID,
		Title:       params.Title,
		Description: params.Description,
		Image:       params.Image,
		Status:      "ongoing",
		EntryFee:    params.EntryFee,
		PrizePool:   params.EntryFee * prizePoolShare,
		Config:      params.Config,
		CreatedAt:   now,
		EndTime:     now.Add(gameDuration),
	}

	games := storage.Get(ctx, s.store, models.KeyGames, []models.GameRecord{})
	games = append([]models.GameRecord{game}, games...)

	if err := s.store.Set(ctx, models.KeyGames, games); err != nil {
		logger.Log.Errorw("failed to persist game", "game_id", game.ID, "error", err)
		return models.GameRecord{}, err
	}

	return game, nil
}

// List returns all games, newest first.
func (s *GameService) List(ctx context.Context) []models.GameRecord {
	return storage.Get(ctx, s.store, models.KeyGames, []models.GameRecord{})
}

// Get returns the game with the given id, or ErrNotFound.
func (s *GameService) Get(ctx context.Context, id string) (models.GameRecord, error) {
	for _, game := range s.List(ctx) {
		if game.ID == id {
			return game, nil
		}
	}
	return models.GameRecord{}, ErrNotFound
}
