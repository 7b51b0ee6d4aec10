package services

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/autolens/autolens-api/internal/facades"
	"github.com/autolens/autolens-api/internal/logger"
	"github.com/autolens/autolens-api/internal/models"
)

// TokenSpender is the ledger operation the identification flow needs.
type TokenSpender interface {
	Spend(ctx context.Context) bool // Decrements the balance if positive
}

// RecognitionClient calls the external recognition service.
type RecognitionClient interface {
	Recognize(ctx context.Context, imageBase64 string) (string, error) // Returns the raw response text
}

// FuelEconomyLookuper performs the best-effort fuel-economy backfill.
type FuelEconomyLookuper interface {
	LookupFuelEconomy(ctx context.Context, year, make, model string) (string, error)
}

// IdentifyService runs the identification flow: token spend, recognition
// call, response normalization, optional fuel-economy backfill.
type IdentifyService struct {
	ledger     TokenSpender
	recognizer RecognitionClient
	fuel       FuelEconomyLookuper
}

// NewIdentifyService creates a new IdentifyService. fuel may be nil to
// disable the backfill lookup.
func NewIdentifyService(ledger TokenSpender, recognizer RecognitionClient, fuel FuelEconomyLookuper) *IdentifyService {
	return &IdentifyService{
		ledger:     ledger,
		recognizer: recognizer,
		fuel:       fuel,
	}
}

// Identify spends one token, sends the image to the recognition service and
// returns the normalized record. The token is spent before the network call
// and is not refunded on downstream failure; that ordering is intentional.
func (s *IdentifyService) Identify(ctx context.Context, image []byte) (models.VehicleRecord, error) {
	if !s.ledger.Spend(ctx) {
		return models.VehicleRecord{}, ErrInsufficientTokens
	}

	imageBase64 := base64.StdEncoding.EncodeToString(image)

	text, err := s.recognizer.Recognize(ctx, imageBase64)
	if err != nil {
		if errors.Is(err, facades.ErrNoContent) {
			return models.VehicleRecord{}, ErrParseFailure
		}
		logger.Log.Errorw("recognition call failed", "error", err)
		return models.VehicleRecord{}, ErrTransportFailure
	}

	raw, ok := ExtractJSONObject(text)
	if !ok {
		logger.Log.Errorw("no JSON object found in recognition response", "text", text)
		return models.VehicleRecord{}, ErrParseFailure
	}

	s.backfillFuelEconomy(ctx, raw)

	return NormalizeVehicleRecord(raw), nil
}

// backfillFuelEconomy fills a missing fuel-efficiency field with one
// best-effort search lookup. Failures here are logged and swallowed; the
// record simply ships without fuel-economy data.
func (s *IdentifyService) backfillFuelEconomy(ctx context.Context, raw map[string]any) {
	if s.fuel == nil || hasFuelEfficiency(raw) {
		return
	}

	year := stringOr(raw["year"], fallbackUnknown)
	vehicleMake := stringOr(raw["make"], fallbackUnknown)
	vehicleModel := stringOr(raw["model"], fallbackUnknown)

	figure, err := s.fuel.LookupFuelEconomy(ctx, year, vehicleMake, vehicleModel)
	if err != nil {
		logger.Log.Warnw("fuel economy backfill failed",
			"year", year, "make", vehicleMake, "model", vehicleModel, "error", err)
		return
	}

	raw["fuelEfficiency"] = figure
}
