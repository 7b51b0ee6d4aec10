package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/autolens/autolens-api/internal/logger"
	"github.com/autolens/autolens-api/internal/models"
	"github.com/autolens/autolens-api/internal/services"
)

// maxUploadSize caps the accepted image upload at 10 MB.
const maxUploadSize = 10 << 20

// IdentifyRunner defines the identification flow the handler needs.
type IdentifyRunner interface {
	Identify(ctx context.Context, image []byte) (models.VehicleRecord, error)
}

// IdentifyJournal defines the history operation the handler needs.
type IdentifyJournal interface {
	Append(ctx context.Context, record models.VehicleRecord, imageDataURL string) (models.HistoryEntry, error)
}

// IdentifyBalancer defines the ledger read the handler needs.
type IdentifyBalancer interface {
	Balance(ctx context.Context) int64
}

// IdentifyResponse represents a successful identification response
// swagger:model IdentifyResponse
type IdentifyResponse struct {
	// Normalized vehicle details
	Vehicle models.VehicleRecord `json:"vehicle"`

	// ID of the history entry created for this identification
	HistoryID string `json:"history_id,omitempty"`

	// Remaining token balance after the identification
	Balance int64 `json:"balance"`
}

// IdentifyErrorResponse represents an error response for identification
// swagger:model IdentifyErrorResponse
type IdentifyErrorResponse struct {
	// Error message
	// default: Insufficient tokens
	Error string `json:"error"`
}

// NewIdentifyHandler returns an HTTP handler for identifying a vehicle from an uploaded photo.
// @Summary Identify a vehicle
// @Description Accepts a multipart image upload, spends one token and returns the normalized vehicle details. The result is recorded in the identification history.
// @Tags identify
// @Accept mpfd
// @Produce json
// @Param image formData file true "Vehicle photo (JPEG or PNG, max 10MB)"
// @Success 200 {object} handlers.IdentifyResponse "Vehicle identified"
// @Failure 400 {object} handlers.IdentifyErrorResponse "Missing or invalid image"
// @Failure 402 {object} handlers.IdentifyErrorResponse "Insufficient tokens"
// @Failure 422 {object} handlers.IdentifyErrorResponse "Unparseable recognition response"
// @Failure 502 {object} handlers.IdentifyErrorResponse "Recognition service unavailable"
// @Router /identify [post]
func NewIdentifyHandler(
	svc IdentifyRunner,
	journal IdentifyJournal,
	ledger IdentifyBalancer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			logger.Log.Errorw("failed to parse multipart form", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(IdentifyErrorResponse{Error: "Invalid upload"})
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			logger.Log.Errorw("missing image field", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(IdentifyErrorResponse{Error: "Image file is required"})
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			logger.Log.Warnw("rejected non-image upload", "content_type", contentType)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(IdentifyErrorResponse{Error: "Only image uploads are accepted"})
			return
		}

		image, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read image upload", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(IdentifyErrorResponse{Error: "Invalid upload"})
			return
		}

		record, err := svc.Identify(ctx, image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientTokens):
				logger.Log.Warnw("identification rejected, no tokens left")
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(IdentifyErrorResponse{Error: "Insufficient tokens"})
			case errors.Is(err, services.ErrTransportFailure):
				logger.Log.Errorw("recognition request failed", "error", err)
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(IdentifyErrorResponse{Error: "Recognition service unavailable"})
			case errors.Is(err, services.ErrParseFailure):
				logger.Log.Errorw("recognition response unusable", "error", err)
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(IdentifyErrorResponse{Error: "Could not identify a vehicle in the image"})
			default:
				logger.Log.Errorw("identification failed", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(IdentifyErrorResponse{Error: "Internal server error"})
			}
			return
		}

		imageDataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image)

		// The identification already succeeded and the token is spent, so a
		// journal failure must not fail the request.
		historyID := ""
		entry, err := journal.Append(ctx, record, imageDataURL)
		if err != nil {
			logger.Log.Errorw("failed to record identification in history", "error", err)
		} else {
			historyID = entry.ID
		}

		resp := IdentifyResponse{
			Vehicle:   record,
			HistoryID: historyID,
			Balance:   ledger.Balance(ctx),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
