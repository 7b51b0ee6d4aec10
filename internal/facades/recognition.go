package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/autolens/autolens-api/internal/logger"
)

// ErrNoContent is returned when the recognition service answers without any
// candidate text content.
var ErrNoContent = errors.New("recognition response contained no text content")

// recognitionPrompt is the fixed structured-extraction prompt sent with every
// image. The service is asked for one JSON object; the response may still wrap
// it in prose, which the caller handles.
const recognitionPrompt = `Analyze this vehicle image and provide comprehensive details in JSON format:
{
  make: string, // manufacturer name
  model: string, // model name
  year: number | string, // estimated year or year range
  trim: string, // trim level if identifiable
  bodyStyle: string, // sedan, SUV, coupe, etc.
  exteriorColor: string, // exterior color
  condition: {
    overall: string, // excellent, good, fair, poor
    notes: string[] // visible damage or issues
  },
  priceRange: { min: number, max: number },
  fuelEfficiency: { city: number, highway: number } | { range: number, unit: string },
  specifications: {
    engine: string,
    transmission: string,
    drivetrain: string,
    horsepower: number,
    torque: string
  },
  exterior: {
    headlights: string,
    wheels: string,
    grille: string,
    additionalFeatures: string[]
  },
  interior: {
    seating: string,
    dashboard: string,
    features: string[]
  },
  features: string[],
  safetyFeatures: string[]
}`

// recognitionRequest mirrors the generateContent request envelope.
type recognitionRequest struct {
	Contents []recognitionContent `json:"contents"`
}

type recognitionContent struct {
	Parts []recognitionPart `json:"parts"`
}

type recognitionPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// recognitionResponse mirrors the generateContent response envelope down to
// the first candidate's text parts.
type recognitionResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// RecognitionHTTPFacade calls the external multimodal recognition endpoint.
type RecognitionHTTPFacade struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewRecognitionHTTPFacade creates a facade for the given endpoint and API key.
// A nil client falls back to http.DefaultClient.
func NewRecognitionHTTPFacade(client *http.Client, endpoint, apiKey string) *RecognitionHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &RecognitionHTTPFacade{client: client, endpoint: endpoint, apiKey: apiKey}
}

// Recognize sends one request with the extraction prompt and the inline JPEG
// payload, and returns the first candidate's text content.
func (f *RecognitionHTTPFacade) Recognize(ctx context.Context, imageBase64 string) (string, error) {
	reqBody := recognitionRequest{
		Contents: []recognitionContent{{
			Parts: []recognitionPart{
				{Text: recognitionPrompt},
				{InlineData: &inlineData{MimeType: "image/jpeg", Data: imageBase64}},
			},
		}},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", f.endpoint, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("recognition request failed", "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("recognition request returned non-2xx status", "status", resp.StatusCode)
		return "", fmt.Errorf("recognition service returned status %d", resp.StatusCode)
	}

	var envelope recognitionResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		logger.Log.Errorw("failed to decode recognition response", "error", err)
		return "", err
	}

	if len(envelope.Candidates) == 0 ||
		len(envelope.Candidates[0].Content.Parts) == 0 ||
		envelope.Candidates[0].Content.Parts[0].Text == "" {
		logger.Log.Errorw("unexpected recognition response structure")
		return "", ErrNoContent
	}

	return envelope.Candidates[0].Content.Parts[0].Text, nil
}
