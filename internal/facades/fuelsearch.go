package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/autolens/autolens-api/internal/logger"
)

// ErrFuelEconomyNotFound is returned when the search response contains no
// recognizable fuel-economy figure.
var ErrFuelEconomyNotFound = errors.New("no fuel economy figure found in search response")

// Fuel-economy figures are scraped from free text, so there is no schema to
// rely on; three unit conventions are tried in order.
var (
	mpgPattern    = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*MPG`)
	kmLPattern    = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*km/L`)
	l100kmPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*L/100km`)
)

// FuelSearchHTTPFacade performs a best-effort fuel-economy lookup against a
// general web search endpoint.
type FuelSearchHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewFuelSearchHTTPFacade creates a facade for the given search endpoint.
// A nil client falls back to http.DefaultClient.
func NewFuelSearchHTTPFacade(client *http.Client, baseURL string) *FuelSearchHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &FuelSearchHTTPFacade{client: client, baseURL: baseURL}
}

// LookupFuelEconomy searches for "<year> <make> <model> fuel efficiency" and
// extracts the first MPG, km/L, or L/100km figure from the raw response text.
// Returns a display-formatted string such as "28 MPG".
func (f *FuelSearchHTTPFacade) LookupFuelEconomy(ctx context.Context, year, make, model string) (string, error) {
	query := fmt.Sprintf("%s %s %s fuel efficiency", year, make, model)
	searchURL := fmt.Sprintf("%s?q=%s", f.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("fuel economy search failed", "query", query, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("search endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	for _, candidate := range []struct {
		pattern *regexp.Regexp
		unit    string
	}{
		{mpgPattern, "MPG"},
		{kmLPattern, "km/L"},
		{l100kmPattern, "L/100km"},
	} {
		if m := candidate.pattern.FindSubmatch(body); m != nil {
			value, err := strconv.ParseFloat(string(m[1]), 64)
			if err != nil {
				continue
			}
			return fmt.Sprintf("%s %s", strconv.FormatFloat(value, 'f', -1, 64), candidate.unit), nil
		}
	}

	return "", ErrFuelEconomyNotFound
}
