package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/autolens/autolens-api/internal/models"
)

// Fallbacks substituted for missing or malformed fields during normalization.
const (
	fallbackUnknown      = "Unknown"
	fallbackNotAvailable = "Not available"
	fallbackNoFuelData   = "Fuel efficiency data not available"
)

// ExtractJSONObject locates the first balanced {...} span in text that parses
// as a JSON object. The recognition service tends to wrap its JSON in prose.
func ExtractJSONObject(text string) (map[string]any, bool) {
	for start := 0; start < len(text); start++ {
		if text[start] != '{' {
			continue
		}

		end, ok := findBalancedEnd(text, start)
		if !ok {
			continue
		}

		var parsed map[string]any
		if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err == nil {
			return parsed, true
		}
	}
	return nil, false
}

// findBalancedEnd walks text from the opening brace at start and returns the
// index of the matching closing brace, skipping string literals and escapes.
func findBalancedEnd(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// NormalizeVehicleRecord reshapes a loosely-typed recognition payload into a
// VehicleRecord. Every field gets a defined fallback; the result is never
// partially undefined.
func NormalizeVehicleRecord(raw map[string]any) models.VehicleRecord {
	return models.VehicleRecord{
		Make:           stringOr(raw["make"], fallbackUnknown),
		Model:          stringOr(raw["model"], fallbackUnknown),
		Year:           stringOr(raw["year"], fallbackUnknown),
		Trim:           stringOr(raw["trim"], fallbackUnknown),
		BodyStyle:      stringOr(raw["bodyStyle"], fallbackUnknown),
		ExteriorColor:  stringOr(raw["exteriorColor"], fallbackUnknown),
		Condition:      normalizeCondition(raw["condition"]),
		PriceRange:     formatPriceRange(raw["priceRange"]),
		FuelEfficiency: formatFuelEfficiency(raw["fuelEfficiency"]),
		Specifications: stringMap(raw["specifications"]),
		Exterior:       normalizeExterior(raw["exterior"]),
		Interior:       normalizeInterior(raw["interior"]),
		SafetyFeatures: stringList(raw["safetyFeatures"]),
		Features:       stringList(raw["features"]),
	}
}

func normalizeCondition(v any) models.VehicleCondition {
	m, _ := v.(map[string]any)
	return models.VehicleCondition{
		Overall: stringOr(m["overall"], fallbackUnknown),
		Notes:   stringList(m["notes"]),
	}
}

func normalizeExterior(v any) models.ExteriorDetails {
	m, _ := v.(map[string]any)
	details := models.ExteriorDetails{
		Details:  make(map[string]string),
		Features: stringList(m["additionalFeatures"]),
	}
	for key, val := range m {
		if key == "additionalFeatures" {
			continue
		}
		if s := scalarString(val); s != "" {
			details.Details[key] = s
		}
	}
	return details
}

func normalizeInterior(v any) models.InteriorDetails {
	m, _ := v.(map[string]any)
	details := models.InteriorDetails{
		Details:  make(map[string]string),
		Features: stringList(m["features"]),
	}
	for key, val := range m {
		if key == "features" {
			continue
		}
		if s := scalarString(val); s != "" {
			details.Details[key] = s
		}
	}
	return details
}

// formatPriceRange coerces a {min, max} object into a display string such as
// "$24,000 - $28,500". A non-empty string passes through; anything else
// becomes the fallback.
func formatPriceRange(v any) string {
	switch val := v.(type) {
	case map[string]any:
		min := numberOrZero(val["min"])
		max := numberOrZero(val["max"])
		return fmt.Sprintf("$%s - $%s", formatThousands(min), formatThousands(max))
	case string:
		if val != "" {
			return val
		}
	}
	return fallbackNotAvailable
}

// formatFuelEfficiency coerces a {range, unit} or {city, highway} object into
// a display string. A non-empty string passes through.
func formatFuelEfficiency(v any) string {
	switch val := v.(type) {
	case map[string]any:
		if r := numberOrZero(val["range"]); r != 0 {
			return fmt.Sprintf("%s %s", formatNumber(r), stringOr(val["unit"], "MPG"))
		}
		city := numberOrZero(val["city"])
		highway := numberOrZero(val["highway"])
		if city != 0 && highway != 0 {
			return fmt.Sprintf("%s city / %s highway MPG", formatNumber(city), formatNumber(highway))
		}
		return fallbackNoFuelData
	case string:
		if val != "" {
			return val
		}
	}
	return fallbackNotAvailable
}

// hasFuelEfficiency reports whether the raw payload already carries a usable
// fuel-efficiency value, mirroring the backfill precondition: a string
// counts, an object counts only with a non-zero city or range figure.
func hasFuelEfficiency(raw map[string]any) bool {
	switch val := raw["fuelEfficiency"].(type) {
	case string:
		return val != ""
	case map[string]any:
		return numberOrZero(val["city"]) != 0 || numberOrZero(val["range"]) != 0
	}
	return false
}

// stringOr renders scalar v as a string, substituting fallback for nil,
// empty, or non-scalar values. Numbers lose any trailing ".0".
func stringOr(v any, fallback string) string {
	if s := scalarString(v); s != "" {
		return s
	}
	return fallback
}

// scalarString renders a scalar JSON value as a string, or "" for anything
// that is not a scalar.
func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return formatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	}
	return ""
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := scalarString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringMap(v any) map[string]string {
	m, ok := v.(map[string]any)
	out := make(map[string]string)
	if !ok {
		return out
	}
	for key, val := range m {
		if s := scalarString(val); s != "" {
			out[key] = s
		}
	}
	return out
}

func numberOrZero(v any) float64 {
	f, _ := v.(float64)
	return f
}

// formatNumber renders a float without a trailing fractional zero: 28 not 28.0.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatThousands renders a number with comma-grouped digits: 24000 -> 24,000.
func formatThousands(f float64) string {
	s := formatNumber(f)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
