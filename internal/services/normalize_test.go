package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   map[string]any
		wantOK bool
	}{
		{
			name:   "bare object",
			text:   `{"make":"Toyota"}`,
			want:   map[string]any{"make": "Toyota"},
			wantOK: true,
		},
		{
			name:   "object wrapped in prose",
			text:   "Sure! Here it is:\n```json\n{\"make\":\"Toyota\"}\n```\nAnything else?",
			want:   map[string]any{"make": "Toyota"},
			wantOK: true,
		},
		{
			name:   "nested braces",
			text:   `result: {"condition":{"overall":"good"}}`,
			want:   map[string]any{"condition": map[string]any{"overall": "good"}},
			wantOK: true,
		},
		{
			name:   "braces inside string values",
			text:   `{"notes":"shaped like {this}","make":"VW"}`,
			want:   map[string]any{"notes": "shaped like {this}", "make": "VW"},
			wantOK: true,
		},
		{
			name:   "skips unparsable span and finds the next",
			text:   `{not json} but then {"make":"Ford"}`,
			want:   map[string]any{"make": "Ford"},
			wantOK: true,
		},
		{
			name:   "no braces at all",
			text:   "I cannot identify this vehicle.",
			wantOK: false,
		},
		{
			name:   "unbalanced brace",
			text:   `{"make":"Toyota"`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeVehicleRecord_EmptyPayload(t *testing.T) {
	record := NormalizeVehicleRecord(map[string]any{})

	assert.Equal(t, "Unknown", record.Make)
	assert.Equal(t, "Unknown", record.Model)
	assert.Equal(t, "Unknown", record.Year)
	assert.Equal(t, "Unknown", record.Trim)
	assert.Equal(t, "Unknown", record.BodyStyle)
	assert.Equal(t, "Unknown", record.ExteriorColor)
	assert.Equal(t, "Unknown", record.Condition.Overall)
	assert.Equal(t, []string{}, record.Condition.Notes)
	assert.Equal(t, "Not available", record.PriceRange)
	assert.Equal(t, "Not available", record.FuelEfficiency)
	assert.Equal(t, map[string]string{}, record.Specifications)
	assert.Equal(t, map[string]string{}, record.Exterior.Details)
	assert.Equal(t, []string{}, record.Exterior.Features)
	assert.Equal(t, map[string]string{}, record.Interior.Details)
	assert.Equal(t, []string{}, record.Interior.Features)
	assert.Equal(t, []string{}, record.SafetyFeatures)
	assert.Equal(t, []string{}, record.Features)
}

func TestNormalizeVehicleRecord_FullPayload(t *testing.T) {
	raw := map[string]any{
		"make":          "Toyota",
		"model":         "Camry",
		"year":          float64(2020),
		"trim":          "XSE",
		"bodyStyle":     "sedan",
		"exteriorColor": "white",
		"condition": map[string]any{
			"overall": "good",
			"notes":   []any{"scratch on rear bumper"},
		},
		"priceRange":     map[string]any{"min": float64(24000), "max": float64(28500)},
		"fuelEfficiency": map[string]any{"city": float64(28), "highway": float64(39)},
		"specifications": map[string]any{
			"engine":     "2.5L I4",
			"horsepower": float64(203),
		},
		"exterior": map[string]any{
			"headlights":         "LED",
			"wheels":             "19 inch alloy",
			"additionalFeatures": []any{"sunroof"},
		},
		"interior": map[string]any{
			"seating":  "leather",
			"features": []any{"heated seats"},
		},
		"safetyFeatures": []any{"lane assist", "blind spot monitor"},
		"features":       []any{"adaptive cruise control"},
	}

	record := NormalizeVehicleRecord(raw)

	assert.Equal(t, "Toyota", record.Make)
	assert.Equal(t, "2020", record.Year)
	assert.Equal(t, "good", record.Condition.Overall)
	assert.Equal(t, []string{"scratch on rear bumper"}, record.Condition.Notes)
	assert.Equal(t, "$24,000 - $28,500", record.PriceRange)
	assert.Equal(t, "28 city / 39 highway MPG", record.FuelEfficiency)
	assert.Equal(t, map[string]string{"engine": "2.5L I4", "horsepower": "203"}, record.Specifications)
	assert.Equal(t, map[string]string{"headlights": "LED", "wheels": "19 inch alloy"}, record.Exterior.Details)
	assert.Equal(t, []string{"sunroof"}, record.Exterior.Features)
	assert.Equal(t, map[string]string{"seating": "leather"}, record.Interior.Details)
	assert.Equal(t, []string{"heated seats"}, record.Interior.Features)
	assert.Equal(t, []string{"lane assist", "blind spot monitor"}, record.SafetyFeatures)
	assert.Equal(t, []string{"adaptive cruise control"}, record.Features)
}

func TestFormatPriceRange(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"min and max", map[string]any{"min": float64(9500), "max": float64(1250000)}, "$9,500 - $1,250,000"},
		{"missing max defaults to zero", map[string]any{"min": float64(9500)}, "$9,500 - $0"},
		{"string passes through", "around $10k", "around $10k"},
		{"empty string", "", "Not available"},
		{"absent", nil, "Not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPriceRange(tt.in))
		})
	}
}

func TestFormatFuelEfficiency(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"range and unit", map[string]any{"range": float64(28), "unit": "MPG"}, "28 MPG"},
		{"range without unit defaults to MPG", map[string]any{"range": float64(28)}, "28 MPG"},
		{"city and highway", map[string]any{"city": float64(24), "highway": float64(31)}, "24 city / 31 highway MPG"},
		{"empty object", map[string]any{}, "Fuel efficiency data not available"},
		{"string passes through", "28 MPG", "28 MPG"},
		{"absent", nil, "Not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFuelEfficiency(tt.in))
		})
	}
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1,000", formatThousands(1000))
	assert.Equal(t, "24,000", formatThousands(24000))
	assert.Equal(t, "1,234,567", formatThousands(1234567))
	assert.Equal(t, "12,500.5", formatThousands(12500.5))
	assert.Equal(t, "-24,000", formatThousands(-24000))
}
