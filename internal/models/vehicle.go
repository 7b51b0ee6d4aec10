package models

// VehicleCondition is the overall condition rating plus free-text notes
// about visible damage or issues.
// swagger:model VehicleCondition
type VehicleCondition struct {
	// Overall rating: excellent, good, fair, poor
	// example: good
	Overall string `json:"overall"`

	// Visible damage or issues
	Notes []string `json:"notes"`
}

// ExteriorDetails holds exterior attributes (headlights, wheels, grille, ...)
// plus additional feature strings.
// swagger:model ExteriorDetails
type ExteriorDetails struct {
	Details  map[string]string `json:"details"`
	Features []string          `json:"features"`
}

// InteriorDetails holds interior attributes (seating, dashboard, ...)
// plus feature strings.
// swagger:model InteriorDetails
type InteriorDetails struct {
	Details  map[string]string `json:"details"`
	Features []string          `json:"features"`
}

// VehicleRecord is the normalized result of one identification.
// Every field has a defined fallback; a record is never partially undefined.
// swagger:model VehicleRecord
type VehicleRecord struct {
	// Manufacturer name
	// example: Toyota
	Make string `json:"make"`

	// Model name
	// example: Camry
	Model string `json:"model"`

	// Estimated year or year range
	// example: 2020
	Year string `json:"year"`

	// Trim level if identifiable
	Trim string `json:"trim"`

	// sedan, SUV, coupe, etc.
	BodyStyle string `json:"bodyStyle"`

	// Exterior color
	ExteriorColor string `json:"exteriorColor"`

	Condition VehicleCondition `json:"condition"`

	// Display-formatted price range
	// example: $24,000 - $28,500
	PriceRange string `json:"priceRange"`

	// Display-formatted fuel efficiency
	// example: 28 city / 39 highway MPG
	FuelEfficiency string `json:"fuelEfficiency"`

	// Engine, transmission, drivetrain, horsepower, torque, ...
	Specifications map[string]string `json:"specifications"`

	Exterior ExteriorDetails `json:"exterior"`
	Interior InteriorDetails `json:"interior"`

	SafetyFeatures []string `json:"safetyFeatures"`
	Features       []string `json:"features"`
}
