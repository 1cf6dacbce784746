package domain

// PropertyType classifies a listing. Free strings from user input are
// normalized through ParsePropertyType so typos never enter the model.
type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeApartment  PropertyType = "apartment"
	TypeTownhouse  PropertyType = "townhouse"
	TypeLand       PropertyType = "land"
	TypeCommercial PropertyType = "commercial"
)

// ParsePropertyType normalizes a raw string into a PropertyType.
// Returns false if the value is not a known type.
func ParsePropertyType(s string) (PropertyType, bool) {
	switch PropertyType(s) {
	case TypeHouse, TypeApartment, TypeTownhouse, TypeLand, TypeCommercial:
		return PropertyType(s), true
	}
	return "", false
}

// Property is a single listing in the catalog. Listings are seeded once
// at startup and never mutated.
type Property struct {
	ID           string       `json:"id"`
	Address      string       `json:"address"`
	Price        int          `json:"price"`
	Type         PropertyType `json:"property_type"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	CarSpaces    int          `json:"car_spaces"`
	LandSize     *float64     `json:"land_size,omitempty"`
	Features     []string     `json:"features"`
	Suburb       string       `json:"suburb"`
	State        string       `json:"state"`
	Postcode     string       `json:"postcode"`
	Description  string       `json:"description,omitempty"`
	AgentContact string       `json:"agent_contact,omitempty"`
	SizeSqm      int          `json:"size,omitempty"`
	YearBuilt    int          `json:"year_built,omitempty"`
}

// MatchResult pairs a property with its personalized score in [0, 1].
type MatchResult struct {
	Property Property `json:"property"`
	Score    float64  `json:"match_score"`
}

// ScoreBreakdown is the structured explanation for a single property's
// score, one sentence per scoring axis.
type ScoreBreakdown struct {
	PropertyID        string   `json:"propertyId"`
	Address           string   `json:"address"`
	Budget            string   `json:"budget"`
	Type              string   `json:"type"`
	Location          string   `json:"location"`
	Features          string   `json:"features"`
	MustHaveMatches   []string `json:"mustHaveMatches,omitempty"`
	NiceToHaveMatches []string `json:"niceToHaveMatches,omitempty"`
	Highlights        string   `json:"highlights"`
	OverallScore      float64  `json:"overallScore"`
}
