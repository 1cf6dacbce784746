package catalog

import "github.com/jiningying/property-chat-agent/internal/domain"

// Catalog is the fixed, in-memory list of listings. Seeded once at
// startup and read-only afterwards, so no locking is needed.
type Catalog struct {
	properties []domain.Property
	byID       map[string]int
}

// New builds a catalog from the given listings.
func New(properties []domain.Property) *Catalog {
	byID := make(map[string]int, len(properties))
	for i, p := range properties {
		byID[p.ID] = i
	}
	return &Catalog{properties: properties, byID: byID}
}

// NewSeeded builds the catalog from the built-in demo listings.
func NewSeeded() *Catalog {
	return New(seedProperties())
}

// All returns the listings in catalog order. The slice is a copy so
// callers cannot mutate the seed data.
func (c *Catalog) All() []domain.Property {
	out := make([]domain.Property, len(c.properties))
	copy(out, c.properties)
	return out
}

// ByID looks up a single listing.
func (c *Catalog) ByID(id string) (*domain.Property, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	p := c.properties[i]
	return &p, true
}

// Len returns the number of listings.
func (c *Catalog) Len() int {
	return len(c.properties)
}

func floatPtr(f float64) *float64 { return &f }

// seedProperties returns the demo listings.
func seedProperties() []domain.Property {
	return []domain.Property{
		{
			ID:           "prop_001",
			Address:      "123 Collins Street, Melbourne VIC 3000",
			Price:        1200000,
			Type:         domain.TypeApartment,
			Bedrooms:     2,
			Bathrooms:    2,
			CarSpaces:    1,
			Features:     []string{"City views", "Balcony", "Gym", "Pool", "Concierge"},
			Suburb:       "Melbourne",
			State:        "VIC",
			Postcode:     "3000",
			Description:  "Stunning modern apartment in the heart of Melbourne CBD with panoramic city views and premium amenities.",
			AgentContact: "Sarah Johnson - 0400 123 456",
			SizeSqm:      85,
			YearBuilt:    2018,
		},
		{
			ID:           "prop_002",
			Address:      "45 Oak Avenue, Richmond VIC 3121",
			Price:        850000,
			Type:         domain.TypeTownhouse,
			Bedrooms:     3,
			Bathrooms:    2,
			CarSpaces:    2,
			LandSize:     floatPtr(300),
			Features:     []string{"Modern kitchen", "Garden", "Study nook", "Ducted heating", "Double garage"},
			Suburb:       "Richmond",
			State:        "VIC",
			Postcode:     "3121",
			Description:  "Charming Victorian townhouse with modern renovations, perfect for families seeking character and convenience.",
			AgentContact: "Mike Chen - 0400 789 012",
			SizeSqm:      120,
			YearBuilt:    1895,
		},
		{
			ID:           "prop_003",
			Address:      "78 Beach Road, Bondi NSW 2026",
			Price:        2100000,
			Type:         domain.TypeHouse,
			Bedrooms:     4,
			Bathrooms:    3,
			CarSpaces:    2,
			LandSize:     floatPtr(600),
			Features:     []string{"Ocean views", "Pool", "Large backyard", "Renovated kitchen", "Solar panels"},
			Suburb:       "Bondi",
			State:        "NSW",
			Postcode:     "2026",
			Description:  "Luxury beachfront home with stunning ocean views, perfect for entertaining and coastal living.",
			AgentContact: "Emma Wilson - 0400 345 678",
			SizeSqm:      250,
			YearBuilt:    2015,
		},
		{
			ID:           "prop_004",
			Address:      "12 Park Lane, South Yarra VIC 3141",
			Price:        650000,
			Type:         domain.TypeApartment,
			Bedrooms:     1,
			Bathrooms:    1,
			CarSpaces:    1,
			Features:     []string{"Park views", "Balcony", "Gym", "Pool", "Concierge"},
			Suburb:       "South Yarra",
			State:        "VIC",
			Postcode:     "3141",
			Description:  "Contemporary one-bedroom apartment with park views, ideal for professionals or investors.",
			AgentContact: "David Smith - 0400 456 789",
			SizeSqm:      65,
			YearBuilt:    2020,
		},
		{
			ID:           "prop_005",
			Address:      "89 Queen Street, Brisbane QLD 4000",
			Price:        750000,
			Type:         domain.TypeApartment,
			Bedrooms:     2,
			Bathrooms:    2,
			CarSpaces:    1,
			Features:     []string{"City views", "Balcony", "Air conditioning", "Secure parking"},
			Suburb:       "Brisbane",
			State:        "QLD",
			Postcode:     "4000",
			Description:  "Modern apartment in Brisbane CBD with stunning city views and premium finishes.",
			AgentContact: "Lisa Chen - 0400 567 890",
			SizeSqm:      75,
			YearBuilt:    2019,
		},
	}
}
