package usecase

import (
	"strings"

	"github.com/jiningying/property-chat-agent/internal/domain"
)

// Criteria-relaxation constants for the fallback pass
const (
	relaxedBudgetFactor = 1.2 // accept listings up to 20% over the stated budget
	filterMaxResults    = 5
)

// similarTypes maps a requested property type to acceptable
// alternatives when the strict pass comes back empty.
var similarTypes = map[domain.PropertyType][]domain.PropertyType{
	domain.TypeApartment: {domain.TypeApartment},
	domain.TypeHouse:     {domain.TypeHouse, domain.TypeTownhouse},
	domain.TypeTownhouse: {domain.TypeTownhouse, domain.TypeHouse},
}

// CriteriaFilter applies hard per-message criteria to the catalog.
// This is a separate policy from the profile-driven match engine: the
// engine scores softly against a threshold, the filter cuts hard on
// whatever the message asked for and widens only when nothing is left.
type CriteriaFilter struct{}

// NewCriteriaFilter creates a criteria filter.
func NewCriteriaFilter() *CriteriaFilter {
	return &CriteriaFilter{}
}

// Apply returns the listings matching every set criteria field. When
// the strict pass eliminates everything and at least one criterion was
// set, a relaxed pass runs instead: budget stretched 20%, one fewer
// bedroom allowed, and similar property types accepted.
func (f *CriteriaFilter) Apply(catalog []domain.Property, criteria domain.Criteria) []domain.Property {
	filtered := strictPass(catalog, criteria)

	if len(filtered) == 0 && !criteria.IsEmpty() {
		filtered = relaxedPass(catalog, criteria)
	}

	if len(filtered) > filterMaxResults {
		filtered = filtered[:filterMaxResults]
	}
	return filtered
}

func strictPass(catalog []domain.Property, criteria domain.Criteria) []domain.Property {
	var out []domain.Property
	for _, p := range catalog {
		if criteria.Budget != nil && p.Price > *criteria.Budget {
			continue
		}
		if criteria.Bedrooms != nil && p.Bedrooms != *criteria.Bedrooms {
			continue
		}
		if criteria.PropertyType != nil && p.Type != *criteria.PropertyType {
			continue
		}
		if criteria.Location != nil && !matchesLocation(&p, *criteria.Location) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func relaxedPass(catalog []domain.Property, criteria domain.Criteria) []domain.Property {
	var out []domain.Property
	for _, p := range catalog {
		if criteria.Budget != nil && float64(p.Price) > float64(*criteria.Budget)*relaxedBudgetFactor {
			continue
		}
		if criteria.Bedrooms != nil && p.Bedrooms < *criteria.Bedrooms-1 {
			continue
		}
		if criteria.PropertyType != nil && !typeIsSimilar(p.Type, *criteria.PropertyType) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func typeIsSimilar(have, want domain.PropertyType) bool {
	accepted, ok := similarTypes[want]
	if !ok {
		return have == want
	}
	for _, t := range accepted {
		if t == have {
			return true
		}
	}
	return false
}

// matchesLocation checks the location token against suburb and state,
// case-insensitive substring on both sides.
func matchesLocation(p *domain.Property, location string) bool {
	loc := strings.ToLower(location)
	return strings.Contains(strings.ToLower(p.Suburb), loc) ||
		strings.Contains(strings.ToLower(p.State), loc)
}
