package domain

import "time"

// UserType categorizes why a user is in the market.
type UserType string

const (
	UserFirstTimeBuyer UserType = "first_time_buyer"
	UserInvestor       UserType = "investor"
	UserUpgrader       UserType = "upgrader"
	UserDownsizer      UserType = "downsizer"
	UserRenter         UserType = "renter"
)

// ParseUserType normalizes a raw string into a UserType.
func ParseUserType(s string) (UserType, bool) {
	switch UserType(s) {
	case UserFirstTimeBuyer, UserInvestor, UserUpgrader, UserDownsizer, UserRenter:
		return UserType(s), true
	}
	return "", false
}

// UserProfile holds a user's stated preferences for the lifetime of the
// process. Created with defaults on first reference, mutated in place
// by preference updates.
type UserProfile struct {
	UserID             string         `json:"user_id"`
	Name               string         `json:"name"`
	UserType           UserType       `json:"user_type"`
	BudgetMin          int            `json:"budget_min"`
	BudgetMax          int            `json:"budget_max"`
	PreferredSuburbs   []string       `json:"preferred_suburbs"`
	PropertyTypes      []PropertyType `json:"property_types"`
	MustHaveFeatures   []string       `json:"must_have_features"`
	NiceToHaveFeatures []string       `json:"nice_to_have_features"`
	DealBreakers       []string       `json:"deal_breakers"`
	SearchHistory      []string       `json:"search_history"`
	SavedProperties    []string       `json:"saved_properties"`
	LastInteraction    time.Time      `json:"last_interaction"`
}

// WantsType reports whether the profile accepts the given property type.
func (p *UserProfile) WantsType(t PropertyType) bool {
	for _, pt := range p.PropertyTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// PrefersSuburb reports whether the suburb is on the preferred list.
// Comparison is exact, matching how suburbs are stored in the catalog.
func (p *UserProfile) PrefersSuburb(suburb string) bool {
	for _, s := range p.PreferredSuburbs {
		if s == suburb {
			return true
		}
	}
	return false
}
