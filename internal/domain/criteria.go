package domain

// Criteria is the ephemeral filter extracted from a single user
// message. Every field is independently optional; nil means "do not
// filter on this dimension".
type Criteria struct {
	Budget       *int          `json:"budget,omitempty"`
	Bedrooms     *int          `json:"bedrooms,omitempty"`
	PropertyType *PropertyType `json:"property_type,omitempty"`
	Location     *string       `json:"location,omitempty"`
}

// IsEmpty reports whether no criteria were extracted at all.
func (c Criteria) IsEmpty() bool {
	return c.Budget == nil && c.Bedrooms == nil && c.PropertyType == nil && c.Location == nil
}
