package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jiningying/property-chat-agent/internal/domain"
)

// Compiled regex patterns for criteria extraction
var (
	// Matches shorthand budgets like "800k", "1.2m", "$950K". The k
	// suffix multiplies by a thousand, m by a million.
	budgetSuffixPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([km])\b`)

	// Matches spelled-out budgets ending in three zeros, e.g. "850000".
	// Anchoring on the trailing zeros keeps small counts ("3 bedroom")
	// from being read as money.
	budgetLiteralPattern = regexp.MustCompile(`(\d+000)\b`)

	// Matches bedroom counts like "3 bed", "2 bedrooms"
	bedroomPattern = regexp.MustCompile(`(\d+)\s*(bed|bedroom|bedrooms)\b`)
)

// knownLocations is the shortlist of cities recognized in free text.
var knownLocations = []string{"melbourne", "sydney", "brisbane", "perth", "adelaide"}

// propertyTypeAliases maps message keywords to property types, in
// priority order: the first alias found wins.
var propertyTypeAliases = []struct {
	keyword string
	ptype   domain.PropertyType
}{
	{"apartment", domain.TypeApartment},
	{"unit", domain.TypeApartment},
	{"house", domain.TypeHouse},
	{"home", domain.TypeHouse},
	{"townhouse", domain.TypeTownhouse},
}

// CriteriaExtractor turns a raw chat message into structured search
// criteria. Extraction never fails: absent matches simply leave the
// corresponding field unset.
type CriteriaExtractor struct{}

// NewCriteriaExtractor creates a new criteria extractor.
func NewCriteriaExtractor() *CriteriaExtractor {
	return &CriteriaExtractor{}
}

// Extract parses budget, bedroom count, property type and location
// hints out of a message. Pure function, no side effects.
func (e *CriteriaExtractor) Extract(message string) domain.Criteria {
	var criteria domain.Criteria
	lower := strings.ToLower(message)

	if budget, ok := extractBudget(lower); ok {
		criteria.Budget = &budget
	}

	if m := bedroomPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			criteria.Bedrooms = &n
		}
	}

	for _, alias := range propertyTypeAliases {
		if strings.Contains(lower, alias.keyword) {
			pt := alias.ptype
			criteria.PropertyType = &pt
			break
		}
	}

	for _, loc := range knownLocations {
		if strings.Contains(lower, loc) {
			l := loc
			criteria.Location = &l
			break
		}
	}

	return criteria
}

// extractBudget parses the first budget-looking token from the lowered
// message. Accepted grammar: "<number>k" (x1,000), "<number>m"
// (x1,000,000, decimals allowed for both), or a bare integer ending in
// "000" taken at face value. Anything else is not a budget.
func extractBudget(lower string) (int, bool) {
	if m := budgetSuffixPattern.FindStringSubmatch(lower); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		multiplier := 1_000.0
		if m[2] == "m" {
			multiplier = 1_000_000.0
		}
		return int(value * multiplier), true
	}

	if m := budgetLiteralPattern.FindStringSubmatch(lower); m != nil {
		value, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return value, true
	}

	return 0, false
}
