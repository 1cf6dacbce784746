package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jiningying/property-chat-agent/internal/domain"
)

// Axis weights for the personalized score. They sum to 1.0, so the
// weighted sum is already normalized.
const (
	weightBudget   = 0.40
	weightType     = 0.20
	weightSuburb   = 0.15
	weightFeatures = 0.25

	// Under-budget listings keep most of the budget weight
	underBudgetFactor = 0.8

	// Must-have features count for 70% of the feature axis,
	// nice-to-haves for the remaining 30%
	mustHaveShare   = 0.7
	niceToHaveShare = 0.3
)

// MatchConfig holds configuration for the match engine.
type MatchConfig struct {
	ScoreThreshold float64
	MaxResults     int
}

// MatchEngine scores catalog listings against a user profile and
// produces explainable recommendations.
type MatchEngine struct {
	scoreThreshold float64
	maxResults     int
}

// NewMatchEngine creates a match engine with the given configuration.
func NewMatchEngine(config MatchConfig) *MatchEngine {
	threshold := config.ScoreThreshold
	if threshold <= 0 {
		threshold = 0.6
	}

	maxResults := config.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	return &MatchEngine{
		scoreThreshold: threshold,
		maxResults:     maxResults,
	}
}

// Score computes the personalized score for a single property in
// [0, 1]. Four independent axes: budget fit, type match, suburb match
// and feature overlap.
func (e *MatchEngine) Score(p *domain.Property, profile *domain.UserProfile) float64 {
	var score, maxScore float64

	// Budget axis: full weight inside the range, most of it below,
	// linear decay above until the overage reaches the max budget.
	switch {
	case profile.BudgetMin <= p.Price && p.Price <= profile.BudgetMax:
		score += weightBudget
	case p.Price < profile.BudgetMin:
		score += weightBudget * underBudgetFactor
	case profile.BudgetMax > 0:
		overage := float64(p.Price-profile.BudgetMax) / float64(profile.BudgetMax)
		if overage < 1 {
			score += weightBudget * (1 - overage)
		}
	}
	maxScore += weightBudget

	if profile.WantsType(p.Type) {
		score += weightType
	}
	maxScore += weightType

	if profile.PrefersSuburb(p.Suburb) {
		score += weightSuburb
	}
	maxScore += weightSuburb

	// Feature axis: linear in the fraction of matched tags. An empty
	// preference list contributes nothing rather than full marks.
	if len(profile.MustHaveFeatures) > 0 {
		matched := matchFeatures(profile.MustHaveFeatures, p.Features)
		score += weightFeatures * mustHaveShare * float64(len(matched)) / float64(len(profile.MustHaveFeatures))
	}
	if len(profile.NiceToHaveFeatures) > 0 {
		matched := matchFeatures(profile.NiceToHaveFeatures, p.Features)
		score += weightFeatures * niceToHaveShare * float64(len(matched)) / float64(len(profile.NiceToHaveFeatures))
	}
	maxScore += weightFeatures

	if maxScore <= 0 {
		return 0
	}
	return score / maxScore
}

// Recommend scores every catalog listing and returns the ones above
// the threshold, best first. Ties keep catalog order. At most
// maxResults entries are returned.
func (e *MatchEngine) Recommend(profile *domain.UserProfile, catalog []domain.Property) []domain.MatchResult {
	var results []domain.MatchResult

	for _, p := range catalog {
		score := e.Score(&p, profile)
		if score > e.scoreThreshold {
			results = append(results, domain.MatchResult{Property: p, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	if len(results) > e.maxResults {
		results = results[:e.maxResults]
	}
	return results
}

// Explain produces the per-axis breakdown for a single property.
// Deterministic given identical inputs.
func (e *MatchEngine) Explain(p *domain.Property, profile *domain.UserProfile) domain.ScoreBreakdown {
	breakdown := domain.ScoreBreakdown{
		PropertyID:   p.ID,
		Address:      p.Address,
		OverallScore: e.Score(p, profile),
	}

	switch {
	case profile.BudgetMin <= p.Price && p.Price <= profile.BudgetMax:
		breakdown.Budget = fmt.Sprintf("Perfect fit within your $%s - $%s budget",
			formatAmount(profile.BudgetMin), formatAmount(profile.BudgetMax))
	case p.Price < profile.BudgetMin:
		breakdown.Budget = fmt.Sprintf("Under your budget at $%s (saving you $%s)",
			formatAmount(p.Price), formatAmount(profile.BudgetMin-p.Price))
	default:
		breakdown.Budget = fmt.Sprintf("Above your budget by $%s",
			formatAmount(p.Price-profile.BudgetMax))
	}

	if profile.WantsType(p.Type) {
		breakdown.Type = fmt.Sprintf("Matches your preferred %s type", p.Type)
	} else {
		breakdown.Type = fmt.Sprintf("Different from your preferred types (%s)", joinTypes(profile.PropertyTypes))
	}

	if profile.PrefersSuburb(p.Suburb) {
		breakdown.Location = fmt.Sprintf("Located in your preferred suburb of %s", p.Suburb)
	} else {
		breakdown.Location = fmt.Sprintf("Located in %s (not in your preferred suburbs)", p.Suburb)
	}

	breakdown.MustHaveMatches = matchFeatures(profile.MustHaveFeatures, p.Features)
	breakdown.NiceToHaveMatches = matchFeatures(profile.NiceToHaveFeatures, p.Features)

	breakdown.Features = fmt.Sprintf("Has %d/%d must-have features",
		len(breakdown.MustHaveMatches), len(profile.MustHaveFeatures))
	if len(breakdown.MustHaveMatches) > 0 {
		breakdown.Features += fmt.Sprintf(" (%s)", strings.Join(breakdown.MustHaveMatches, ", "))
	}
	if len(breakdown.NiceToHaveMatches) > 0 {
		breakdown.Features += fmt.Sprintf(" and %d nice-to-have features (%s)",
			len(breakdown.NiceToHaveMatches), strings.Join(breakdown.NiceToHaveMatches, ", "))
	}

	breakdown.Highlights = buildHighlights(p, profile, breakdown.MustHaveMatches)

	return breakdown
}

// buildHighlights concatenates whichever of the standout reasons apply.
func buildHighlights(p *domain.Property, profile *domain.UserProfile, mustHaveMatches []string) string {
	var highlights []string

	if p.Price <= profile.BudgetMax {
		highlights = append(highlights, "fits your budget")
	}
	if profile.WantsType(p.Type) {
		highlights = append(highlights, "matches your property type preference")
	}
	if profile.PrefersSuburb(p.Suburb) {
		highlights = append(highlights, "is in your preferred location")
	}
	if len(mustHaveMatches) > 0 {
		highlights = append(highlights, "includes your must-have features: "+strings.Join(mustHaveMatches, ", "))
	}

	if len(highlights) == 0 {
		return "meets several of your criteria"
	}
	return strings.Join(highlights, ", ")
}

// matchFeatures returns the wanted tags present in the property's
// feature set, compared case-insensitively. Order follows the wanted
// list so explanations are stable.
func matchFeatures(wanted, available []string) []string {
	have := make(map[string]struct{}, len(available))
	for _, f := range available {
		have[strings.ToLower(f)] = struct{}{}
	}

	var matched []string
	for _, w := range wanted {
		if _, ok := have[strings.ToLower(w)]; ok {
			matched = append(matched, w)
		}
	}
	return matched
}

// formatAmount renders an integer dollar amount with thousands
// separators, e.g. 1200000 -> "1,200,000".
func formatAmount(n int) string {
	if n < 0 {
		return "-" + formatAmount(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func joinTypes(types []domain.PropertyType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
