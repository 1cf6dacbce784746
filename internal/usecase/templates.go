package usecase

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/jiningying/property-chat-agent/internal/domain"
)

// Canned responses used when no AI backend is available (or when it
// fails). Selection is keyed on keyword presence, so replies are
// deterministic for a given message.

const apologyResponse = "I'm sorry, I'm having trouble processing your request right now. Please try again."

var greetingWords = []string{"hello", "hi", "hey"}

var generalQuestionPhrases = []string{"what is", "tell me about", "explain"}

var jokes = []string{
	"Why did the real estate agent go to therapy? Because they had too many property issues!",
	"What do you call a real estate agent who's also a magician? A property wizard!",
	"Why don't houses ever get lonely? Because they always have great neighbors!",
}

// TemplateResponder assembles reply strings from fixed templates.
type TemplateResponder struct{}

// NewTemplateResponder creates a template responder.
func NewTemplateResponder() *TemplateResponder {
	return &TemplateResponder{}
}

// Respond picks a canned reply for the message given the extracted
// criteria and the matching listings.
func (r *TemplateResponder) Respond(message string, criteria domain.Criteria, matches []domain.Property) string {
	lower := strings.ToLower(message)

	// Priority: general question, then joke, then greeting. A message
	// carrying both a greeting and a question gets the deflection.
	if containsAnyPhrase(lower, generalQuestionPhrases) {
		return "I'm primarily a real estate assistant, but I can help with general questions! " +
			"However, my main expertise is helping you find the perfect property. " +
			"What kind of home are you looking for?"
	}

	if strings.Contains(lower, "joke") || strings.Contains(lower, "funny") {
		return jokes[hashMessage(message)%uint32(len(jokes))]
	}

	if containsAnyWord(lower, greetingWords) {
		return "Hi there! I'm your property assistant. I'm here to help you find the perfect property! " +
			"What are you looking for in your next home?"
	}

	if len(matches) > 0 {
		if criteria.IsEmpty() {
			return "Here are some great properties I found for you:"
		}
		return fmt.Sprintf("Perfect! I found %d properties matching your criteria: %s. Here are the best options:",
			len(matches), describeCriteria(criteria))
	}

	if !criteria.IsEmpty() {
		return "I couldn't find any properties matching your exact criteria, " +
			"but let me show you some similar options that might interest you:"
	}

	return "I understand you're looking for properties! Tell me about your preferences - " +
		"what's your budget, how many bedrooms do you need, and what type of property interests you?"
}

// describeCriteria renders the set criteria fields as a short phrase,
// e.g. "under $800,000 with 2 bedrooms (apartments)".
func describeCriteria(criteria domain.Criteria) string {
	var parts []string

	if criteria.Budget != nil {
		parts = append(parts, "under $"+formatAmount(*criteria.Budget))
	}
	if criteria.Bedrooms != nil {
		plural := ""
		if *criteria.Bedrooms > 1 {
			plural = "s"
		}
		parts = append(parts, fmt.Sprintf("with %d bedroom%s", *criteria.Bedrooms, plural))
	}
	if criteria.PropertyType != nil {
		parts = append(parts, fmt.Sprintf("(%ss)", *criteria.PropertyType))
	}
	if criteria.Location != nil {
		parts = append(parts, "in "+capitalize(*criteria.Location))
	}

	return strings.Join(parts, " ")
}

func containsAnyWord(lower string, words []string) bool {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				return true
			}
		}
	}
	return false
}

func containsAnyPhrase(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func hashMessage(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
