package domain

// Response type values on the chat wire contract. The frontend keys
// its rendering off these.
const (
	ResponseTypeAI    = "parlant_ai"
	ResponseTypeError = "error"
)

// ChatResult is the single JSON object every chat entry point emits.
type ChatResult struct {
	Response        string     `json:"response"`
	Recommendations []Property `json:"recommendations"`
	Type            string     `json:"type"`
	Criteria        *Criteria  `json:"criteria,omitempty"`
}

// ChatContext is the bundle handed to the AI backend alongside the
// user message.
type ChatContext struct {
	Message    string
	Profile    *UserProfile
	Candidates []Property
	Criteria   Criteria
	History    []string
}
