package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/jiningying/property-chat-agent/internal/domain"
)

const (
	defaultModel   = openai.GPT3Dot5Turbo
	requestTimeout = 30 * time.Second
	maxCandidates  = 5
)

// Client wraps the OpenAI chat completion API as the conversation
// backend. Callers tolerate this backend being absent, so every
// failure here degrades to template responses upstream.
type Client struct {
	api         *openai.Client
	model       string
	rateLimiter *rate.Limiter
}

// NewClient creates a conversation backend for the given credentials.
// baseURL may be empty to use the public OpenAI endpoint.
func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: api key is required", domain.ErrBackendUnavailable)
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if model == "" {
		model = defaultModel
	}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
		// 3 requests per second, burst of 5
		rateLimiter: rate.NewLimiter(rate.Limit(3), 5),
	}, nil
}

// Reply sends the message plus context bundle and returns the model's
// reply text.
func (c *Client) Reply(ctx context.Context, bundle *domain.ChatContext) (string, error) {
	if bundle == nil || bundle.Message == "" {
		return "", domain.ErrInvalidRequest
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(bundle)},
			{Role: openai.ChatMessageRoleUser, Content: bundle.Message},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBackendFailure, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", domain.ErrBackendFailure)
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("backend returned empty reply")
	}
	return reply, nil
}

// buildSystemPrompt renders the profile and candidate listings into
// the instruction block for the model.
func buildSystemPrompt(bundle *domain.ChatContext) string {
	var b strings.Builder

	b.WriteString("You are a friendly and professional real estate assistant. ")
	b.WriteString("Help the user find the right property, explain recommendations clearly, ")
	b.WriteString("and ask clarifying questions when preferences are unclear.\n\n")

	if p := bundle.Profile; p != nil {
		fmt.Fprintf(&b, "User profile:\n- Name: %s\n- Buyer type: %s\n- Budget: $%d - $%d\n",
			p.Name, p.UserType, p.BudgetMin, p.BudgetMax)
		if len(p.PreferredSuburbs) > 0 {
			fmt.Fprintf(&b, "- Preferred suburbs: %s\n", strings.Join(p.PreferredSuburbs, ", "))
		}
		if len(p.MustHaveFeatures) > 0 {
			fmt.Fprintf(&b, "- Must-have features: %s\n", strings.Join(p.MustHaveFeatures, ", "))
		}
		if len(p.NiceToHaveFeatures) > 0 {
			fmt.Fprintf(&b, "- Nice-to-have features: %s\n", strings.Join(p.NiceToHaveFeatures, ", "))
		}
		b.WriteString("\n")
	}

	if len(bundle.Candidates) > 0 {
		b.WriteString("Matching listings to talk about:\n")
		for i, p := range bundle.Candidates {
			if i >= maxCandidates {
				break
			}
			fmt.Fprintf(&b, "%d. %s - $%d, %s, %d bed, %d bath, features: %s\n",
				i+1, p.Address, p.Price, p.Type, p.Bedrooms, p.Bathrooms,
				strings.Join(p.Features, ", "))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No listings matched the current criteria; suggest relaxing them.\n\n")
	}

	b.WriteString("Keep replies short and conversational. Only reference the listings above.")
	return b.String()
}
