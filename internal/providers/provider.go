package providers

import (
	"context"
	"fmt"
	"strings"
)

// ReviewRequest contains the data sent to an LLM for review.
type ReviewRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// ReviewResponse contains the raw response from an LLM.
type ReviewResponse struct {
	Content    string
	TokensUsed int
}

// Reviewer is the provider abstraction interface.
type Reviewer interface {
	Review(ctx context.Context, req ReviewRequest) (ReviewResponse, error)
	Name() string
}

// New creates a provider by name. An empty baseURL selects the provider's
// public API.
func New(provider, model, apiKey, baseURL string) (Reviewer, error) {
	switch strings.ToLower(provider) {
	case OpenAIName:
		return NewOpenAI(model, apiKey, baseURL)
	case DeepSeekName:
		return NewDeepSeek(model, apiKey, baseURL)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
