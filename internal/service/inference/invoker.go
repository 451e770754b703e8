// Package inference defines the interface for the generative inference
// service that produces the summary.
package inference

import "context"

// Params are the deployment-time model id and sampling parameters for the
// synchronous summarization call. They are never request-derived.
type Params struct {
	ModelID     string
	System      string
	MaxTokens   int
	Temperature float64
	TopP        float64
	TopK        int
}

// SystemPrompt is the fixed system instruction for summarization.
const SystemPrompt = "You are an AI assistant that excels at summarizing conversations."

// DefaultParams returns the deployment defaults.
func DefaultParams() Params {
	return Params{
		ModelID:     "anthropic.claude-3-sonnet-20240229-v1:0",
		System:      SystemPrompt,
		MaxTokens:   2000,
		Temperature: 1.0,
		TopP:        0.999,
		TopK:        40,
	}
}

// Invoker runs one synchronous model invocation with a single user message
// and returns the first text block of the response.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}
