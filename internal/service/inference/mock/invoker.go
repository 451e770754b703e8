// Package mock provides an inference.Invoker for testing and the local
// runner without cloud credentials.
package mock

import (
	"context"
	"sync"
)

// DefaultSummary is returned when no scripted summary is set.
const DefaultSummary = "The speakers discussed the project status.\n\n- Follow up on open items"

// Invoker implements inference.Invoker with a scripted response.
type Invoker struct {
	mu      sync.Mutex
	prompts []string

	// Summary is the response returned by Invoke; DefaultSummary if empty.
	Summary string
	// Err, when set, is returned by every Invoke call.
	Err error
}

// New creates a mock invoker.
func New() *Invoker {
	return &Invoker{}
}

// Invoke records the prompt and returns the scripted summary.
func (i *Invoker) Invoke(ctx context.Context, prompt string) (string, error) {
	if i.Err != nil {
		return "", i.Err
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.prompts = append(i.prompts, prompt)

	if i.Summary != "" {
		return i.Summary, nil
	}
	return DefaultSummary, nil
}

// Prompts returns a copy of all recorded prompts.
func (i *Invoker) Prompts() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]string, len(i.prompts))
	copy(out, i.prompts)
	return out
}
