// Package mock provides a transcription.Submitter for testing and the local
// runner without cloud credentials.
package mock

import (
	"context"
	"sync"

	"audio-summarizer-pipeline/internal/service/transcription"
)

// Adapter implements transcription.Submitter by recording submissions.
type Adapter struct {
	mu        sync.Mutex
	submitted []transcription.JobRequest

	// Err, when set, is returned by every Submit call.
	Err error
}

// New creates a mock submitter.
func New() *Adapter {
	return &Adapter{}
}

// Submit records the request.
func (a *Adapter) Submit(ctx context.Context, req transcription.JobRequest) error {
	if a.Err != nil {
		return a.Err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.submitted = append(a.submitted, req)
	return nil
}

// Submitted returns a copy of all recorded requests.
func (a *Adapter) Submitted() []transcription.JobRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]transcription.JobRequest, len(a.submitted))
	copy(out, a.submitted)
	return out
}
