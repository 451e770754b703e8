// Package transcription defines the interface for transcription job
// submission. The provider runs jobs asynchronously; completion is observed
// through job-state events, never through this interface.
package transcription

import "context"

// JobRequest describes one transcription job. Immutable once submitted.
type JobRequest struct {
	JobName      string // unique, prefix + random suffix
	MediaURI     string // s3://bucket/key of the uploaded audio
	MediaFormat  string // file extension without the dot, case as given
	OutputBucket string
	OutputKey    string // transcription/<job>.json
}

// Submitter starts transcription jobs with the provider (AWS, mock, etc.).
type Submitter interface {
	// Submit starts exactly one job. No retries, no collision check.
	Submit(ctx context.Context, req JobRequest) error
}
