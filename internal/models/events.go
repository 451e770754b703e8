// Package models defines the job-state trigger detail and the lifecycle
// events the pipeline publishes.
package models

// Transcription job statuses as emitted by the job-state event source.
const (
	JobStatusCompleted = "COMPLETED"
	JobStatusFailed    = "FAILED"
)

// JobStateChangeDetail is the detail payload of a "Transcribe Job State
// Change" event. Field names match the event source exactly.
type JobStateChangeDetail struct {
	TranscriptionJobName   string `json:"TranscriptionJobName"`
	TranscriptionJobStatus string `json:"TranscriptionJobStatus"`
}

// JobSubmitted is published when the ingest handler starts a transcription job.
type JobSubmitted struct {
	EventType   string `json:"eventType"`
	JobName     string `json:"jobName"`
	Bucket      string `json:"bucket"`
	SourceKey   string `json:"sourceKey"`
	MediaFormat string `json:"mediaFormat"`
	Timestamp   int64  `json:"timestamp"`
}

// TranscriptNormalized is published after the normalized transcript is persisted.
type TranscriptNormalized struct {
	EventType     string `json:"eventType"`
	JobName       string `json:"jobName"`
	TranscriptKey string `json:"transcriptKey"`
	Lines         int    `json:"lines"`
	Timestamp     int64  `json:"timestamp"`
}

// SummaryCreated is published after the summary is persisted.
type SummaryCreated struct {
	EventType  string `json:"eventType"`
	JobName    string `json:"jobName"`
	SummaryKey string `json:"summaryKey"`
	ModelID    string `json:"modelId"`
	Timestamp  int64  `json:"timestamp"`
}

// Event type values carried in the eventType field.
const (
	EventTypeJobSubmitted         = "summarizer.job.submitted"
	EventTypeTranscriptNormalized = "summarizer.transcript.normalized"
	EventTypeSummaryCreated       = "summarizer.summary.created"
)
