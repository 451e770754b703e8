// Package summarize reacts to transcription job-state notifications. On a
// completed job it normalizes the raw transcript, persists it, and invokes
// the generative model to produce and persist the summary.
package summarize

import (
	"context"
	"encoding/json"
	"time"

	awsevents "github.com/aws/aws-lambda-go/events"

	"audio-summarizer-pipeline/internal/events"
	"audio-summarizer-pipeline/internal/models"
	"audio-summarizer-pipeline/internal/observability/logging"
	"audio-summarizer-pipeline/internal/observability/metrics"
	"audio-summarizer-pipeline/internal/pipeline"
	"audio-summarizer-pipeline/internal/service/inference"
	"audio-summarizer-pipeline/internal/service/normalize"
	"audio-summarizer-pipeline/internal/service/prompt"
	"audio-summarizer-pipeline/internal/storage"
)

// Persisted layout inside the shared bucket.
const (
	transcriptionPrefix = "transcription/"
	processedPrefix     = "processed/"
)

// Handler is the transcript normalizer + summarizer dispatch. Stateless and
// linear: fetch, normalize, persist, prompt, invoke, persist. No retries and
// no rescheduling; re-invocation is the event source's responsibility.
type Handler struct {
	store     storage.ObjectStore
	invoker   inference.Invoker
	publisher *events.Publisher
	bucket    string
	modelID   string
	metrics   *metrics.Metrics
}

// NewHandler creates the summarize handler. modelID is only used to tag the
// published lifecycle event; the invoker carries its own parameters.
func NewHandler(store storage.ObjectStore, invoker inference.Invoker, publisher *events.Publisher, bucket, modelID string) *Handler {
	return &Handler{
		store:     store,
		invoker:   invoker,
		publisher: publisher,
		bucket:    bucket,
		modelID:   modelID,
		metrics:   metrics.DefaultMetrics,
	}
}

// Handle processes one job-state notification. Every failure is converted
// to a Response; the returned error is always nil.
func (h *Handler) Handle(ctx context.Context, event awsevents.CloudWatchEvent) (pipeline.Response, error) {
	logger := logging.WithComponent("summarize")

	var detail models.JobStateChangeDetail
	if err := json.Unmarshal(event.Detail, &detail); err != nil || detail.TranscriptionJobName == "" {
		werr := pipeline.Wrap(pipeline.KindInvalidInput, err, "invalid job-state event")
		logger.Error().Err(err).Msg("Invalid job-state event")
		return pipeline.Fail(werr), nil
	}

	job := detail.TranscriptionJobName
	jobLogger := logging.WithJob("summarize", job)

	switch detail.TranscriptionJobStatus {
	case models.JobStatusFailed:
		err := pipeline.Errorf(pipeline.KindUpstreamJobFailed, "unable to process, job %s failed", job)
		jobLogger.Error().Msg("Transcription job failed upstream")
		return pipeline.Fail(err), nil
	case models.JobStatusCompleted:
		// fall through to the linear pipeline below
	default:
		err := pipeline.Errorf(pipeline.KindUnexpectedState, "transcription job %s is not completed or failed", job)
		jobLogger.Error().Str("status", detail.TranscriptionJobStatus).Msg("Unexpected job status")
		return pipeline.Fail(err), nil
	}

	rawKey := transcriptionPrefix + job + ".json"
	raw, err := h.store.Get(ctx, h.bucket, rawKey)
	h.metrics.RecordStorageOp("get", err)
	if err != nil {
		werr := pipeline.Wrap(pipeline.KindStorageError, err, "error downloading s3://%s/%s", h.bucket, rawKey)
		jobLogger.Error().Err(err).Str("key", rawKey).Msg("Raw transcript fetch failed")
		return pipeline.Fail(werr), nil
	}

	start := time.Now()
	transcript, err := normalize.Normalize(raw)
	if err != nil {
		werr := pipeline.Wrap(pipeline.KindParseError, err, "error converting transcription to txt")
		jobLogger.Error().Err(err).Msg("Transcript normalization failed")
		return pipeline.Fail(werr), nil
	}
	h.metrics.NormalizeDuration.Observe(time.Since(start).Seconds())

	lines := 0
	for _, c := range transcript {
		if c == '\n' {
			lines++
		}
	}
	h.metrics.TranscriptLines.Observe(float64(lines))

	txtKey := transcriptionPrefix + job + ".txt"
	err = h.store.Put(ctx, h.bucket, txtKey, []byte(transcript))
	h.metrics.RecordStorageOp("put", err)
	if err != nil {
		werr := pipeline.Wrap(pipeline.KindStorageError, err, "error uploading converted file to s3://%s/%s", h.bucket, txtKey)
		jobLogger.Error().Err(err).Str("key", txtKey).Msg("Normalized transcript upload failed")
		return pipeline.Fail(werr), nil
	}
	jobLogger.Info().Str("key", txtKey).Int("lines", lines).Msg("Normalized transcript persisted")

	_ = h.publisher.Publish(ctx, models.EventTypeTranscriptNormalized, job, models.TranscriptNormalized{
		EventType:     models.EventTypeTranscriptNormalized,
		JobName:       job,
		TranscriptKey: txtKey,
		Lines:         lines,
		Timestamp:     time.Now().UnixMilli(),
	})

	invokeStart := time.Now()
	summary, err := h.invoker.Invoke(ctx, prompt.Build(transcript))
	h.metrics.RecordModelInvocation(err, time.Since(invokeStart))
	if err != nil {
		werr := pipeline.Wrap(pipeline.KindModelInvocationError, err, "model invocation failed for job %s", job)
		jobLogger.Error().Err(err).Msg("Model invocation failed")
		return pipeline.Fail(werr), nil
	}

	preview := summary
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	jobLogger.Info().Str("preview", preview).Msg("Model invocation succeeded")

	processedKey := processedPrefix + job + ".txt"
	err = h.store.Put(ctx, h.bucket, processedKey, []byte(summary))
	h.metrics.RecordStorageOp("put", err)
	if err != nil {
		werr := pipeline.Wrap(pipeline.KindStorageError, err, "error uploading summary to s3://%s/%s", h.bucket, processedKey)
		jobLogger.Error().Err(err).Str("key", processedKey).Msg("Summary upload failed")
		return pipeline.Fail(werr), nil
	}

	_ = h.publisher.Publish(ctx, models.EventTypeSummaryCreated, job, models.SummaryCreated{
		EventType:  models.EventTypeSummaryCreated,
		JobName:    job,
		SummaryKey: processedKey,
		ModelID:    h.modelID,
		Timestamp:  time.Now().UnixMilli(),
	})

	jobLogger.Info().Str("key", processedKey).Msg("Summary persisted")
	return pipeline.OK(processedKey), nil
}
