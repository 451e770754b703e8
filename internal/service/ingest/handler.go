// Package ingest reacts to object-created notifications on the source/
// prefix and submits one transcription job per uploaded audio file.
package ingest

import (
	"context"
	"path"
	"strings"
	"time"

	awsevents "github.com/aws/aws-lambda-go/events"

	"audio-summarizer-pipeline/internal/events"
	"audio-summarizer-pipeline/internal/models"
	"audio-summarizer-pipeline/internal/observability/logging"
	"audio-summarizer-pipeline/internal/observability/metrics"
	"audio-summarizer-pipeline/internal/pipeline"
	"audio-summarizer-pipeline/internal/service/jobname"
	"audio-summarizer-pipeline/internal/service/transcription"
)

// TranscriptionPrefix is where the transcription service writes its raw
// output inside the shared bucket.
const TranscriptionPrefix = "transcription/"

// Handler is the ingest trigger. Stateless; one job submission per
// invocation, no retries.
type Handler struct {
	submitter transcription.Submitter
	jobs      *jobname.Generator
	publisher *events.Publisher
	bucket    string
	metrics   *metrics.Metrics
}

// NewHandler creates the ingest handler. bucket is the shared output bucket
// the transcription result is directed to.
func NewHandler(submitter transcription.Submitter, jobs *jobname.Generator, publisher *events.Publisher, bucket string) *Handler {
	return &Handler{
		submitter: submitter,
		jobs:      jobs,
		publisher: publisher,
		bucket:    bucket,
		metrics:   metrics.DefaultMetrics,
	}
}

// Handle processes one object-created notification. Every failure is
// converted to a Response; the returned error is always nil so the event
// source never sees an uncaught fault.
func (h *Handler) Handle(ctx context.Context, event awsevents.S3Event) (pipeline.Response, error) {
	logger := logging.WithComponent("ingest")

	if len(event.Records) == 0 {
		err := pipeline.Errorf(pipeline.KindInvalidInput, "event has no records")
		logger.Error().Msg(err.Error())
		return pipeline.Fail(err), nil
	}

	record := event.Records[0].S3
	bucket := record.Bucket.Name
	key := record.Object.Key

	// The watched folder itself also raises an object-created notification.
	if strings.HasSuffix(key, "/") {
		logger.Info().Str("key", key).Msg("Folder key, skipping")
		h.metrics.IngestSkipped.Inc()
		return pipeline.OK("folder key, skipping"), nil
	}

	// Only the extension matters; it becomes the media format.
	ext := path.Ext(key)
	if ext == "" {
		err := pipeline.Errorf(pipeline.KindInvalidInput, "invalid file name %s", key)
		logger.Error().Str("key", key).Msg(err.Error())
		return pipeline.Fail(err), nil
	}
	mediaFormat := strings.TrimPrefix(ext, ".")

	job := h.jobs.Next()
	jobLogger := logging.WithJob("ingest", job)

	req := transcription.JobRequest{
		JobName:      job,
		MediaURI:     "s3://" + bucket + "/" + key,
		MediaFormat:  mediaFormat,
		OutputBucket: h.bucket,
		OutputKey:    TranscriptionPrefix + job + ".json",
	}

	if err := h.submitter.Submit(ctx, req); err != nil {
		h.metrics.JobSubmitFailures.Inc()
		wrapped := pipeline.Wrap(pipeline.KindServiceError, err, "transcribe job creation failed: %s", job)
		jobLogger.Error().Err(err).Msg("Transcribe job creation failed")
		return pipeline.Fail(wrapped), nil
	}

	h.metrics.JobsSubmitted.Inc()
	_ = h.publisher.Publish(ctx, models.EventTypeJobSubmitted, job, models.JobSubmitted{
		EventType:   models.EventTypeJobSubmitted,
		JobName:     job,
		Bucket:      bucket,
		SourceKey:   key,
		MediaFormat: mediaFormat,
		Timestamp:   time.Now().UnixMilli(),
	})

	jobLogger.Info().
		Str("mediaFormat", mediaFormat).
		Str("mediaUri", req.MediaURI).
		Msg("Transcribe job created")
	return pipeline.OK(job), nil
}
