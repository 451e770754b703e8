package ingest

import (
	"context"
	"strings"
	"testing"

	awsevents "github.com/aws/aws-lambda-go/events"

	"audio-summarizer-pipeline/internal/events"
	"audio-summarizer-pipeline/internal/service/jobname"
	"audio-summarizer-pipeline/internal/service/transcription/mock"
)

func s3Event(bucket, key string) awsevents.S3Event {
	return awsevents.S3Event{
		Records: []awsevents.S3EventRecord{
			{
				S3: awsevents.S3Entity{
					Bucket: awsevents.S3Bucket{Name: bucket},
					Object: awsevents.S3Object{Key: key},
				},
			},
		},
	}
}

func newHandler(submitter *mock.Adapter) *Handler {
	return NewHandler(submitter, jobname.New(), events.New(&events.Config{Enabled: false}), "output-bucket")
}

func TestHandle_FolderKeySkipped(t *testing.T) {
	submitter := mock.New()
	h := newHandler(submitter)

	resp, err := h.Handle(context.Background(), s3Event("my-bucket", "source/"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200 for folder key, got %d (%s)", resp.StatusCode, resp.Body)
	}
	if len(submitter.Submitted()) != 0 {
		t.Errorf("no job should be submitted for a folder key, got %d", len(submitter.Submitted()))
	}
}

func TestHandle_MissingExtension(t *testing.T) {
	submitter := mock.New()
	h := newHandler(submitter)

	resp, err := h.Handle(context.Background(), s3Event("my-bucket", "source/clip"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("expected 400 for key without extension, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Body, "InvalidInput") {
		t.Errorf("expected InvalidInput in body, got %q", resp.Body)
	}
	if len(submitter.Submitted()) != 0 {
		t.Errorf("no job should be submitted for an invalid key, got %d", len(submitter.Submitted()))
	}
}

func TestHandle_SubmitsJob(t *testing.T) {
	submitter := mock.New()
	h := newHandler(submitter)

	resp, err := h.Handle(context.Background(), s3Event("my-bucket", "source/clip.mp3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, resp.Body)
	}

	submitted := submitter.Submitted()
	if len(submitted) != 1 {
		t.Fatalf("expected exactly one submission, got %d", len(submitted))
	}
	req := submitted[0]

	if req.MediaFormat != "mp3" {
		t.Errorf("expected media format mp3, got %s", req.MediaFormat)
	}
	if req.MediaURI != "s3://my-bucket/source/clip.mp3" {
		t.Errorf("unexpected media uri: %s", req.MediaURI)
	}
	if !strings.HasPrefix(req.JobName, jobname.Prefix) {
		t.Errorf("job name missing prefix: %s", req.JobName)
	}
	if req.OutputBucket != "output-bucket" {
		t.Errorf("unexpected output bucket: %s", req.OutputBucket)
	}
	if req.OutputKey != "transcription/"+req.JobName+".json" {
		t.Errorf("unexpected output key: %s", req.OutputKey)
	}
	if resp.Body != req.JobName {
		t.Errorf("response body should be the job name, got %q", resp.Body)
	}
}

func TestHandle_MediaFormatKeepsCase(t *testing.T) {
	submitter := mock.New()
	h := newHandler(submitter)

	if _, err := h.Handle(context.Background(), s3Event("b", "source/clip.MP3")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := submitter.Submitted()[0].MediaFormat; got != "MP3" {
		t.Errorf("media format case must be preserved, got %s", got)
	}
}

func TestHandle_SubmissionFailure(t *testing.T) {
	submitter := mock.New()
	submitter.Err = context.DeadlineExceeded
	h := newHandler(submitter)

	resp, err := h.Handle(context.Background(), s3Event("my-bucket", "source/clip.wav"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("expected 500 on submission failure, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Body, "ServiceError") {
		t.Errorf("expected ServiceError in body, got %q", resp.Body)
	}
}

func TestHandle_NoRecords(t *testing.T) {
	submitter := mock.New()
	h := newHandler(submitter)

	resp, err := h.Handle(context.Background(), awsevents.S3Event{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("expected 400 for empty event, got %d", resp.StatusCode)
	}
	if len(submitter.Submitted()) != 0 {
		t.Error("no job should be submitted for an empty event")
	}
}

func TestHandle_UniqueJobNamesAcrossInvocations(t *testing.T) {
	submitter := mock.New()
	h := newHandler(submitter)

	for i := 0; i < 5; i++ {
		if _, err := h.Handle(context.Background(), s3Event("b", "source/clip.flac")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	seen := make(map[string]bool)
	for _, req := range submitter.Submitted() {
		if seen[req.JobName] {
			t.Errorf("job name reused: %s", req.JobName)
		}
		seen[req.JobName] = true
	}
}
