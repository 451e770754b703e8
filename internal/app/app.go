// Package app wires handlers to their collaborators. Each Lambda entrypoint
// builds only the clients its handler needs; the local runner builds both
// handlers against in-process fakes.
package app

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/transcribe"
	"github.com/rs/zerolog"

	"audio-summarizer-pipeline/internal/config"
	"audio-summarizer-pipeline/internal/events"
	"audio-summarizer-pipeline/internal/observability/logging"
	"audio-summarizer-pipeline/internal/service/inference"
	"audio-summarizer-pipeline/internal/service/inference/bedrock"
	inferencemock "audio-summarizer-pipeline/internal/service/inference/mock"
	"audio-summarizer-pipeline/internal/service/ingest"
	"audio-summarizer-pipeline/internal/service/jobname"
	"audio-summarizer-pipeline/internal/service/summarize"
	"audio-summarizer-pipeline/internal/service/transcription/amazon"
	transcriptionmock "audio-summarizer-pipeline/internal/service/transcription/mock"
	"audio-summarizer-pipeline/internal/storage/memory"
	s3store "audio-summarizer-pipeline/internal/storage/s3"
)

// Application holds the wired handlers for one process. Only the handler the
// entrypoint asked for is non-nil.
type Application struct {
	Cfg       *config.Configuration
	Logger    zerolog.Logger
	Publisher *events.Publisher
	Ingest    *ingest.Handler
	Summarize *summarize.Handler
}

func newBase(cfg *config.Configuration) *Application {
	logging.Init(logging.Config{
		Level:      cfg.Observability.LogLevel,
		Format:     cfg.Observability.Format,
		TimeFormat: logging.DefaultConfig().TimeFormat,
	})

	return &Application{
		Cfg:    cfg,
		Logger: logging.WithComponent("application"),
		Publisher: events.New(&events.Config{
			Enabled:   cfg.Kafka.Enabled,
			Brokers:   cfg.Kafka.Brokers,
			Topic:     cfg.Kafka.Topic,
			Principal: cfg.Kafka.Principal,
		}),
	}
}

func requireBucket(cfg *config.Configuration) error {
	if cfg.Storage.OutputBucket == "" {
		return fmt.Errorf("OUTPUT_BUCKET is not set")
	}
	return nil
}

// NewIngest wires the ingest handler against Amazon Transcribe.
func NewIngest(ctx context.Context, cfg *config.Configuration) (*Application, error) {
	if err := requireBucket(cfg); err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	a := newBase(cfg)
	submitter := amazon.New(transcribe.NewFromConfig(awsCfg), amazon.Settings{
		IdentifyMultipleLanguages: cfg.Transcribe.IdentifyMultipleLanguages,
		MaxSpeakerLabels:          int32(cfg.Transcribe.MaxSpeakerLabels),
	})
	a.Ingest = ingest.NewHandler(submitter, jobname.New(), a.Publisher, cfg.Storage.OutputBucket)

	a.Logger.Info().Str("bucket", cfg.Storage.OutputBucket).Msg("Ingest handler wired")
	return a, nil
}

// NewSummarize wires the summarize handler against S3 and Bedrock.
func NewSummarize(ctx context.Context, cfg *config.Configuration) (*Application, error) {
	if err := requireBucket(cfg); err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	a := newBase(cfg)
	store := s3store.New(awss3.NewFromConfig(awsCfg))
	invoker := bedrock.New(bedrockruntime.NewFromConfig(awsCfg), inference.Params{
		ModelID:     cfg.Inference.ModelID,
		System:      inference.SystemPrompt,
		MaxTokens:   cfg.Inference.MaxTokens,
		Temperature: cfg.Inference.Temperature,
		TopP:        cfg.Inference.TopP,
		TopK:        cfg.Inference.TopK,
	})
	a.Summarize = summarize.NewHandler(store, invoker, a.Publisher, cfg.Storage.OutputBucket, cfg.Inference.ModelID)

	a.Logger.Info().
		Str("bucket", cfg.Storage.OutputBucket).
		Str("modelId", cfg.Inference.ModelID).
		Msg("Summarize handler wired")
	return a, nil
}

// MockCollaborators exposes the fakes backing a mock Application so the
// local runner can seed and inspect them.
type MockCollaborators struct {
	Store     *memory.Store
	Submitter *transcriptionmock.Adapter
	Invoker   *inferencemock.Invoker
}

// NewMock wires both handlers against in-process fakes. The bucket defaults
// to "local-bucket" when OUTPUT_BUCKET is unset.
func NewMock(cfg *config.Configuration) (*Application, *MockCollaborators) {
	if cfg.Storage.OutputBucket == "" {
		cfg.Storage.OutputBucket = "local-bucket"
	}

	a := newBase(cfg)
	collaborators := &MockCollaborators{
		Store:     memory.New(),
		Submitter: transcriptionmock.New(),
		Invoker:   inferencemock.New(),
	}

	a.Ingest = ingest.NewHandler(collaborators.Submitter, jobname.New(), a.Publisher, cfg.Storage.OutputBucket)
	a.Summarize = summarize.NewHandler(collaborators.Store, collaborators.Invoker, a.Publisher, cfg.Storage.OutputBucket, cfg.Inference.ModelID)

	a.Logger.Info().Str("bucket", cfg.Storage.OutputBucket).Msg("Mock application wired")
	return a, collaborators
}

// Shutdown performs a best-effort cleanup before process exit.
func (a *Application) Shutdown() {
	if err := a.Publisher.Close(); err != nil {
		a.Logger.Error().Err(err).Msg("Error closing lifecycle publisher")
	}
}
