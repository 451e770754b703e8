// Command localrun replays a sample event through one of the pipeline
// handlers without a Lambda runtime. With -mock (the default) everything runs
// against in-process fakes; without it, real AWS clients are used. While the
// handler runs, metrics and health endpoints are served over HTTP.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"audio-summarizer-pipeline/internal/app"
	"audio-summarizer-pipeline/internal/config"
	internalhttp "audio-summarizer-pipeline/internal/http"
	"audio-summarizer-pipeline/internal/models"
	"audio-summarizer-pipeline/internal/observability"
	"audio-summarizer-pipeline/internal/pipeline"
)

func main() {
	handlerName := flag.String("handler", "ingest", "handler to run: ingest or summarize")
	eventPath := flag.String("event", "", "path to a sample event JSON file")
	transcriptPath := flag.String("transcript", "", "raw transcript JSON seeded into the mock store (summarize only)")
	useMocks := flag.Bool("mock", true, "use in-process fakes instead of AWS clients")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	var (
		application   *app.Application
		collaborators *app.MockCollaborators
		err           error
	)
	if *useMocks {
		application, collaborators = app.NewMock(cfg)
	} else {
		switch *handlerName {
		case "ingest":
			application, err = app.NewIngest(ctx, cfg)
		case "summarize":
			application, err = app.NewSummarize(ctx, cfg)
		default:
			log.Fatal().Str("handler", *handlerName).Msg("Unknown handler")
		}
		if err != nil {
			log.Fatal().Err(err).Msg("Startup failed")
		}
	}
	defer application.Shutdown()

	srv := observability.NewServer(":"+cfg.Observability.HTTPPort, internalhttp.NewRouter())
	srv.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if *eventPath == "" {
		log.Fatal().Msg("-event is required")
	}
	payload, err := os.ReadFile(*eventPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *eventPath).Msg("Cannot read event file")
	}

	var resp pipeline.Response
	switch *handlerName {
	case "ingest":
		var ev awsevents.S3Event
		if err := json.Unmarshal(payload, &ev); err != nil {
			log.Fatal().Err(err).Msg("Cannot parse S3 event")
		}
		resp, _ = application.Ingest.Handle(ctx, ev)

	case "summarize":
		var ev awsevents.CloudWatchEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			log.Fatal().Err(err).Msg("Cannot parse job-state event")
		}
		if collaborators != nil && *transcriptPath != "" {
			seedTranscript(ctx, collaborators, cfg.Storage.OutputBucket, ev, *transcriptPath)
		}
		resp, _ = application.Summarize.Handle(ctx, ev)

	default:
		log.Fatal().Str("handler", *handlerName).Msg("Unknown handler")
	}

	out, _ := json.Marshal(resp)
	log.Info().RawJSON("response", out).Msg("Invocation complete")

	if collaborators != nil {
		log.Info().
			Int("storedObjects", collaborators.Store.Len()).
			Int("jobsSubmitted", len(collaborators.Submitter.Submitted())).
			Int("modelInvocations", len(collaborators.Invoker.Prompts())).
			Msg("Mock collaborator state")
	}
}

// seedTranscript places the raw transcript where the summarize handler will
// look for it, under the job name carried by the event.
func seedTranscript(ctx context.Context, c *app.MockCollaborators, bucket string, ev awsevents.CloudWatchEvent, path string) {
	var detail models.JobStateChangeDetail
	if err := json.Unmarshal(ev.Detail, &detail); err != nil || detail.TranscriptionJobName == "" {
		log.Fatal().Err(err).Msg("Event detail has no job name to seed against")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Cannot read transcript file")
	}
	key := "transcription/" + detail.TranscriptionJobName + ".json"
	if err := c.Store.Put(ctx, bucket, key, raw); err != nil {
		log.Fatal().Err(err).Str("key", key).Msg("Cannot seed transcript")
	}
	log.Info().Str("key", key).Msg("Seeded raw transcript into mock store")
}
