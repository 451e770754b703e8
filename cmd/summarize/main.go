package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"audio-summarizer-pipeline/internal/app"
	"audio-summarizer-pipeline/internal/config"
)

func main() {
	cfg := config.Load()

	application, err := app.NewSummarize(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Summarize startup failed")
	}
	defer application.Shutdown()

	lambda.Start(application.Summarize.Handle)
}
