// Package amazon provides an Amazon Transcribe transcription.Submitter.
package amazon

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transcribe"
	"github.com/aws/aws-sdk-go-v2/service/transcribe/types"

	"audio-summarizer-pipeline/internal/service/transcription"
)

// Settings holds the job submission settings fixed at deploy time.
type Settings struct {
	IdentifyMultipleLanguages bool
	MaxSpeakerLabels          int32
}

// DefaultSettings enables multi-language identification and diarization for
// up to 10 speakers, with channel identification and alternatives off.
func DefaultSettings() Settings {
	return Settings{
		IdentifyMultipleLanguages: true,
		MaxSpeakerLabels:          10,
	}
}

// Adapter implements transcription.Submitter using Amazon Transcribe.
type Adapter struct {
	client   *transcribe.Client
	settings Settings
}

// New creates an Amazon Transcribe adapter.
func New(client *transcribe.Client, settings Settings) *Adapter {
	return &Adapter{client: client, settings: settings}
}

// Submit starts a transcription job with speaker-label diarization on and
// the output directed at req.OutputBucket/req.OutputKey.
func (a *Adapter) Submit(ctx context.Context, req transcription.JobRequest) error {
	_, err := a.client.StartTranscriptionJob(ctx, &transcribe.StartTranscriptionJobInput{
		TranscriptionJobName:      aws.String(req.JobName),
		Media:                     &types.Media{MediaFileUri: aws.String(req.MediaURI)},
		MediaFormat:               types.MediaFormat(req.MediaFormat),
		IdentifyMultipleLanguages: aws.Bool(a.settings.IdentifyMultipleLanguages),
		Settings: &types.Settings{
			ShowSpeakerLabels:     aws.Bool(true),
			MaxSpeakerLabels:      aws.Int32(a.settings.MaxSpeakerLabels),
			ChannelIdentification: aws.Bool(false),
			ShowAlternatives:      aws.Bool(false),
		},
		OutputBucketName: aws.String(req.OutputBucket),
		OutputKey:        aws.String(req.OutputKey),
	})
	return err
}
