// Package config loads pipeline configuration from the environment.
//
// Both handlers are event-invoked Lambda functions: everything here is a
// deployment-time constant, never request-derived. Invalid values fall back
// to defaults rather than failing startup.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Configuration holds all deployment-time settings for the pipeline.
type Configuration struct {
	Service       ServiceConfig
	Storage       StorageConfig
	Transcribe    TranscribeConfig
	Inference     InferenceConfig
	Kafka         KafkaConfig
	Observability ObservabilityConfig
}

// ServiceConfig identifies this deployment.
type ServiceConfig struct {
	Principal string
}

// StorageConfig names the shared bucket. The bucket holds the full
// persisted layout: source/, transcription/, processed/.
type StorageConfig struct {
	// OutputBucket is required; the cmd wiring refuses to start without it.
	OutputBucket string
}

// TranscribeConfig carries the job submission settings.
type TranscribeConfig struct {
	IdentifyMultipleLanguages bool
	MaxSpeakerLabels          int
}

// InferenceConfig carries the model id and sampling parameters for the
// synchronous summarization call.
type InferenceConfig struct {
	ModelID     string
	MaxTokens   int
	Temperature float64
	TopP        float64
	TopK        int
}

// KafkaConfig configures the optional job lifecycle event publisher.
// Disabled by default; when disabled the publisher runs in log-only mode.
type KafkaConfig struct {
	Enabled   bool
	Brokers   []string
	Topic     string
	Principal string
}

// ObservabilityConfig configures logging and the local metrics endpoint.
type ObservabilityConfig struct {
	LogLevel string
	Format   string // json, console
	HTTPPort string // used by the local runner only
}

// Load reads configuration from the environment.
func Load() *Configuration {
	principal := envOrDefault("SERVICE_PRINCIPAL", "svc-audio-summarizer")

	return &Configuration{
		Service: ServiceConfig{
			Principal: principal,
		},
		Storage: StorageConfig{
			OutputBucket: os.Getenv("OUTPUT_BUCKET"),
		},
		Transcribe: TranscribeConfig{
			IdentifyMultipleLanguages: envOrDefaultBool("TRANSCRIBE_IDENTIFY_LANGUAGES", true),
			MaxSpeakerLabels:          envOrDefaultInt("TRANSCRIBE_MAX_SPEAKERS", 10),
		},
		Inference: InferenceConfig{
			ModelID:     envOrDefault("MODEL_ID", "anthropic.claude-3-sonnet-20240229-v1:0"),
			MaxTokens:   envOrDefaultInt("MODEL_MAX_TOKENS", 2000),
			Temperature: envOrDefaultFloat("MODEL_TEMPERATURE", 1.0),
			TopP:        envOrDefaultFloat("MODEL_TOP_P", 0.999),
			TopK:        envOrDefaultInt("MODEL_TOP_K", 40),
		},
		Kafka: KafkaConfig{
			Enabled:   envOrDefaultBool("KAFKA_ENABLED", false),
			Brokers:   splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			Topic:     envOrDefault("KAFKA_TOPIC", "summarizer.jobs"),
			Principal: envOrDefault("KAFKA_PRINCIPAL", principal),
		},
		Observability: ObservabilityConfig{
			LogLevel: envOrDefault("LOG_LEVEL", "info"),
			Format:   envOrDefault("LOG_FORMAT", "json"),
			HTTPPort: envOrDefault("HTTP_PORT", "8080"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envOrDefaultFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func envOrDefaultBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return def
	}
	return b
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
