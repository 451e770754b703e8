// Package bedrock provides an Amazon Bedrock inference.Invoker speaking the
// Anthropic Claude Messages API format.
package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"audio-summarizer-pipeline/internal/service/inference"
)

// anthropicVersion is required by Bedrock for the messages format.
const anthropicVersion = "bedrock-2023-05-31"

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type request struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	System           string    `json:"system"`
	Messages         []message `json:"messages"`
	Temperature      float64   `json:"temperature"`
	TopP             float64   `json:"top_p"`
	TopK             int       `json:"top_k"`
}

type response struct {
	Content []contentBlock `json:"content"`
}

// Invoker implements inference.Invoker using the Bedrock runtime.
type Invoker struct {
	client *bedrockruntime.Client
	params inference.Params
}

// New creates a Bedrock invoker with fixed sampling parameters.
func New(client *bedrockruntime.Client, params inference.Params) *Invoker {
	return &Invoker{client: client, params: params}
}

// Invoke sends the prompt as the single user message and returns the first
// text block of the model's response.
func (i *Invoker) Invoke(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(request{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        i.params.MaxTokens,
		System:           i.params.System,
		Messages: []message{
			{
				Role:    "user",
				Content: []contentBlock{{Type: "text", Text: prompt}},
			},
		},
		Temperature: i.params.Temperature,
		TopP:        i.params.TopP,
		TopK:        i.params.TopK,
	})
	if err != nil {
		return "", fmt.Errorf("marshal model request: %w", err)
	}

	out, err := i.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(i.params.ModelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", err
	}

	var resp response
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("unmarshal model response: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("model %s returned no content", i.params.ModelID)
	}
	return resp.Content[0].Text, nil
}
