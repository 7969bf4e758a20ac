// Package judge implements the judgment capability on top of an OpenAI
// chat-completion endpoint.
package judge

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/driftgate/driftgate/internal/contract"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when DRIFTGATE_OPENAI_MODEL is not set.
const DefaultModel = "gpt-4o-mini"

// OpenAIJudge talks to an OpenAI-compatible chat completion API. Any
// provider implementing the same wire format can be substituted via
// OPENAI_BASE_URL without touching the pipeline.
type OpenAIJudge struct {
	client *openai.Client
	model  string
}

var _ contract.Judge = &OpenAIJudge{} // Compile-time check

// NewOpenAIJudge builds a judge from environment configuration.
// OPENAI_API_KEY is required; DRIFTGATE_OPENAI_MODEL and OPENAI_BASE_URL
// are optional.
func NewOpenAIJudge() (*OpenAIJudge, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	model := os.Getenv("DRIFTGATE_OPENAI_MODEL")
	if model == "" {
		model = DefaultModel
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIJudge{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

// complete sends one prompt and returns the raw response text.
func (j *OpenAIJudge) complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := j.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       j.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// stripFences removes markdown code fences around a JSON payload.
func stripFences(content string) string {
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	return strings.TrimSpace(content)
}

// coerceScore turns whatever the provider put in a score field into a
// float, defaulting to zero for anything non-numeric.
func coerceScore(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}
