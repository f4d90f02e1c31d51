package textgen

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	model       = openai.GPT3Dot5Turbo
	temperature = 0.7
	maxTokens   = 700

	// systemPrompt fixes the assistant persona for every generation
	systemPrompt = "You are a professional academic writing assistant."
)

// ErrMissingAPIKey is returned when no provider credential is configured
var ErrMissingAPIKey = errors.New("missing OPENAI_API_KEY")

// OpenAIGenerator produces SOP text via the OpenAI chat completions API.
// One synchronous attempt per call; no retries.
type OpenAIGenerator struct {
	client *openai.Client
}

// NewOpenAIGenerator creates a generator. A nil client is returned inside the
// generator when apiKey is empty; Generate then fails fast without a network
// call.
func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	g := &OpenAIGenerator{}
	if apiKey != "" {
		g.client = openai.NewClient(apiKey)
	}
	return g
}

// Generate issues a single chat-completion request and returns the trimmed text
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", ErrMissingAPIKey
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("provider returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
