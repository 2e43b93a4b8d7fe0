package ai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/hcp-crm/pkg/config"
)

// ErrMissingAPIKey is returned by NewGroqClient when no credential is configured
var ErrMissingAPIKey = errors.New("GROQ_API_KEY is not set")

// Chat roles accepted by Complete
const (
	RoleSystem = openai.ChatMessageRoleSystem
	RoleUser   = openai.ChatMessageRoleUser
)

// Message is one turn of a chat prompt
type Message struct {
	Role    string
	Content string
}

// GroqClient talks to Groq's OpenAI-compatible chat completions endpoint
type GroqClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewGroqClient creates a Groq client using values from the provided config
func NewGroqClient(cfg config.GroqConfig) (*GroqClient, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	// go-openai drops a zero temperature from the request body
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	return &GroqClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: temperature,
	}, nil
}

// Model returns the configured model name
func (g *GroqClient) Model() string {
	return g.model
}

// Complete sends the messages and returns the assistant content.
// The model is asked to answer with a single JSON object.
func (g *GroqClient) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
		Temperature: g.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return resp.Choices[0].Message.Content, nil
}
