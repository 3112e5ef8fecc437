package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"eval-server/internal/application/port/output"
)

var (
	_ output.ChatPort   = (*GroqAdapter)(nil)
	_ output.SpeechPort = (*GroqAdapter)(nil)
)

// GroqAdapter talks to Groq's OpenAI-compatible API for both chat
// completions and audio transcription.
type GroqAdapter struct {
	client             *openai.Client
	chatModel          string
	transcriptionModel string
	logger             output.LoggerPort
}

type Config struct {
	APIKey             string
	BaseURL            string
	ChatModel          string
	TranscriptionModel string
	Logger             output.LoggerPort
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:             apiKey,
		BaseURL:            "https://api.groq.com/openai/v1",
		ChatModel:          "llama-3.3-70b-versatile",
		TranscriptionModel: "whisper-large-v3",
	}
}

type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.logger != nil {
		t.logger.Debug("HTTP Request",
			"method", req.Method,
			"url", req.URL.String(),
		)
	}

	resp, err := t.base.RoundTrip(req)

	if t.logger != nil && resp != nil {
		t.logger.Debug("HTTP Response",
			"status", resp.Status,
			"statusCode", resp.StatusCode,
		)
	}

	return resp, err
}

func NewGroqAdapter(cfg Config) *GroqAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL

	if cfg.Logger != nil {
		config.HTTPClient = &http.Client{
			Transport: &loggingTransport{
				base:   http.DefaultTransport,
				logger: cfg.Logger,
			},
		}
	}

	return &GroqAdapter{
		client:             openai.NewClientWithConfig(config),
		chatModel:          cfg.ChatModel,
		transcriptionModel: cfg.TranscriptionModel,
		logger:             cfg.Logger,
	}
}

func (a *GroqAdapter) Complete(ctx context.Context, req output.ChatRequest) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Transcribe sends the audio bytes from an in-memory reader; no file
// ever touches disk. The SDK reply is flattened into a generic JSON
// document so callers stay independent of the provider's field names.
func (a *GroqAdapter) Transcribe(ctx context.Context, req output.TranscriptionRequest) (map[string]any, error) {
	resp, err := a.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    a.transcriptionModel,
		Reader:   bytes.NewReader(req.Audio),
		FilePath: req.Filename,
		Format:   openai.AudioResponseFormatJSON,
		Language: req.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode transcription reply: %w", err)
	}

	var reply map[string]any
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("decode transcription reply: %w", err)
	}

	return reply, nil
}
