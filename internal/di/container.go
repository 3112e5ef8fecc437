package di

import (
	"fmt"

	"eval-server/internal/application/port/input"
	"eval-server/internal/application/port/output"
	"eval-server/internal/infrastructure/llm/groq"
	"eval-server/internal/infrastructure/logger"
	"eval-server/internal/usecase/evaluator"
	"eval-server/internal/usecase/transcriber"
)

type Container struct {
	Logger        output.LoggerPort
	Evaluator     input.Evaluator
	Transcriber   input.Transcriber
	APIConfigured bool
}

type Config struct {
	APIKey             string
	BaseURL            string
	ChatModel          string
	TranscriptionModel string
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	groqCfg := groq.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		groqCfg.BaseURL = cfg.BaseURL
	}
	if cfg.ChatModel != "" {
		groqCfg.ChatModel = cfg.ChatModel
	}
	if cfg.TranscriptionModel != "" {
		groqCfg.TranscriptionModel = cfg.TranscriptionModel
	}
	groqCfg.Logger = log

	llm := groq.NewGroqAdapter(groqCfg)

	return &Container{
		Logger:        log,
		Evaluator:     evaluator.New(llm, log),
		Transcriber:   transcriber.New(llm, log),
		APIConfigured: cfg.APIKey != "",
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
