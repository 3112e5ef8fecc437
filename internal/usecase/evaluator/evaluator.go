package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"eval-server/internal/application/port/output"
	"eval-server/internal/domain/entity"
)

const (
	chatTemperature = 0.3
	chatMaxTokens   = 2000
)

type Evaluator struct {
	llm    output.ChatPort
	logger output.LoggerPort
}

func New(llm output.ChatPort, logger output.LoggerPort) *Evaluator {
	return &Evaluator{
		llm:    llm,
		logger: logger,
	}
}

// Evaluate builds the instruction prompt, asks the chat model to
// score the response against the rubrics, and normalizes every score
// in the reply onto the 0-100 scale.
func (e *Evaluator) Evaluate(ctx context.Context, req entity.EvaluationRequest) (entity.Evaluation, error) {
	prompt := BuildPrompt(req.Question, req.Rubrics, req.Response)

	raw, err := e.llm.Complete(ctx, output.ChatRequest{
		SystemPrompt: SystemPrompt,
		UserPrompt:   prompt,
		Temperature:  chatTemperature,
		MaxTokens:    chatMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	evaluation, err := parseEvaluation(raw)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("Failed to parse evaluation reply", "error", err, "replyLength", len(raw))
		}
		return nil, err
	}

	evaluation.Normalize()

	if e.logger != nil {
		e.logger.Info("Evaluation completed",
			"overall_score", evaluation["overall_score"],
			"question_length", len(req.Question),
		)
	}

	return evaluation, nil
}

func parseEvaluation(raw string) (entity.Evaluation, error) {
	candidate := extractJSON(raw)

	var evaluation entity.Evaluation
	if err := json.Unmarshal([]byte(candidate), &evaluation); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrModelOutput, err)
	}

	return evaluation, nil
}

// extractJSON slices the substring from the first '{' to the last '}'.
// That tolerates replies wrapped in prose or markdown fences without
// fence-specific matching. When no such slice exists the raw text is
// returned as-is and the parse error surfaces downstream.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start == -1 || end == -1 || start >= end {
		return raw
	}

	return raw[start : end+1]
}
