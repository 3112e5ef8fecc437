package input

import (
	"context"

	"eval-server/internal/domain/entity"
)

type Evaluator interface {
	Evaluate(ctx context.Context, req entity.EvaluationRequest) (entity.Evaluation, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (*entity.TranscriptionResult, error)
}
