package output

import "context"

// SpeechPort transcribes audio through a remote provider. The reply
// is exposed as a generic JSON document because its shape is not
// guaranteed across providers; callers own field extraction.
type SpeechPort interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (map[string]any, error)
}

type TranscriptionRequest struct {
	Audio    []byte
	Filename string
	Language string
}
