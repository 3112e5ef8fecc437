package transcriber

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"eval-server/internal/application/port/output"
	"eval-server/internal/domain/entity"
)

const sourceLanguage = "en"

// transcriptPaths is the ordered field lookup chain applied to the
// provider reply, whose shape is not guaranteed.
var transcriptPaths = [][]string{
	{"text"},
	{"transcript"},
	{"data", "text"},
}

type Transcriber struct {
	speech output.SpeechPort
	logger output.LoggerPort
}

func New(speech output.SpeechPort, logger output.LoggerPort) *Transcriber {
	return &Transcriber{
		speech: speech,
		logger: logger,
	}
}

// Transcribe sends the uploaded audio bytes to the speech provider
// and extracts the transcript text from its reply. Empty uploads are
// rejected before any upstream call.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, filename string) (*entity.TranscriptionResult, error) {
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio upload", entity.ErrInvalidInput)
	}

	if filename == "" {
		filename = fmt.Sprintf("upload-%s.webm", uuid.NewString())
	}

	reply, err := t.speech.Transcribe(ctx, output.TranscriptionRequest{
		Audio:    audio,
		Filename: filename,
		Language: sourceLanguage,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	text := transcriptText(reply)

	if t.logger != nil {
		t.logger.Info("Transcription completed",
			"filename", filename,
			"audio_bytes", len(audio),
			"text_length", len(text),
		)
	}

	return &entity.TranscriptionResult{Text: text}, nil
}

// transcriptText tries each known field location in order and falls
// back to serializing the whole reply, so the caller never receives
// an empty result for a reply the provider considered successful.
func transcriptText(reply map[string]any) string {
	for _, path := range transcriptPaths {
		if text, ok := lookupString(reply, path); ok {
			return text
		}
	}

	raw, err := json.Marshal(reply)
	if err != nil {
		return fmt.Sprint(reply)
	}
	return string(raw)
}

func lookupString(doc map[string]any, path []string) (string, bool) {
	var current any = doc
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = m[key]
		if !ok {
			return "", false
		}
	}

	text, ok := current.(string)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}
