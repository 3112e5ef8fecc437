package evaluator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"eval-server/internal/application/port/output"
	"eval-server/internal/domain/entity"
)

type stubChat struct {
	reply   string
	err     error
	calls   int
	lastReq output.ChatRequest
}

func (s *stubChat) Complete(_ context.Context, req output.ChatRequest) (string, error) {
	s.calls++
	s.lastReq = req
	return s.reply, s.err
}

func TestEvaluate_EndToEnd(t *testing.T) {
	chat := &stubChat{
		reply: `{"rubrics":[{"criterion":"Correctness","score":10,"feedback":"Correct"},{"criterion":"Clarity","score":9,"feedback":"Clear"}],"overall_score":9.5,"summary":"Good"}`,
	}
	e := New(chat, nil)

	result, err := e.Evaluate(context.Background(), entity.EvaluationRequest{
		Question: "What is 2+2?",
		Rubrics:  "Correctness (50), Clarity (50)",
		Response: "4",
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if result["overall_score"] != 95 {
		t.Errorf("overall_score = %v, want 95", result["overall_score"])
	}

	rubrics := result["rubrics"].([]any)
	correctness := rubrics[0].(map[string]any)
	clarity := rubrics[1].(map[string]any)

	if correctness["score"] != 100 {
		t.Errorf("Correctness score = %v, want 100", correctness["score"])
	}
	if clarity["score"] != 90 {
		t.Errorf("Clarity score = %v, want 90", clarity["score"])
	}
	if result["summary"] != "Good" {
		t.Errorf("summary = %v, want Good", result["summary"])
	}
}

func TestEvaluate_ExtractsJSONFromNoisyReply(t *testing.T) {
	chat := &stubChat{
		reply: "Here you go:\n```json\n{\"overall_score\": 8, \"rubrics\": [], \"summary\": \"ok\"}\n```\nThanks!",
	}
	e := New(chat, nil)

	result, err := e.Evaluate(context.Background(), entity.EvaluationRequest{
		Question: "q", Rubrics: "r", Response: "a",
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if result["overall_score"] != 80 {
		t.Errorf("overall_score = %v, want 80", result["overall_score"])
	}
}

func TestEvaluate_ModelOutputParseError(t *testing.T) {
	chat := &stubChat{reply: "This is not JSON at all"}
	e := New(chat, nil)

	_, err := e.Evaluate(context.Background(), entity.EvaluationRequest{
		Question: "q", Rubrics: "r", Response: "a",
	})
	if !errors.Is(err, entity.ErrModelOutput) {
		t.Errorf("expected ErrModelOutput, got %v", err)
	}
}

func TestEvaluate_UpstreamError(t *testing.T) {
	chat := &stubChat{err: errors.New("connection refused")}
	e := New(chat, nil)

	_, err := e.Evaluate(context.Background(), entity.EvaluationRequest{
		Question: "q", Rubrics: "r", Response: "a",
	})
	if !errors.Is(err, entity.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("upstream message lost: %v", err)
	}
}

func TestEvaluate_ChatRequestSettings(t *testing.T) {
	chat := &stubChat{reply: `{"overall_score": 50}`}
	e := New(chat, nil)

	_, err := e.Evaluate(context.Background(), entity.EvaluationRequest{
		Question: "What is DNS?", Rubrics: "Accuracy (100)", Response: "A naming system",
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if chat.calls != 1 {
		t.Errorf("expected exactly one chat call, got %d", chat.calls)
	}
	if chat.lastReq.Temperature != 0.3 {
		t.Errorf("temperature = %v, want 0.3", chat.lastReq.Temperature)
	}
	if chat.lastReq.MaxTokens != 2000 {
		t.Errorf("max tokens = %d, want 2000", chat.lastReq.MaxTokens)
	}
	if chat.lastReq.SystemPrompt != SystemPrompt {
		t.Error("system prompt not passed through")
	}
	if !strings.Contains(chat.lastReq.UserPrompt, "What is DNS?") {
		t.Error("prompt should contain the question")
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"prose around", "sure:\n{\"a\":1}\nbye", `{"a":1}`},
		{"no braces", "nothing here", "nothing here"},
		{"reversed braces", "}{", "}{"},
		{"only open brace", "{oops", "{oops"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.in); got != tc.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
