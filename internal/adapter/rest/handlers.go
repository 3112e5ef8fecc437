package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"eval-server/internal/domain/entity"
)

type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status        string `json:"status"`
	APIConfigured bool   `json:"api_configured"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "AI Evaluation Tool API is running"})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "healthy",
		APIConfigured: s.apiConfigured,
	})
}

func (s *Server) transcribe(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("audio")
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: missing audio file: %v", entity.ErrInvalidInput, err))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: read audio upload: %v", entity.ErrInvalidInput, err))
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	result, err := s.transcriber.Transcribe(ctx, audio, header.Filename)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: parse form: %v", entity.ErrInvalidInput, err))
		return
	}

	req := entity.EvaluationRequest{
		Question: r.PostFormValue("question"),
		Rubrics:  r.PostFormValue("rubrics"),
		Response: r.PostFormValue("response"),
	}
	if req.Question == "" || req.Rubrics == "" || req.Response == "" {
		s.writeError(w, r, fmt.Errorf("%w: question, rubrics and response form fields are required", entity.ErrInvalidInput))
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	result, err := s.evaluator.Evaluate(ctx, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
