package rest

import (
	"context"
	"errors"
	"net/http"

	"eval-server/internal/domain/entity"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

// writeError maps an error kind to a status and a stable code.
// Unexpected errors are logged with full context but reported with a
// generic message only.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{apiError{
			Code:    "invalid_input",
			Message: err.Error(),
		}})
	case errors.Is(err, entity.ErrModelOutput):
		writeJSON(w, http.StatusBadGateway, errorResponse{apiError{
			Code:    "model_output_parse_error",
			Message: err.Error(),
		}})
	case errors.Is(err, entity.ErrUpstream), errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusBadGateway, errorResponse{apiError{
			Code:    "upstream_service_error",
			Message: err.Error(),
		}})
	default:
		if s.logger != nil {
			s.logger.Error("Unexpected error", "path", r.URL.Path, "error", err)
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{apiError{
			Code:    "unexpected_error",
			Message: "internal server error",
		}})
	}
}
