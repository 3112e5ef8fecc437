package entity

import "errors"

// Error kinds surfaced to callers. Wrap with fmt.Errorf("%w: ...", kind)
// and match at the transport boundary with errors.Is.
var (
	// ErrInvalidInput marks a request rejected before any upstream call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream marks a failed call to the transcription or
	// chat-completion provider.
	ErrUpstream = errors.New("upstream service error")

	// ErrModelOutput marks a chat reply that could not be interpreted
	// as JSON after extraction. Distinct from ErrUpstream so operators
	// can tell prompting problems from infrastructure problems.
	ErrModelOutput = errors.New("model output is not valid JSON")
)
