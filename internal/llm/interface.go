package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when a backend answers without any candidate text.
// A backend that generated an empty string returns "" and no error.
var ErrEmptyResponse = errors.New("empty response from language model")

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}
