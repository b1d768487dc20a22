package llm

import (
	"fmt"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

// New returns the backend selected by cfg.LLM.Backend. Clients are created on first use.
func New(cfg *config.Config, log logger.Logger) (Generator, error) {
	switch cfg.LLM.Backend {
	case config.BackendGemini:
		if len(cfg.LLM.Gemini.APIKeys) == 0 {
			return nil, fmt.Errorf("%w: gemini backend needs at least one API key", config.ErrInvalid)
		}
		return newGemini(cfg.LLM, log), nil
	case config.BackendOpenAI:
		return newOpenAI(cfg.LLM, log), nil
	default:
		return nil, fmt.Errorf("%w: unknown llm backend %q", config.ErrInvalid, cfg.LLM.Backend)
	}
}
