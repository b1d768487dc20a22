package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/pkg/executor"
)

// New returns the backend selected by cfg.Transcription.Backend.
// No model or network resource is touched until the first Transcribe call.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcription.Backend {
	case config.BackendWhisperCPP:
		return newWhisperCPP(cfg, exec, log), nil
	case config.BackendOpenAI:
		return newOpenAI(cfg, log), nil
	default:
		return nil, fmt.Errorf("%w: unknown transcription backend %q", config.ErrInvalid, cfg.Transcription.Backend)
	}
}
