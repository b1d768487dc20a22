package pipeline

import (
	"fmt"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/config"
)

var (
	// ErrConfiguration matches settings that can never produce a valid run.
	ErrConfiguration = config.ErrInvalid
	// ErrInputValidation matches audio files rejected before any stage runs.
	ErrInputValidation = audio.ErrInvalidInput
)

// StageError reports the stage that aborted a run.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
