package transcriber

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/segment"
)

// Transcriber converts one audio chunk to text. Segment times are relative to the chunk start.
type Transcriber interface {
	Transcribe(ctx context.Context, chunk audio.Chunk) (*Result, error)
}

// Result is the output of a transcription call. An empty Text with no error means silence.
type Result struct {
	Text     string            `json:"text"`
	Segments []segment.Segment `json:"segments"`
	Language string            `json:"language"`
}

// ChunkError reports a failed transcription of a single chunk.
type ChunkError struct {
	Index int
	Err   error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("transcribe chunk %d: %v", e.Index, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
