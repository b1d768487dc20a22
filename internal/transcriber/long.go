package transcriber

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/segment"
)

// LongResult is the transcript of a whole signal on the global timeline.
type LongResult struct {
	Result
	Chunks       int `json:"chunks"`
	FailedChunks int `json:"failed_chunks"`
}

// TranscribeLong splits signal into overlapping chunks, transcribes them in order and
// rebases every segment onto the signal timeline using the chunk's start offset.
//
// In a multi-chunk run a failed chunk is logged and skipped, leaving a gap in the
// transcript. A single-chunk run returns the error.
func TranscribeLong(ctx context.Context, t Transcriber, signal audio.Signal, chunkDuration, overlap time.Duration, log logger.Logger) (*LongResult, error) {
	chunks, err := audio.Split(signal, chunkDuration, overlap)
	if err != nil {
		return nil, err
	}

	if len(chunks) > 1 {
		log.Info(ctx, "Long audio: %.1fs split into %d chunks", signal.Seconds(), len(chunks))
	}

	out := &LongResult{Chunks: len(chunks)}
	out.Segments = []segment.Segment{}
	texts := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		log.Info(ctx, "Transcribing chunk %d/%d", chunk.Index+1, len(chunks))
		res, err := t.Transcribe(ctx, chunk)
		if err != nil {
			cerr := &ChunkError{Index: chunk.Index, Err: err}
			if len(chunks) == 1 {
				return nil, cerr
			}
			log.Warn(ctx, "Continuing without chunk: %v", cerr)
			out.FailedChunks++
			continue
		}

		offset := chunk.OffsetSeconds()
		for _, seg := range res.Segments {
			out.Segments = append(out.Segments, seg.Shift(offset))
		}
		if text := strings.TrimSpace(res.Text); text != "" {
			texts = append(texts, text)
		}
		if out.Language == "" && res.Language != "" {
			out.Language = res.Language
		}
	}

	// Segments from the overlap region of chunk i+1 can start before the tail of chunk i.
	segment.SortByStart(out.Segments)

	if out.Language == "" {
		out.Language = "unknown"
	}
	out.Text = strings.Join(texts, " ")
	return out, nil
}
