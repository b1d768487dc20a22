package audio

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOverlap is returned when the overlap leaves no forward progress between chunks.
var ErrInvalidOverlap = errors.New("overlap must be shorter than chunk duration")

// Split cuts signal into windows of chunkDuration that overlap by overlap.
//
// A signal no longer than chunkDuration yields one chunk covering all of it.
// Otherwise windows start every chunkDuration-overlap and the last one is
// clamped to the end of the signal, so the result has
// ceil((len - overlapSamples) / strideSamples) chunks.
func Split(signal Signal, chunkDuration, overlap time.Duration) ([]Chunk, error) {
	if signal.SampleRate <= 0 {
		return nil, fmt.Errorf("split audio: invalid sample rate %d", signal.SampleRate)
	}
	if chunkDuration <= 0 {
		return nil, fmt.Errorf("split audio: chunk duration %s: %w", chunkDuration, ErrInvalidOverlap)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("split audio: negative overlap %s: %w", overlap, ErrInvalidOverlap)
	}

	total := len(signal.Samples)
	chunkSamples := samplesFor(chunkDuration, signal.SampleRate)

	if total <= chunkSamples {
		return []Chunk{{
			Index:      0,
			Offset:     0,
			Samples:    signal.Samples,
			SampleRate: signal.SampleRate,
		}}, nil
	}

	stride := chunkSamples - samplesFor(overlap, signal.SampleRate)
	if stride <= 0 {
		return nil, fmt.Errorf("split audio: overlap %s, chunk %s: %w", overlap, chunkDuration, ErrInvalidOverlap)
	}

	chunks := make([]Chunk, 0, (total+stride-1)/stride)
	for start := 0; start < total; start += stride {
		end := min(start+chunkSamples, total)
		chunks = append(chunks, Chunk{
			Index:      len(chunks),
			Offset:     start,
			Samples:    signal.Samples[start:end],
			SampleRate: signal.SampleRate,
		})
		// the remainder is already inside this window
		if end == total {
			break
		}
	}

	return chunks, nil
}

func samplesFor(d time.Duration, sampleRate int) int {
	return int(int64(d) * int64(sampleRate) / int64(time.Second))
}
