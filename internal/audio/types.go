package audio

import "time"

// Signal is mono audio as float samples in [-1, 1].
type Signal struct {
	Samples    []float32
	SampleRate int
}

// Duration returns the signal length.
func (s Signal) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(len(s.Samples)) * int64(time.Second) / int64(s.SampleRate))
}

// Seconds returns the signal length in seconds.
func (s Signal) Seconds() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// Chunk is a contiguous window of a parent Signal.
type Chunk struct {
	Index      int
	Offset     int // start position in the parent signal, in samples
	Samples    []float32
	SampleRate int
}

// OffsetSeconds returns the chunk start within the parent signal.
func (c Chunk) OffsetSeconds() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(c.Offset) / float64(c.SampleRate)
}

// End returns the exclusive end position in the parent signal, in samples.
func (c Chunk) End() int {
	return c.Offset + len(c.Samples)
}

// Info describes a loaded audio file.
type Info struct {
	Path            string  `json:"path"`
	DurationSeconds float64 `json:"duration_seconds"`
	DurationMinutes float64 `json:"duration_minutes"`
	FileSizeMB      float64 `json:"file_size_mb"`
	SampleRate      int     `json:"sample_rate"`
}
