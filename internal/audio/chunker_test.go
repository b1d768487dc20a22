package audio

import (
	"errors"
	"testing"
	"time"
)

const testRate = 16000

func signalOf(seconds int) Signal {
	return Signal{Samples: make([]float32, seconds*testRate), SampleRate: testRate}
}

func TestSplitShortSignal(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
	}{
		{"shorter than chunk", 60},
		{"exactly chunk duration", 900},
		{"empty", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := signalOf(tt.seconds)
			chunks, err := Split(sig, 900*time.Second, 30*time.Second)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if len(chunks) != 1 {
				t.Fatalf("Split() returned %d chunks, want 1", len(chunks))
			}
			if chunks[0].Offset != 0 || len(chunks[0].Samples) != len(sig.Samples) {
				t.Errorf("chunk = [%d, %d), want whole signal", chunks[0].Offset, chunks[0].End())
			}
		})
	}
}

func TestSplitFortyMinuteMeeting(t *testing.T) {
	sig := signalOf(40 * 60)
	chunks, err := Split(sig, 900*time.Second, 30*time.Second)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	wantOffsets := []int{0, 870 * testRate, 1740 * testRate}
	if len(chunks) != len(wantOffsets) {
		t.Fatalf("Split() returned %d chunks, want %d", len(chunks), len(wantOffsets))
	}
	for i, want := range wantOffsets {
		if chunks[i].Offset != want {
			t.Errorf("chunk %d offset = %d, want %d", i, chunks[i].Offset, want)
		}
		if chunks[i].Index != i {
			t.Errorf("chunk %d index = %d", i, chunks[i].Index)
		}
	}
	if last := chunks[len(chunks)-1]; last.End() != len(sig.Samples) {
		t.Errorf("last chunk end = %d, want %d", last.End(), len(sig.Samples))
	}
	if got := chunks[1].OffsetSeconds(); got != 870 {
		t.Errorf("OffsetSeconds() = %v, want 870", got)
	}
}

func TestSplitCoverageAndCount(t *testing.T) {
	tests := []struct {
		name    string
		samples int
		chunk   time.Duration
		overlap time.Duration
	}{
		{"exact multiple of stride", 10*testRate + 2*testRate, 4 * time.Second, time.Second},
		{"tail inside overlap", 7 * testRate, 4 * time.Second, time.Second},
		{"one sample past chunk", 4*testRate + 1, 4 * time.Second, time.Second},
		{"zero overlap", 9 * testRate, 4 * time.Second, 0},
		{"odd length", 123457, 3 * time.Second, 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Signal{Samples: make([]float32, tt.samples), SampleRate: testRate}
			chunks, err := Split(sig, tt.chunk, tt.overlap)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}

			chunkSamples := samplesFor(tt.chunk, testRate)
			overlapSamples := samplesFor(tt.overlap, testRate)
			stride := chunkSamples - overlapSamples

			wantCount := (tt.samples - overlapSamples + stride - 1) / stride
			if len(chunks) != wantCount {
				t.Errorf("Split() returned %d chunks, want %d", len(chunks), wantCount)
			}

			if chunks[0].Offset != 0 {
				t.Errorf("first chunk offset = %d, want 0", chunks[0].Offset)
			}
			for i := 1; i < len(chunks); i++ {
				prev, cur := chunks[i-1], chunks[i]
				if cur.Offset > prev.End() {
					t.Errorf("gap between chunk %d and %d", i-1, i)
				}
				if got := prev.End() - cur.Offset; got != overlapSamples {
					t.Errorf("overlap between chunk %d and %d = %d, want %d", i-1, i, got, overlapSamples)
				}
			}
			if last := chunks[len(chunks)-1]; last.End() != tt.samples {
				t.Errorf("last chunk end = %d, want %d", last.End(), tt.samples)
			}
		})
	}
}

func TestSplitDeterministic(t *testing.T) {
	sig := signalOf(100)
	a, _ := Split(sig, 30*time.Second, 5*time.Second)
	b, _ := Split(sig, 30*time.Second, 5*time.Second)
	if len(a) != len(b) {
		t.Fatalf("chunk counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Offset != b[i].Offset || len(a[i].Samples) != len(b[i].Samples) {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestSplitRejectsNonPositiveStride(t *testing.T) {
	tests := []struct {
		name    string
		chunk   time.Duration
		overlap time.Duration
	}{
		{"overlap equals chunk", 10 * time.Second, 10 * time.Second},
		{"overlap exceeds chunk", 10 * time.Second, 20 * time.Second},
		{"zero chunk", 0, 0},
		{"negative overlap", 10 * time.Second, -time.Second},
		{"negative overlap on a short signal", 120 * time.Second, -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(signalOf(60), tt.chunk, tt.overlap)
			if !errors.Is(err, ErrInvalidOverlap) {
				t.Errorf("Split() error = %v, want ErrInvalidOverlap", err)
			}
		})
	}
}

func TestSplitZeroOverlap(t *testing.T) {
	chunks, err := Split(signalOf(25), 10*time.Second, 0)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	wantOffsets := []int{0, 10 * testRate, 20 * testRate}
	if len(chunks) != len(wantOffsets) {
		t.Fatalf("Split() returned %d chunks, want %d", len(chunks), len(wantOffsets))
	}
	for i, c := range chunks {
		if c.Offset != wantOffsets[i] {
			t.Errorf("chunk %d Offset = %d, want %d", i, c.Offset, wantOffsets[i])
		}
	}
	if got := len(chunks[2].Samples); got != 5*testRate {
		t.Errorf("last chunk has %d samples, want %d", got, 5*testRate)
	}
}
