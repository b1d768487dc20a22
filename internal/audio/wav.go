package audio

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcm16Max = 32768

// ReadWAV decodes a PCM WAV file and downmixes it to mono.
func ReadWAV(path string) (*Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("decode wav %s: not a valid PCM wav file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}

	channels := int(dec.NumChans)
	if channels <= 0 {
		channels = 1
	}
	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float32(int64(1) << (bitDepth - 1))

	frames := len(buf.Data) / channels
	samples := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += float32(buf.Data[i*channels+c])
		}
		samples[i] = sum / float32(channels) / scale
	}

	return &Signal{Samples: samples, SampleRate: int(dec.SampleRate)}, nil
}

// WriteWAV encodes samples as a 16-bit mono PCM WAV file.
func WriteWAV(path string, samples []float32, sampleRate int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		v := int(s * pcm16Max)
		if v > pcm16Max-1 {
			v = pcm16Max - 1
		}
		if v < -pcm16Max {
			v = -pcm16Max
		}
		data[i] = v
	}

	enc := wav.NewEncoder(out, sampleRate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		out.Close()
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		out.Close()
		return fmt.Errorf("finalize wav: %w", err)
	}
	return out.Close()
}

// Normalize scales samples in place so the loudest one has magnitude 1.
func Normalize(samples []float32) {
	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	if peak == 0 {
		return
	}
	for i := range samples {
		samples[i] /= peak
	}
}
