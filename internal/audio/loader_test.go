package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

// fakeFFmpeg writes a fixed WAV to the output path, which ffmpeg receives as its last argument.
type fakeFFmpeg struct {
	samples []float32
	err     error
	calls   int
}

func (f *fakeFFmpeg) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "", WriteWAV(args[len(args)-1], f.samples, testRate)
}

func (f *fakeFFmpeg) LookPath(name string) (string, error) {
	return name, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Transcription: config.TranscriptionConfig{Backend: config.BackendOpenAI},
		Paths:         config.PathsConfig{Temp: t.TempDir()},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return cfg
}

func writeFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidate(t *testing.T) {
	cfg := testConfig(t)
	cfg.Audio.MaxFileSizeBytes = 1024
	loader := New(cfg, &fakeFFmpeg{}, logger.New("error"))

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"supported mp3", writeFile(t, "meeting.mp3", 10), false},
		{"upper case extension", writeFile(t, "meeting.WAV", 10), false},
		{"missing file", filepath.Join(t.TempDir(), "missing.wav"), true},
		{"unsupported format", writeFile(t, "meeting.txt", 10), true},
		{"too large", writeFile(t, "meeting.flac", 2048), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg := testConfig(t)
	samples := make([]float32, 2*testRate)
	for i := range samples {
		samples[i] = 0.25
	}
	ff := &fakeFFmpeg{samples: samples}
	loader := New(cfg, ff, logger.New("error"))

	sig, info, err := loader.Load(context.Background(), writeFile(t, "meeting.mp3", 100))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if ff.calls != 1 {
		t.Errorf("ffmpeg calls = %d, want 1", ff.calls)
	}
	if len(sig.Samples) != len(samples) {
		t.Errorf("samples = %d, want %d", len(sig.Samples), len(samples))
	}
	if info.DurationSeconds != 2 {
		t.Errorf("DurationSeconds = %v, want 2", info.DurationSeconds)
	}
	if diff := sig.Samples[0] - 0.25; diff > 0.001 || diff < -0.001 {
		t.Errorf("sample = %v, want ~0.25", sig.Samples[0])
	}

	entries, _ := os.ReadDir(cfg.Paths.Temp)
	if len(entries) != 0 {
		t.Errorf("temp dir not cleaned up: %d entries left", len(entries))
	}
}

func TestLoadFFmpegFailure(t *testing.T) {
	cfg := testConfig(t)
	loader := New(cfg, &fakeFFmpeg{err: errors.New("exit status 1")}, logger.New("error"))

	if _, _, err := loader.Load(context.Background(), writeFile(t, "meeting.m4a", 10)); err == nil {
		t.Error("Load() should fail when ffmpeg fails")
	}

	entries, _ := os.ReadDir(cfg.Paths.Temp)
	if len(entries) != 0 {
		t.Errorf("temp dir not cleaned up: %d entries left", len(entries))
	}
}

func TestNormalize(t *testing.T) {
	samples := []float32{0.1, -0.5, 0.25}
	Normalize(samples)
	if samples[1] != -1 {
		t.Errorf("peak sample = %v, want -1", samples[1])
	}
	if samples[0] != 0.2 {
		t.Errorf("samples[0] = %v, want 0.2", samples[0])
	}

	silence := []float32{0, 0}
	Normalize(silence)
	if silence[0] != 0 {
		t.Errorf("silence changed: %v", silence)
	}
}
