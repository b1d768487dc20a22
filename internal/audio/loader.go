package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrInvalidInput marks audio files rejected before any processing.
var ErrInvalidInput = errors.New("invalid audio input")

// Validate checks that path exists, has a supported extension and fits the size limit.
func (l *implLoader) Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: audio file not found: %s", ErrInvalidInput, path)
		}
		return fmt.Errorf("%w: stat %s: %v", ErrInvalidInput, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidInput, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	supported := false
	for _, format := range l.cfg.Audio.SupportedFormats {
		if ext == strings.ToLower(format) {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: unsupported format %q, supported: %s",
			ErrInvalidInput, ext, strings.Join(l.cfg.Audio.SupportedFormats, ", "))
	}

	if limit := l.cfg.Audio.MaxFileSizeBytes; limit > 0 && info.Size() > limit {
		return fmt.Errorf("%w: file too large (%.1fGB), max %.1fGB",
			ErrInvalidInput, float64(info.Size())/(1<<30), float64(limit)/(1<<30))
	}

	return nil
}

// Load converts path to 16 kHz mono PCM with ffmpeg and decodes it.
func (l *implLoader) Load(ctx context.Context, path string) (*Signal, *Info, error) {
	if err := l.Validate(path); err != nil {
		return nil, nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat audio: %w", err)
	}

	l.logger.Info(ctx, "Loading audio from: %s", path)

	wavPath, err := l.extract(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	defer l.cleanupTempFile(ctx, wavPath)

	signal, err := ReadWAV(wavPath)
	if err != nil {
		return nil, nil, err
	}
	if len(signal.Samples) == 0 {
		return nil, nil, fmt.Errorf("%w: audio file is empty: %s", ErrInvalidInput, path)
	}
	if signal.SampleRate != l.cfg.Audio.SampleRate {
		return nil, nil, fmt.Errorf("decoded sample rate %d, want %d", signal.SampleRate, l.cfg.Audio.SampleRate)
	}
	if l.cfg.Audio.Normalize {
		Normalize(signal.Samples)
	}

	info := &Info{
		Path:            path,
		DurationSeconds: signal.Seconds(),
		DurationMinutes: signal.Seconds() / 60,
		FileSizeMB:      float64(stat.Size()) / (1 << 20),
		SampleRate:      signal.SampleRate,
	}

	l.logger.Info(ctx, "Audio loaded: %.1fs duration", info.DurationSeconds)
	return signal, info, nil
}

// extract resamples any supported input to a temporary 16 kHz mono WAV.
func (l *implLoader) extract(ctx context.Context, path string) (string, error) {
	if err := os.MkdirAll(l.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	tmp, err := os.CreateTemp(l.cfg.Paths.Temp, "audio-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp wav: %w", err)
	}
	wavPath := tmp.Name()
	tmp.Close()

	// -vn: drop video streams, -ac 1: mono, -c:a pcm_s16le: 16-bit PCM
	args := []string{
		"-i", path,
		"-vn",
		"-ar", strconv.Itoa(l.cfg.Audio.SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	if _, err := l.executor.Execute(ctx, l.cfg.FFmpeg.BinaryPath, args...); err != nil {
		l.cleanupTempFile(ctx, wavPath)
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	l.logger.Debug(ctx, "Audio extracted: %s", wavPath)
	return wavPath, nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (l *implLoader) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		l.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		l.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
