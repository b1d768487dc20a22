package transcriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/segment"
	"github.com/nguyentantai21042004/meeting-digest/pkg/executor"
)

type whisperCPP struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger

	mu     sync.Mutex
	binary string // resolved on first use
}

func newWhisperCPP(cfg *config.Config, exec executor.Executor, log logger.Logger) *whisperCPP {
	return &whisperCPP{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// whisperOutput is the subset of whisper.cpp's -oj output we read.
type whisperOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func (w *whisperCPP) Transcribe(ctx context.Context, chunk audio.Chunk) (*Result, error) {
	binary, err := w.load(ctx)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(w.cfg.Paths.Temp, "chunk-*.wav")
	if err != nil {
		return nil, fmt.Errorf("create chunk wav: %w", err)
	}
	wavPath := tmp.Name()
	tmp.Close()
	prefix := strings.TrimSuffix(wavPath, ".wav")
	jsonPath := prefix + ".json"
	defer w.cleanup(ctx, wavPath)
	defer w.cleanup(ctx, jsonPath)

	if err := audio.WriteWAV(wavPath, chunk.Samples, chunk.SampleRate); err != nil {
		return nil, err
	}

	wcfg := w.cfg.Transcription.Whisper
	// -oj: JSON output with per-segment offsets in milliseconds
	// -of: output file prefix, whisper appends .json
	args := []string{
		"-m", wcfg.ModelPath,
		"-f", wavPath,
		"-oj",
		"-of", prefix,
		"-l", w.cfg.Transcription.Language,
		"-t", strconv.Itoa(wcfg.Threads),
	}
	if w.cfg.Transcription.Task == "translate" {
		args = append(args, "--translate")
	}
	if wcfg.Prompt != "" {
		args = append(args, "--prompt", wcfg.Prompt)
	}

	w.logger.Debug(ctx, "Running whisper on chunk %d (%.1fs)", chunk.Index,
		float64(len(chunk.Samples))/float64(chunk.SampleRate))
	if _, err := w.executor.Execute(ctx, binary, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	return parseWhisperJSON(data)
}

// load resolves the binary and checks the model file. Failures are not cached.
func (w *whisperCPP) load(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.binary != "" {
		return w.binary, nil
	}

	wcfg := w.cfg.Transcription.Whisper
	if _, err := os.Stat(wcfg.ModelPath); err != nil {
		return "", fmt.Errorf("whisper model %s: %w", wcfg.ModelPath, err)
	}
	binary, err := w.executor.LookPath(wcfg.BinaryPath)
	if err != nil {
		return "", fmt.Errorf("whisper binary %s: %w", wcfg.BinaryPath, err)
	}

	w.logger.Info(ctx, "Whisper ready: binary=%s model=%s", binary, wcfg.ModelPath)
	w.binary = binary
	return binary, nil
}

func (w *whisperCPP) cleanup(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		w.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}

func parseWhisperJSON(data []byte) (*Result, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode whisper output: %w", err)
	}

	result := &Result{
		Language: out.Result.Language,
		Segments: make([]segment.Segment, 0, len(out.Transcription)),
	}
	texts := make([]string, 0, len(out.Transcription))
	for _, item := range out.Transcription {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		result.Segments = append(result.Segments, segment.Segment{
			Start: float64(item.Offsets.From) / 1000,
			End:   float64(item.Offsets.To) / 1000,
			Text:  text,
		})
		texts = append(texts, text)
	}
	result.Text = strings.Join(texts, " ")
	return result, nil
}
