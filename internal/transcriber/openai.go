package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/segment"
)

// openAITranscriber calls an OpenAI-compatible /audio endpoint.
type openAITranscriber struct {
	cfg    *config.Config
	logger logger.Logger

	mu     sync.Mutex
	client *openai.Client
}

func newOpenAI(cfg *config.Config, log logger.Logger) *openAITranscriber {
	return &openAITranscriber{cfg: cfg, logger: log}
}

func (o *openAITranscriber) getClient(ctx context.Context) *openai.Client {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.client == nil {
		ocfg := o.cfg.Transcription.OpenAI
		clientCfg := openai.DefaultConfig(ocfg.APIKey)
		if ocfg.BaseURL != "" {
			clientCfg.BaseURL = ocfg.BaseURL
		}
		o.client = openai.NewClientWithConfig(clientCfg)
		o.logger.Info(ctx, "OpenAI transcription client ready: model=%s", ocfg.Model)
	}
	return o.client
}

func (o *openAITranscriber) Transcribe(ctx context.Context, chunk audio.Chunk) (*Result, error) {
	client := o.getClient(ctx)

	tmp, err := os.CreateTemp(o.cfg.Paths.Temp, "chunk-*.wav")
	if err != nil {
		return nil, fmt.Errorf("create chunk wav: %w", err)
	}
	wavPath := tmp.Name()
	tmp.Close()
	defer func() {
		if err := os.Remove(wavPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			o.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", wavPath, err)
		}
	}()

	if err := audio.WriteWAV(wavPath, chunk.Samples, chunk.SampleRate); err != nil {
		return nil, err
	}

	req := openai.AudioRequest{
		Model:    o.cfg.Transcription.OpenAI.Model,
		FilePath: wavPath,
		Prompt:   o.cfg.Transcription.Whisper.Prompt,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	var resp openai.AudioResponse
	if o.cfg.Transcription.Task == "translate" {
		resp, err = client.CreateTranslation(ctx, req)
	} else {
		req.Language = o.cfg.Transcription.Language
		resp, err = client.CreateTranscription(ctx, req)
	}
	if err != nil {
		return nil, fmt.Errorf("openai transcribe: %w", err)
	}

	result := &Result{
		Text:     strings.TrimSpace(resp.Text),
		Language: resp.Language,
		Segments: make([]segment.Segment, 0, len(resp.Segments)),
	}
	for _, s := range resp.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		result.Segments = append(result.Segments, segment.Segment{Start: s.Start, End: s.End, Text: text})
	}
	return result, nil
}
