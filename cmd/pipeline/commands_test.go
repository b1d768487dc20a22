package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/pipeline"
)

func TestMask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "****"},
		{"sk-1234567890", "****7890"},
	}
	for _, tt := range tests {
		if got := mask(tt.in); got != tt.want {
			t.Errorf("mask(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"configuration", fmt.Errorf("load: %w", pipeline.ErrConfiguration), 3},
		{"input", fmt.Errorf("open: %w", pipeline.ErrInputValidation), 4},
		{"other", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRunInfoMasksSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.Transcription.Whisper.ModelPath = "models/ggml-base.en.bin"
	cfg.LLM.Gemini.APIKeys = []string{"gemini-secret-aaaa", "gemini-secret-bbbb"}
	cfg.LLM.OpenAI.APIKey = "openai-secret-cccc"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	var buf bytes.Buffer
	if err := runInfo(cfg, &buf); err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "gemini-secret") || strings.Contains(out, "openai-secret") {
		t.Errorf("runInfo() leaked a secret:\n%s", out)
	}
	if !strings.Contains(out, "****aaaa") {
		t.Errorf("runInfo() output missing masked key:\n%s", out)
	}
	if cfg.LLM.Gemini.APIKeys[0] != "gemini-secret-aaaa" {
		t.Error("runInfo() modified the caller's config")
	}
}
