package httpapi

import (
	"net/http"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
)

const serviceName = "meeting-digest"

// Info describes the configured backends. It never carries credentials.
type Info struct {
	Service          string     `json:"service"`
	SupportedFormats []string   `json:"supported_formats"`
	MaxUploadBytes   int64      `json:"max_upload_bytes"`
	Components       Components `json:"components"`
}

type Components struct {
	STT            string `json:"stt"`
	LLM            string `json:"llm"`
	TextProcessing string `json:"text_processing"`
}

// NewInfo summarizes cfg for GET /api/v1/info.
func NewInfo(cfg *config.Config) Info {
	info := Info{
		Service:          serviceName,
		SupportedFormats: cfg.Audio.SupportedFormats,
		MaxUploadBytes:   cfg.Audio.MaxFileSizeBytes,
		Components:       Components{TextProcessing: "punkt sentence tokenizer"},
	}

	switch cfg.Transcription.Backend {
	case config.BackendWhisperCPP:
		info.Components.STT = "whisper.cpp " + filepath.Base(cfg.Transcription.Whisper.ModelPath)
	case config.BackendOpenAI:
		info.Components.STT = "openai-compatible " + cfg.Transcription.OpenAI.Model
	}

	switch cfg.LLM.Backend {
	case config.BackendGemini:
		info.Components.LLM = "gemini " + cfg.LLM.Gemini.Model
	case config.BackendOpenAI:
		info.Components.LLM = "openai-compatible " + cfg.LLM.OpenAI.Model
	}
	return info
}

func (h *handler) info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.about)
}
