package transcriber

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

func openAIConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Transcription: config.TranscriptionConfig{
			Backend: config.BackendOpenAI,
			OpenAI:  config.OpenAIConfig{BaseURL: baseURL, APIKey: "test-key"},
		},
		Paths: config.PathsConfig{Temp: t.TempDir()},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return cfg
}

func TestOpenAITranscribe(t *testing.T) {
	var path, model, format string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		model = r.FormValue("model")
		format = r.FormValue("response_format")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"task": "transcribe",
			"language": "english",
			"text": "Hello team. Quick sync.",
			"segments": [
				{"id": 0, "start": 0.0, "end": 1.5, "text": " Hello team."},
				{"id": 1, "start": 1.5, "end": 3.0, "text": " Quick sync."}
			]
		}`))
	}))
	defer srv.Close()

	tr, err := New(openAIConfig(t, srv.URL+"/v1"), nil, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := tr.Transcribe(context.Background(), testChunk())
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if path != "/v1/audio/transcriptions" {
		t.Errorf("request path = %q, want %q", path, "/v1/audio/transcriptions")
	}
	if model != "whisper-1" {
		t.Errorf("request model = %q, want %q", model, "whisper-1")
	}
	if format != "verbose_json" {
		t.Errorf("request response_format = %q, want %q", format, "verbose_json")
	}
	if got.Language != "english" {
		t.Errorf("Transcribe() language = %q, want %q", got.Language, "english")
	}
	if len(got.Segments) != 2 || got.Segments[1].Text != "Quick sync." {
		t.Errorf("Transcribe() segments = %+v", got.Segments)
	}
}

func TestOpenAITranscribeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "model overloaded", "type": "server_error"}}`))
	}))
	defer srv.Close()

	tr, _ := New(openAIConfig(t, srv.URL+"/v1"), nil, logger.New("error"))
	if _, err := tr.Transcribe(context.Background(), testChunk()); err == nil {
		t.Error("Transcribe() error = nil, want error")
	}
}
