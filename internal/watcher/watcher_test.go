package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

func TestIsAudioFile(t *testing.T) {
	w := &implWatcher{exts: map[string]struct{}{".wav": {}, ".mp3": {}}}

	tests := []struct {
		path string
		want bool
	}{
		{"/in/standup.wav", true},
		{"/in/STANDUP.MP3", true},
		{"/in/notes.txt", false},
		{"/in/.standup.wav", false},
		{"/in/noext", false},
	}

	for _, tt := range tests {
		if got := w.isAudioFile(tt.path); got != tt.want {
			t.Errorf("isAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestStartDispatchesNewAudio(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 4)
	handler := func(ctx context.Context, path string) error {
		seen <- path
		return nil
	}

	w, err := New(Options{InputDir: dir, Extensions: []string{".wav"}, SettleDelay: time.Millisecond}, handler, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "meeting.wav")
	if err := os.WriteFile(want, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-seen:
		if got != want {
			t.Errorf("handler got %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler not called")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want %v", err, context.Canceled)
	}
	if len(seen) != 0 {
		t.Errorf("handler called for %q", <-seen)
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(Options{InputDir: filepath.Join(t.TempDir(), "missing")}, nil, logger.New("error"))
	if err == nil {
		t.Error("New() error = nil, want error")
	}
}

func TestArchiveAfter(t *testing.T) {
	in := t.TempDir()
	archived := filepath.Join(t.TempDir(), "archived")

	ok := filepath.Join(in, "ok.wav")
	bad := filepath.Join(in, "bad.wav")
	for _, p := range []string{ok, bad} {
		if err := os.WriteFile(p, []byte("audio"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	boom := errors.New("transcription failed")
	handler := ArchiveAfter(func(ctx context.Context, path string) error {
		if path == bad {
			return boom
		}
		return nil
	}, archived, logger.New("error"))

	if err := handler(context.Background(), ok); err != nil {
		t.Fatalf("handler(ok) error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(archived, "ok.wav")); err != nil {
		t.Errorf("ok.wav not archived: %v", err)
	}
	if _, err := os.Stat(ok); !os.IsNotExist(err) {
		t.Errorf("ok.wav still in input dir")
	}

	if err := handler(context.Background(), bad); !errors.Is(err, boom) {
		t.Errorf("handler(bad) error = %v, want %v", err, boom)
	}
	if _, err := os.Stat(bad); err != nil {
		t.Errorf("bad.wav moved after failure: %v", err)
	}
}
