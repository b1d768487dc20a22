package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
)

func testReport() Report {
	return Report{
		Title:           "Design review",
		Timestamp:       time.Date(2026, 3, 4, 9, 5, 7, 0, time.UTC),
		DurationMinutes: 42.5,
		Language:        "en",
		NumSegments:     12,
		Stages:          map[string]float64{"transcription": 12.5},
		Summary: &summarizer.Summary{
			Summary:     "We chose option B.",
			Topics:      []string{"Storage", "Latency"},
			Decisions:   []string{"Option B"},
			ActionItems: []summarizer.ActionItem{{Task: "Write RFC", Owner: "Ana", Deadline: "TBD"}},
		},
		Transcript:     "[00:00] Let's start.",
		SaveTranscript: true,
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := New(dir, false, logger.New("error"))

	files, err := w.Save(context.Background(), testReport())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if want := filepath.Join(dir, "summary_20260304_090507.json"); files.SummaryJSON != want {
		t.Errorf("Save() json path = %q, want %q", files.SummaryJSON, want)
	}
	if want := filepath.Join(dir, "transcript_20260304_090507.txt"); files.Transcript != want {
		t.Errorf("Save() transcript path = %q, want %q", files.Transcript, want)
	}
	if files.Docx != "" {
		t.Errorf("Save() docx path = %q, want empty", files.Docx)
	}
	if files.Count() != 3 {
		t.Errorf("Files.Count() = %d, want 3", files.Count())
	}

	data, err := os.ReadFile(files.SummaryJSON)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("summary json invalid: %v", err)
	}
	for _, key := range []string{"meeting_title", "duration", "timestamp", "summary", "key_topics", "decisions", "action_items", "metadata"} {
		if _, ok := got[key]; !ok {
			t.Errorf("summary json missing %q", key)
		}
	}
	meta := got["metadata"].(map[string]any)
	if meta["language"] != "en" || meta["num_segments"] != float64(12) {
		t.Errorf("summary json metadata = %v", meta)
	}

	transcript, _ := os.ReadFile(files.Transcript)
	if string(transcript) != "[00:00] Let's start." {
		t.Errorf("transcript file = %q", transcript)
	}
}

func TestSaveSkipsTranscript(t *testing.T) {
	r := testReport()
	r.SaveTranscript = false

	files, err := New(t.TempDir(), false, logger.New("error")).Save(context.Background(), r)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if files.Transcript != "" {
		t.Errorf("Save() wrote transcript %q, want none", files.Transcript)
	}
}

func TestSaveDocx(t *testing.T) {
	files, err := New(t.TempDir(), true, logger.New("error")).Save(context.Background(), testReport())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasSuffix(files.Docx, "summary_20260304_090507.docx") {
		t.Errorf("Save() docx path = %q", files.Docx)
	}
	if _, err := os.Stat(files.Docx); err != nil {
		t.Errorf("docx not written: %v", err)
	}
}

func TestFormatText(t *testing.T) {
	text := formatText(newDocument(testReport()))

	wants := []string{
		"MEETING SUMMARY: Design review",
		"Date/Time: 2026-03-04T09:05:07",
		"Duration: 42.5 minutes",
		"EXECUTIVE SUMMARY\n" + lightRule + "\nWe chose option B.",
		"1. Storage\n2. Latency",
		"1. Option B",
		"1. Write RFC\n   Owner: Ana\n   Deadline: TBD",
	}
	for _, want := range wants {
		if !strings.Contains(text, want) {
			t.Errorf("formatText() missing %q", want)
		}
	}
}

func TestFormatTextEmptySummary(t *testing.T) {
	r := testReport()
	r.Summary = nil

	text := formatText(newDocument(r))
	if !strings.Contains(text, "No summary available") || !strings.Contains(text, "No action items identified.") {
		t.Errorf("formatText() = %q, want empty placeholders", text)
	}
}
