package output

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
)

const fileTimestamp = "20060102_150405"

type document struct {
	Title       string                  `json:"meeting_title"`
	Duration    float64                 `json:"duration"`
	Timestamp   string                  `json:"timestamp"`
	Summary     string                  `json:"summary"`
	Topics      []string                `json:"key_topics"`
	Decisions   []string                `json:"decisions"`
	ActionItems []summarizer.ActionItem `json:"action_items"`
	Metadata    documentMeta            `json:"metadata"`
}

type documentMeta struct {
	Language         string `json:"language"`
	NumSegments      int    `json:"num_segments"`
	ProcessingStages any    `json:"processing_stages"`
}

// Save writes summary_<ts>.json and summary_<ts>.txt, plus transcript_<ts>.txt and
// summary_<ts>.docx when enabled.
func (w *implWriter) Save(ctx context.Context, r Report) (*Files, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	ts := r.Timestamp.Format(fileTimestamp)
	doc := newDocument(r)
	files := &Files{}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	jsonPath := filepath.Join(w.dir, "summary_"+ts+".json")
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", jsonPath, err)
	}
	files.SummaryJSON = jsonPath

	txtPath := filepath.Join(w.dir, "summary_"+ts+".txt")
	if err := os.WriteFile(txtPath, []byte(formatText(doc)), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", txtPath, err)
	}
	files.SummaryTXT = txtPath

	if r.SaveTranscript && r.Transcript != "" {
		path := filepath.Join(w.dir, "transcript_"+ts+".txt")
		if err := os.WriteFile(path, []byte(r.Transcript), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		files.Transcript = path
	}

	if w.docx {
		path := filepath.Join(w.dir, "summary_"+ts+".docx")
		d := summarizer.Document{
			Title:   r.Title,
			Date:    r.Timestamp.Format("2006-01-02 15:04"),
			Summary: doc.summary(),
		}
		if r.SaveTranscript {
			d.Transcript = r.Transcript
		}
		// The Word copy is a convenience; JSON and text are the record.
		if err := summarizer.WriteDocx(d, path); err != nil {
			w.logger.Warn(ctx, "Failed to write %s: %v", path, err)
		} else {
			files.Docx = path
		}
	}

	w.logger.Info(ctx, "Outputs saved to %s: %d files", w.dir, files.Count())
	return files, nil
}

func newDocument(r Report) document {
	s := r.Summary
	if s == nil {
		s = &summarizer.Summary{}
	}
	doc := document{
		Title:       r.Title,
		Duration:    r.DurationMinutes,
		Timestamp:   r.Timestamp.Format("2006-01-02T15:04:05"),
		Summary:     s.Summary,
		Topics:      s.Topics,
		Decisions:   s.Decisions,
		ActionItems: s.ActionItems,
		Metadata: documentMeta{
			Language:         r.Language,
			NumSegments:      r.NumSegments,
			ProcessingStages: r.Stages,
		},
	}
	if doc.Topics == nil {
		doc.Topics = []string{}
	}
	if doc.Decisions == nil {
		doc.Decisions = []string{}
	}
	if doc.ActionItems == nil {
		doc.ActionItems = []summarizer.ActionItem{}
	}
	return doc
}

func (d document) summary() *summarizer.Summary {
	return &summarizer.Summary{
		Summary:     d.Summary,
		Topics:      d.Topics,
		Decisions:   d.Decisions,
		ActionItems: d.ActionItems,
	}
}
