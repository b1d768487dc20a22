package output

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
)

// Writer persists a finished meeting summary.
type Writer interface {
	Save(ctx context.Context, report Report) (*Files, error)
}

// Report is the content written for one meeting.
type Report struct {
	Title           string
	Timestamp       time.Time
	DurationMinutes float64
	Language        string
	NumSegments     int
	Stages          any // per-stage timings, serialized as-is
	Summary         *summarizer.Summary
	Transcript      string // formatted transcript, written only when SaveTranscript is set
	SaveTranscript  bool
}

// Files lists the paths that were written. Optional outputs are empty when skipped.
type Files struct {
	SummaryJSON string `json:"summary_json"`
	SummaryTXT  string `json:"summary_txt"`
	Transcript  string `json:"transcript,omitempty"`
	Docx        string `json:"summary_docx,omitempty"`
}

// Count returns the number of files written.
func (f Files) Count() int {
	n := 0
	for _, p := range []string{f.SummaryJSON, f.SummaryTXT, f.Transcript, f.Docx} {
		if p != "" {
			n++
		}
	}
	return n
}
