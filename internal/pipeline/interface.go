package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
)

// Pipeline turns a meeting recording into a summary and output files.
type Pipeline interface {
	Process(ctx context.Context, req Request) (*Result, error)
}

// Request describes one meeting to process. An empty Title is replaced by
// "Meeting <date> <time>".
type Request struct {
	AudioPath      string
	Title          string
	SaveTranscript bool
}

// Result is owned by the caller once returned.
type Result struct {
	Title       string                  `json:"meeting_title"`
	Transcript  string                  `json:"transcript"`
	Summary     string                  `json:"summary"`
	Topics      []string                `json:"key_topics"`
	Decisions   []string                `json:"decisions"`
	ActionItems []summarizer.ActionItem `json:"action_items"`
	Metadata    Metadata                `json:"metadata"`
}
