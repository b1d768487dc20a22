package summarizer

import "context"

// Summarizer turns a transcript into a structured meeting summary.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (*Summary, error)
}

// Summary is the structured result of summarizing a transcript.
type Summary struct {
	Summary     string       `json:"summary"`
	Topics      []string     `json:"key_topics"`
	Decisions   []string     `json:"decisions"`
	ActionItems []ActionItem `json:"action_items"`
}

// ActionItem is a task extracted from the meeting. Owner and Deadline default to "TBD".
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// TooShortSummary is the placeholder text for transcripts with nothing to summarize.
const TooShortSummary = "Transcript too short to summarize"

func placeholder() *Summary {
	return &Summary{
		Summary:     TooShortSummary,
		Topics:      []string{},
		Decisions:   []string{},
		ActionItems: []ActionItem{},
	}
}
