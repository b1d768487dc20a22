package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Summarize sends the summary, topics, decisions and action item prompts over the first
// WindowChars characters of transcript. Transcripts shorter than MinTranscriptChars
// return the placeholder without calling the model.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (*Summary, error) {
	trimmed := strings.TrimSpace(transcript)
	if utf8.RuneCountInString(trimmed) < s.cfg.MinTranscriptChars {
		s.logger.Warn(ctx, "Transcript too short for summarization (%d chars)", utf8.RuneCountInString(trimmed))
		return placeholder(), nil
	}

	window := truncate(transcript, s.cfg.WindowChars)
	s.logger.Info(ctx, "Generating meeting summary from %d of %d characters",
		utf8.RuneCountInString(window), utf8.RuneCountInString(transcript))

	summary, err := s.generator.Generate(ctx, buildSummaryPrompt(window, s.cfg.Length), summaryMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	topics, err := s.generator.Generate(ctx, fmt.Sprintf(topicsPrompt, window), topicsMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("extract topics: %w", err)
	}

	decisions, err := s.generator.Generate(ctx, fmt.Sprintf(decisionsPrompt, window), decisionsMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("extract decisions: %w", err)
	}

	actions, err := s.generator.Generate(ctx, fmt.Sprintf(actionItemsPrompt, window), actionsMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("extract action items: %w", err)
	}

	result := &Summary{
		Summary:     strings.TrimSpace(summary),
		Topics:      ParseBullets(topics, s.cfg.MaxTopics),
		Decisions:   ParseBullets(decisions, s.cfg.MaxDecisions),
		ActionItems: ParseActionItems(actions, s.cfg.MaxActionItems),
	}
	s.logger.Info(ctx, "Summary generated: %d topics, %d decisions, %d action items",
		len(result.Topics), len(result.Decisions), len(result.ActionItems))
	return result, nil
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
