package textproc

import (
	"context"
	"regexp"
	"strings"
)

var (
	whitespaceRe     = regexp.MustCompile(`\s+`)
	bracketTagRe     = regexp.MustCompile(`\[.*?\]`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
	punctBeforeUpper = regexp.MustCompile(`([.,!?;:])\s*([A-Z])`)
)

// Clean collapses whitespace, drops [tags] and immediate word repeats, removes
// filler words and fixes spacing around punctuation.
func (p *implProcessor) Clean(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	text = bracketTagRe.ReplaceAllString(text, "")

	words := dedupeRepeats(strings.Fields(text))
	if len(p.fillers) > 0 || len(p.fillerPhrases) > 0 {
		words = p.removeFillers(words)
	}
	text = strings.Join(words, " ")

	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = punctBeforeUpper.ReplaceAllString(text, "$1 $2")

	p.logger.Debug(ctx, "Cleaned text: %d characters", len(text))
	return text
}

// dedupeRepeats drops a word equal to the word right before it.
func dedupeRepeats(words []string) []string {
	out := make([]string, 0, len(words))
	for i, w := range words {
		if i == 0 || w != words[i-1] {
			out = append(out, w)
		}
	}
	return out
}

func (p *implProcessor) removeFillers(words []string) []string {
	out := make([]string, 0, len(words))
	for i := 0; i < len(words); i++ {
		if n := p.matchPhrase(words[i:]); n > 0 {
			i += n - 1
			continue
		}
		if _, ok := p.fillers[fillerKey(words[i])]; ok {
			continue
		}
		out = append(out, words[i])
	}
	return out
}

// matchPhrase returns the number of words consumed by a multi-word filler at the start of words.
func (p *implProcessor) matchPhrase(words []string) int {
	for _, phrase := range p.fillerPhrases {
		if len(words) < len(phrase) {
			continue
		}
		matched := true
		for j, fw := range phrase {
			if fillerKey(words[j]) != fw {
				matched = false
				break
			}
		}
		if matched {
			return len(phrase)
		}
	}
	return 0
}

// fillerKey lowercases a word and strips trailing commas so "Um," matches "um".
// Sentence punctuation is kept, so "right." at the end of a sentence survives.
func fillerKey(word string) string {
	return strings.TrimRight(strings.ToLower(word), ",")
}
