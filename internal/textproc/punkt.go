package textproc

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// punktSplitter detects sentences with the pre-trained English punkt model.
type punktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSplitter loads the bundled English punkt model.
func NewPunktSplitter() (SentenceSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &punktSplitter{tokenizer: tokenizer}, nil
}

func (s *punktSplitter) Sentences(text string) []string {
	tokens := s.tokenizer.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if sentence := strings.TrimSpace(t.Text); sentence != "" {
			out = append(out, sentence)
		}
	}
	return out
}
