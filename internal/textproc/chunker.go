package textproc

import (
	"context"
	"strings"
	"unicode/utf8"
)

// EstimateTokens approximates the token count as one token per four characters.
func EstimateTokens(text string) int {
	return utf8.RuneCountInString(text) / 4
}

// Split packs whole sentences into chunks. A sentence that alone exceeds maxTokens
// becomes its own chunk and is never cut.
func (p *implProcessor) Split(ctx context.Context, text string, maxTokens int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	sentences := p.splitter.Sentences(text)
	p.logger.Debug(ctx, "Split into %d sentences", len(sentences))

	var (
		chunks   []string
		buf      []string
		bufRunes int // rune length of strings.Join(buf, " ")
	)
	flush := func() {
		if len(buf) > 0 {
			chunks = append(chunks, strings.Join(buf, " "))
			buf = nil
			bufRunes = 0
		}
	}

	for _, sentence := range sentences {
		n := utf8.RuneCountInString(sentence)
		if n/4 > maxTokens {
			flush()
			chunks = append(chunks, sentence)
			continue
		}

		if len(buf) > 0 && (bufRunes+1+n)/4 > maxTokens {
			flush()
		}
		if len(buf) > 0 {
			bufRunes++
		}
		buf = append(buf, sentence)
		bufRunes += n
	}
	flush()

	p.logger.Info(ctx, "Created %d text chunks (max %d tokens each)", len(chunks), maxTokens)
	return chunks
}
