package textproc

import "context"

// Processor prepares transcript text for the language model.
type Processor interface {
	// Clean normalizes raw transcript text.
	Clean(ctx context.Context, text string) string
	// Split groups sentences into chunks of at most maxTokens estimated tokens.
	Split(ctx context.Context, text string, maxTokens int) []string
	// KeyPhrases returns up to 20 distinct long words in order of appearance.
	KeyPhrases(text string) []string
}

// SentenceSplitter detects sentence boundaries. The returned sentences cover the
// input text in order.
type SentenceSplitter interface {
	Sentences(text string) []string
}
