package textproc

import (
	"strings"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

type implProcessor struct {
	splitter SentenceSplitter
	logger   logger.Logger

	fillers       map[string]struct{}
	fillerPhrases [][]string
}

// New creates a Processor. An empty fillerWords disables filler removal.
func New(splitter SentenceSplitter, fillerWords []string, log logger.Logger) Processor {
	p := &implProcessor{
		splitter: splitter,
		logger:   log,
		fillers:  make(map[string]struct{}),
	}
	for _, w := range fillerWords {
		words := strings.Fields(strings.ToLower(w))
		switch len(words) {
		case 0:
		case 1:
			p.fillers[words[0]] = struct{}{}
		default:
			p.fillerPhrases = append(p.fillerPhrases, words)
		}
	}
	return p
}
