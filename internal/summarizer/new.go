package summarizer

import (
	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/llm"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

type implSummarizer struct {
	cfg       config.SummaryConfig
	generator llm.Generator
	logger    logger.Logger
}

// New creates a Summarizer that sends four prompts per transcript to generator.
func New(cfg config.SummaryConfig, generator llm.Generator, log logger.Logger) Summarizer {
	return &implSummarizer{
		cfg:       cfg,
		generator: generator,
		logger:    log,
	}
}
