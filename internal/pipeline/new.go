package pipeline

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/llm"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/output"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-digest/internal/textproc"
	"github.com/nguyentantai21042004/meeting-digest/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-digest/pkg/executor"
)

// Components are the collaborators a Pipeline drives.
type Components struct {
	Loader      audio.Loader
	Transcriber transcriber.Transcriber
	Text        textproc.Processor
	Summarizer  summarizer.Summarizer
	Writer      output.Writer
}

type implPipeline struct {
	cfg    *config.Config
	c      Components
	logger logger.Logger
	runs   semaphore
	now    func() time.Time
}

// New validates cfg and wires c into a Pipeline. Runs are serialized: a second
// Process call waits for the first to finish.
func New(cfg *config.Config, c Components, log logger.Logger) (Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if c.Loader == nil || c.Transcriber == nil || c.Text == nil || c.Summarizer == nil || c.Writer == nil {
		return nil, fmt.Errorf("%w: pipeline components missing", ErrConfiguration)
	}

	return &implPipeline{
		cfg:    cfg,
		c:      c,
		logger: log,
		runs:   newSemaphore(1),
		now:    time.Now,
	}, nil
}

// Build creates the configured backends and returns a ready Pipeline.
// Speech and language models are not contacted until the first run.
func Build(cfg *config.Config, exec executor.Executor, log logger.Logger) (Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stt, err := transcriber.New(cfg, exec, log)
	if err != nil {
		return nil, err
	}
	gen, err := llm.New(cfg, log)
	if err != nil {
		return nil, err
	}
	splitter, err := textproc.NewPunktSplitter()
	if err != nil {
		return nil, err
	}

	return New(cfg, Components{
		Loader:      audio.New(cfg, exec, log),
		Transcriber: stt,
		Text:        textproc.New(splitter, cfg.Text.FillerWords, log),
		Summarizer:  summarizer.New(cfg.Summary, gen, log),
		Writer:      output.New(cfg.Paths.Output, cfg.Output.Docx, log),
	}, log)
}
