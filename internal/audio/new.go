package audio

import (
	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/pkg/executor"
)

type implLoader struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Loader that converts input files with ffmpeg.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Loader {
	return &implLoader{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
