package output

import (
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

type implWriter struct {
	dir    string
	docx   bool
	logger logger.Logger
}

// New creates a Writer that saves into dir. withDocx adds a Word copy of the summary.
func New(dir string, withDocx bool, log logger.Logger) Writer {
	return &implWriter{
		dir:    dir,
		docx:   withDocx,
		logger: log,
	}
}
