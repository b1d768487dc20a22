package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

// Options configures New.
type Options struct {
	InputDir      string
	Extensions    []string      // accepted file extensions, e.g. ".wav"
	SettleDelay   time.Duration // wait after CREATE so the writer can finish
	MaxConcurrent int           // defaults to 1
}

// New creates a Watcher on opts.InputDir.
func New(opts Options, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(opts.InputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	exts := make(map[string]struct{}, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[strings.ToLower(e)] = struct{}{}
	}

	return &implWatcher{
		opts:      opts,
		exts:      exts,
		handler:   handler,
		logger:    log,
		watcher:   watcher,
		semaphore: make(chan struct{}, opts.MaxConcurrent),
	}, nil
}
