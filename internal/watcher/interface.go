package watcher

import "context"

// Watcher feeds new audio files dropped into a directory to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one new file.
type EventHandler func(ctx context.Context, filePath string) error
