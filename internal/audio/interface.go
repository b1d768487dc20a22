package audio

import "context"

// Loader turns an audio file into a 16 kHz mono Signal.
type Loader interface {
	Validate(path string) error
	Load(ctx context.Context, path string) (*Signal, *Info, error)
}
