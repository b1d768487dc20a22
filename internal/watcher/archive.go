package watcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

// ArchiveAfter wraps handler so that a successfully processed file is moved into archivedDir.
// Files that fail stay where they are.
func ArchiveAfter(handler EventHandler, archivedDir string, log logger.Logger) EventHandler {
	return func(ctx context.Context, path string) error {
		if err := handler(ctx, path); err != nil {
			return err
		}

		dest, err := moveFile(path, archivedDir)
		if err != nil {
			log.Warn(ctx, "Failed to move original to archived folder: %v", err)
			return nil
		}
		log.Info(ctx, "Archived: %s -> %s", path, dest)
		return nil
	}
}

// moveFile renames path into dir, copying when the rename crosses filesystems.
func moveFile(path, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}
	dest := filepath.Join(dir, filepath.Base(path))

	if err := os.Rename(path, dest); err == nil {
		return dest, nil
	}

	if err := copyFile(path, dest); err != nil {
		return "", err
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("remove original: %w", err)
	}
	return dest, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("write destination: %w", err)
	}
	return out.Close()
}
