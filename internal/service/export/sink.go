package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives finished artifacts. The browser's download side effect is
// modeled as a local write.
type Sink interface {
	Store(ctx context.Context, artifact Artifact) error
}

// DirSink writes artifacts into a directory, one file per artifact.
type DirSink struct {
	dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

func (s *DirSink) Store(ctx context.Context, artifact Artifact) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(s.dir, artifact.Name)
	if err := os.WriteFile(path, []byte(artifact.Content), 0644); err != nil {
		return fmt.Errorf("write artifact %s: %w", artifact.Name, err)
	}
	return nil
}
