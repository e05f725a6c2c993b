package viz

import (
	"io"
	"os"
	"path/filepath"
)

// DirSink writes export files into a directory, creating it on first use.
// Used by headless runs; the UI replaces it with a save-dialog backed sink.
type DirSink struct {
	Dir string
}

func (d DirSink) Create(name string) (io.WriteCloser, error) {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(dir, name))
}
