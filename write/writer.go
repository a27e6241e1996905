// Package write provides the filesystem side of generation: creating mirrored
// directories and writing rendered files.
package write

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

type Writer interface {
	MkdirAll(path string) error
	Write(path string, content []byte) error
}

type WriteOptions struct {
	// Atomic writes go to a temporary file in the same directory and are
	// renamed over the destination, so readers never see a half-written file.
	Atomic bool
}

type BaseWriter struct {
	options WriteOptions
}

func NewBaseWriter(options WriteOptions) *BaseWriter {
	return &BaseWriter{options: options}
}

func (bw *BaseWriter) MkdirAll(path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// Write replaces the file at path with content. The parent directory must
// already exist.
func (bw *BaseWriter) Write(path string, content []byte) error {
	if bw.options.Atomic {
		return bw.atomicWrite(path, content)
	}
	return bw.directWrite(path, content)
}

func (bw *BaseWriter) atomicWrite(path string, content []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write %s atomically: %w", path, err)
	}
	return nil
}

func (bw *BaseWriter) directWrite(path string, content []byte) (err error) {
	file, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %s: %w", path, closeErr)
		}
	}()

	if _, err := file.Write(content); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
