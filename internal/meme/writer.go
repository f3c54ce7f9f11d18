package meme

import (
	"fmt"
	"os"
)

// MemeWriter persists rendered image bytes.
type MemeWriter interface {
	Write(image []byte) error
}

// FileWriter writes image bytes to a fixed path, truncating any previous
// file. The file handle is released on every exit path.
type FileWriter struct {
	path string
}

// NewFileWriter creates a writer targeting the given path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Path returns the destination path.
func (w *FileWriter) Path() string {
	return w.path
}

// Write stores the image bytes, overwriting any existing file.
func (w *FileWriter) Write(image []byte) error {
	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", w.path, err)
	}

	_, writeErr := f.Write(image)
	closeErr := f.Close()

	if writeErr != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", w.path, closeErr)
	}

	return nil
}
