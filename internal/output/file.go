// Package output writes the rendered dashboard to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemError reports a failure to create the output directory or write the file.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// FileWriter writes a document to Dir/Name, creating Dir when needed.
type FileWriter struct {
	Dir  string
	Name string
}

// NewFileWriter creates a FileWriter for dir/name.
func NewFileWriter(dir, name string) *FileWriter {
	return &FileWriter{Dir: dir, Name: name}
}

// Path returns the destination file path.
func (w *FileWriter) Path() string {
	return filepath.Join(w.Dir, w.Name)
}

// Write stores content at Path, replacing any previous file.
func (w *FileWriter) Write(content string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", &FilesystemError{Op: "create directory", Path: w.Dir, Err: err}
	}
	path := w.Path()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", &FilesystemError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}
