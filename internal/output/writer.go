package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrWrite marks every persistence failure
var ErrWrite = errors.New("cannot write output")

// WriteError describes a failed write. The content that was being
// written is untouched and the write can be retried.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrWrite, e.Err}
}

// Writer persists a rendered listing
type Writer interface {
	Write(content string) error
}

// FileWriter writes the whole content to one file
type FileWriter struct {
	path   string
	logger *zap.Logger
}

// NewFileWriter creates a new FileWriter instance
func NewFileWriter(path string, logger *zap.Logger) *FileWriter {
	return &FileWriter{
		path:   path,
		logger: logger,
	}
}

// Path returns the destination file
func (fw *FileWriter) Path() string {
	return fw.path
}

// Write stores content in a temporary file next to the destination and
// renames it into place, so the destination is either fully replaced or
// left as it was.
func (fw *FileWriter) Write(content string) error {
	dir := filepath.Dir(fw.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: fw.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fw.path)+".*")
	if err != nil {
		return &WriteError{Path: fw.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := io.WriteString(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: fw.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: fw.path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: fw.path, Err: err}
	}
	if err := os.Rename(tmpName, fw.path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: fw.path, Err: err}
	}

	fw.logger.Info("Calendar written",
		zap.String("file", fw.path),
		zap.Int("bytes", len(content)))

	return nil
}

// StreamWriter writes the content to an io.Writer such as os.Stdout
type StreamWriter struct {
	name string
	w    io.Writer
}

// NewStreamWriter creates a StreamWriter; name is used in errors
func NewStreamWriter(name string, w io.Writer) *StreamWriter {
	return &StreamWriter{name: name, w: w}
}

func (sw *StreamWriter) Write(content string) error {
	if _, err := io.WriteString(sw.w, content+"\n"); err != nil {
		return &WriteError{Path: sw.name, Err: err}
	}
	return nil
}
