// Package file writes transcript lines to a plain text file opened in
// append mode for the lifetime of the sink.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
)

const (
	transcriptDirMode  = 0o700
	transcriptFileMode = 0o600
	timestampLayout    = "2006-01-02T15-04-05"
	defaultPrefix      = "transcript"
)

type Sink struct {
	path string

	mu     sync.Mutex
	file   *os.File
	closed bool
}

var _ ports.TranscriptSink = (*Sink)(nil)

// Open creates dir if needed and opens <prefix>_<timestamp>.txt for
// appending. Reopening within the same second appends to the same file.
func Open(dir string, prefix string, now time.Time) (*Sink, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}

	if err := os.MkdirAll(dir, transcriptDirMode); err != nil {
		return nil, fmt.Errorf("create transcript directory: %w", err)
	}

	path := filepath.Join(dir, FileName(prefix, now))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, transcriptFileMode)
	if err != nil {
		return nil, fmt.Errorf("open transcript file: %w", err)
	}

	return &Sink{path: path, file: file}, nil
}

func FileName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.txt", prefix, now.Format(timestampLayout))
}

func (s *Sink) Path() string {
	return s.path
}

// AppendLine writes line followed by a newline. Embedded newlines are
// flattened so one call is always one line.
func (s *Sink) AppendLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("append transcript line: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSinkClosed
	}

	line = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(line)
	if _, err := s.file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write transcript line: %w", err)
	}

	return nil
}

// Close releases the file. Later appends fail with domain.ErrSinkClosed.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close transcript file: %w", err)
	}

	return nil
}
