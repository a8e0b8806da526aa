// Package iodwca acquires and reads Darwin Core Archive checklist inputs.
// It resolves an input argument (plain file, zip archive or URL) to a local
// taxon file, and provides byte-offset addressed line reading over it.
// This is an impure I/O package.
package iodwca

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// LineSource reads a delimited text file line by line, reporting the byte
// offset where each line starts. Offsets are stable across re-opens of the
// same file, so they can be stored and used to re-read a row much later.
//
// A LineSource is single-goroutine: the build run streams, retries and
// exports from one producer, so one handle suffices.
type LineSource struct {
	f    *os.File
	r    *bufio.Reader
	path string

	offset int64
	last   int64
	lines  int
}

// OpenLineSource opens path for streaming from offset 0.
func OpenLineSource(path string) (*LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	return &LineSource{
		f:    f,
		r:    bufio.NewReaderSize(f, 64*1024),
		path: path,
		last: -1,
	}, nil
}

// Path returns the file the source reads from.
func (s *LineSource) Path() string {
	return s.path
}

// Next returns the next line and the byte offset of its start. It reports
// io.EOF when the input is exhausted, and also when a read fails to advance
// the offset, which guards against a stalled underlying reader. Any other
// read failure is fatal.
//
// The returned line has its trailing newline stripped; the offset of the
// following line still accounts for it.
func (s *LineSource) Next() (int64, string, error) {
	start := s.offset
	if start == s.last {
		// Stall guard: the previous read did not advance.
		return 0, "", io.EOF
	}

	line, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, "", ReadError(s.path, err)
	}
	if line == "" {
		return 0, "", io.EOF
	}

	s.last = start
	s.offset = start + int64(len(line))
	s.lines++
	return start, strings.TrimRight(line, "\r\n"), nil
}

// LinesRead returns how many lines Next has produced.
func (s *LineSource) LinesRead() int {
	return s.lines
}

// ReadAt repositions the source to an absolute byte offset and reads
// exactly one line. Reading at or past the end of the file yields io.EOF.
// ReadAt invalidates the streaming position; it is used only after the
// sequential pass is finished.
func (s *LineSource) ReadAt(offset int64) (string, error) {
	if _, err := s.f.Seek(offset, io.SeekStart); err != nil {
		return "", SeekError(s.path, offset, err)
	}
	s.r.Reset(s.f)
	s.offset = offset
	s.last = -1

	line, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", ReadError(s.path, err)
	}
	if line == "" {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close releases the underlying file.
func (s *LineSource) Close() error {
	return s.f.Close()
}
