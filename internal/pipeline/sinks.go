package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// sink is one output file, truncated on open and appended to for the rest
// of the run.
type sink struct {
	path string
	file *os.File
	w    *bufio.Writer
}

func openSink(path string) (*sink, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return &sink{path: path, file: file, w: bufio.NewWriter(file)}, nil
}

// writeLine appends one event line followed by a line break.
func (s *sink) writeLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// writeAll appends an already-terminated buffer in one write.
func (s *sink) writeAll(text string) error {
	if _, err := s.w.WriteString(text); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *sink) close() error {
	if s == nil || s.file == nil {
		return nil
	}
	flushErr := s.w.Flush()
	closeErr := s.file.Close()
	s.file = nil
	if flushErr != nil {
		return fmt.Errorf("flush %s: %w", s.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", s.path, closeErr)
	}
	return nil
}

// sinkSet owns every output file of a run so that all of them are released
// on every exit path.
type sinkSet struct {
	sinks []*sink
}

func (ss *sinkSet) open(path string) (*sink, error) {
	s, err := openSink(path)
	if err != nil {
		return nil, err
	}
	ss.sinks = append(ss.sinks, s)
	return s, nil
}

func (ss *sinkSet) closeAll() error {
	var errs []error
	for _, s := range ss.sinks {
		if err := s.close(); err != nil {
			errs = append(errs, err)
		}
	}
	ss.sinks = nil
	return errors.Join(errs...)
}
