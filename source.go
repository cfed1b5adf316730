package chunkz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
)

// Source is a pull-based producer of items. Next returns the next item and
// true, or the zero value and false once the source is exhausted.
type Source[T any] interface {
	Next() (T, bool)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc[T any] func() (T, bool)

// Next calls f.
func (f SourceFunc[T]) Next() (T, bool) {
	return f()
}

type sliceSource[T any] struct {
	items []T
	pos   int
}

func (s *sliceSource[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}

	item := s.items[s.pos]
	s.pos++
	return item, true
}

// FromSlice returns a Source yielding items in order.
// The slice is read, never modified.
func FromSlice[T any](items []T) Source[T] {
	return &sliceSource[T]{items: items}
}

// FromString returns a Source yielding the bytes of s.
func FromString(s string) Source[byte] {
	return FromSlice([]byte(s))
}

// SeqSource pulls items from an iter.Seq.
// Call Stop when abandoning the source before it is exhausted.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq converts a push iterator into a Source using iter.Pull.
func FromSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

func (s *SeqSource[T]) Next() (T, bool) {
	return s.next()
}

// Stop releases the underlying iterator. It is safe to call more than once.
func (s *SeqSource[T]) Stop() {
	s.stop()
}

// ReaderSource yields the bytes of an io.Reader.
//
// A read error ends the source; Err reports it afterwards. Bytes already
// delivered are never retracted, so a failing reader cannot corrupt the
// windows built from it.
type ReaderSource struct {
	r   *bufio.Reader
	err error

	// held line endings are delivered only once a later byte proves they
	// are not trailing.
	held    []byte
	head    int
	release int

	read    int64
	offset  int64
	trimEOL bool
	done    bool
}

// NewReaderSource wraps r in a buffered byte source.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

// WithTrimEOL drops the run of '\r' and '\n' bytes at the end of the input.
// Line endings followed by other bytes are delivered unchanged.
func (s *ReaderSource) WithTrimEOL() *ReaderSource {
	s.trimEOL = true
	return s
}

func (s *ReaderSource) Next() (byte, bool) {
	for s.release == 0 {
		if s.done {
			return 0, false
		}

		b, err := s.r.ReadByte()
		if err != nil {
			s.done = true
			s.held = nil
			if !errors.Is(err, io.EOF) {
				s.err = NewStreamError(s.read, err, "reader-source")
			}
			return 0, false
		}

		s.read++
		s.held = append(s.held, b)
		if s.trimEOL && (b == '\r' || b == '\n') {
			continue
		}
		s.release = len(s.held)
	}

	b := s.held[s.head]
	s.head++
	s.release--
	if s.release == 0 {
		s.held = s.held[:0]
		s.head = 0
	}

	s.offset++
	return b, true
}

// Err returns the first non-EOF read error, as a *StreamError[int64] whose
// Item is the byte offset of the failed read.
func (s *ReaderSource) Err() error {
	return s.err
}

// Offset returns the number of bytes delivered so far.
func (s *ReaderSource) Offset() int64 {
	return s.offset
}

// LineSource yields the lines of an io.Reader without their line endings.
type LineSource struct {
	scanner *bufio.Scanner
	done    bool
}

// Lines returns a Source over the lines of r, split by bufio.ScanLines.
func Lines(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

func (s *LineSource) Next() (string, bool) {
	if s.done || !s.scanner.Scan() {
		s.done = true
		return "", false
	}
	return s.scanner.Text(), true
}

// Err returns the first non-EOF scan error.
func (s *LineSource) Err() error {
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("chunkz: reading lines: %w", err)
	}
	return nil
}
