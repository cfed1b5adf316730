package chunkz

// OverlappingChunk yields fixed-size windows over a Source, advancing by one
// item per window. For a source of length L it produces max(0, L-size+1)
// windows; window k (1-based) holds items [k-1, k-1+size).
//
// An OverlappingChunk is not safe for concurrent use. It owns its buffer and
// consumes the source strictly once, in order.
type OverlappingChunk[T any] struct {
	src  Source[T]
	buf  *ring[T]
	size int
	done bool
}

// NewOverlappingChunk creates a window adapter over src.
//
// Example:
//
//	// Every run of 4 consecutive bytes
//	chunks, err := chunkz.NewOverlappingChunk(chunkz.FromString(line), 4)
//	if err != nil {
//		return err
//	}
//	for w, ok := chunks.Next(); ok; w, ok = chunks.Next() {
//		inspect(w)
//	}
//
// Parameters:
//   - src: Source to consume (must not be nil)
//   - size: Items per window (must be >= 1)
//
// Returns ErrInvalidConfiguration (wrapped in *ConfigError) for size < 1,
// and ErrNilSource for a nil src. Typed nils are detected for this package's
// own sources only; a nil pointer of any other Source type panics on first use.
func NewOverlappingChunk[T any](src Source[T], size int) (*OverlappingChunk[T], error) {
	if err := validateSize("overlapping-chunk", size); err != nil {
		return nil, err
	}
	if isNilSource(src) {
		return nil, ErrNilSource
	}

	return &OverlappingChunk[T]{
		src:  src,
		buf:  newRing[T](size),
		size: size,
	}, nil
}

// Next returns the next window and true, or nil and false once the source is
// exhausted. The returned slice is a copy the caller may keep or modify.
// After the first false, Next never pulls from the source again.
func (c *OverlappingChunk[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}

	for {
		item, ok := c.src.Next()
		if !ok {
			c.done = true
			return nil, false
		}

		c.buf.push(item)
		if c.buf.full() {
			return c.buf.snapshot(), true
		}
	}
}

// Size returns the window size.
func (c *OverlappingChunk[T]) Size() int {
	return c.size
}

// Buffered returns how many items are currently held, at most Size.
func (c *OverlappingChunk[T]) Buffered() int {
	return c.buf.len()
}

func isNilSource[T any](src Source[T]) bool {
	switch s := any(src).(type) {
	case nil:
		return true
	case SourceFunc[T]:
		return s == nil
	case *sliceSource[T]:
		return s == nil
	case *SeqSource[T]:
		return s == nil
	case *ReaderSource:
		return s == nil
	case *LineSource:
		return s == nil
	}
	return false
}
