package chunkz

import (
	"context"
)

// OverlappingChunker emits overlapping fixed-size windows from a channel.
// Unlike a plain chunker, consecutive windows share all but one item: each
// new input item, once the first window is full, produces a window shifted
// by one.
type OverlappingChunker[T any] struct {
	name string
	size int
}

// NewOverlappingChunker creates a processor that emits every run of size
// consecutive items. No window is emitted until size items have arrived, and
// nothing is emitted for a stream shorter than size.
//
// When to use:
//   - Moving statistics over a fixed item count
//   - Scanning a byte stream for markers or signatures
//   - N-gram extraction
//
// Example:
//
//	// Every 4 consecutive bytes of a stream
//	chunker, err := chunkz.NewOverlappingChunker[byte](4)
//	if err != nil {
//		return err
//	}
//
//	windows := chunker.Process(ctx, bytes)
//	for w := range windows {
//		// len(w) == 4; w is never reused by the chunker
//		inspect(w)
//	}
//
// Parameters:
//   - size: Number of items per window (must be >= 1)
//
// Returns a new OverlappingChunker processor, or ErrInvalidConfiguration.
func NewOverlappingChunker[T any](size int) (*OverlappingChunker[T], error) {
	if err := validateSize("overlapping-chunker", size); err != nil {
		return nil, err
	}

	return &OverlappingChunker[T]{
		size: size,
		name: "overlapping-chunker",
	}, nil
}

// WithName sets a custom name for the processor.
func (c *OverlappingChunker[T]) WithName(name string) *OverlappingChunker[T] {
	c.name = name
	return c
}

func (c *OverlappingChunker[T]) Process(ctx context.Context, in <-chan T) <-chan []T {
	out := make(chan []T)

	go func() {
		defer close(out)

		slide(ctx, in, c.size, func(items []T, _ int) bool {
			select {
			case out <- items:
				return true
			case <-ctx.Done():
				return false
			}
		})
	}()

	return out
}

func (c *OverlappingChunker[T]) Name() string {
	return c.name
}

// IndexedChunker behaves like OverlappingChunker but emits Window values
// carrying each window's position in the stream.
type IndexedChunker[T any] struct {
	name string
	size int
}

// NewIndexedChunker creates a processor emitting positioned windows.
//
// Example:
//
//	chunker, err := chunkz.NewIndexedChunker[byte](14)
//	if err != nil {
//		return err
//	}
//	pos, err := chunkz.FirstDistinctIn(ctx, chunker.Process(ctx, bytes))
//
// Parameters:
//   - size: Number of items per window (must be >= 1)
func NewIndexedChunker[T any](size int) (*IndexedChunker[T], error) {
	if err := validateSize("indexed-chunker", size); err != nil {
		return nil, err
	}

	return &IndexedChunker[T]{
		size: size,
		name: "indexed-chunker",
	}, nil
}

// WithName sets a custom name for the processor.
func (c *IndexedChunker[T]) WithName(name string) *IndexedChunker[T] {
	c.name = name
	return c
}

func (c *IndexedChunker[T]) Process(ctx context.Context, in <-chan T) <-chan Window[T] {
	out := make(chan Window[T])

	go func() {
		defer close(out)

		slide(ctx, in, c.size, func(items []T, end int) bool {
			w := Window[T]{Items: items, Start: end - len(items), End: end}
			select {
			case out <- w:
				return true
			case <-ctx.Done():
				return false
			}
		})
	}()

	return out
}

func (c *IndexedChunker[T]) Name() string {
	return c.name
}

// slide feeds items from in through a ring of the given size and calls emit
// with each full window and the 1-based position of its last item. It stops
// when in closes, ctx is done, or emit returns false.
func slide[T any](ctx context.Context, in <-chan T, size int, emit func(items []T, end int) bool) {
	buf := newRing[T](size)
	pos := 0

	for {
		select {
		case <-ctx.Done():
			return

		case item, ok := <-in:
			if !ok {
				return
			}

			pos++
			buf.push(item)
			if !buf.full() {
				continue
			}

			if !emit(buf.snapshot(), pos) {
				return
			}
		}
	}
}
