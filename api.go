// Package chunkz provides type-safe overlapping-chunk primitives: fixed-size
// windows that slide over a sequence one element at a time.
//
// The core abstraction is OverlappingChunk, a pull-based adapter over a
// Source. Each call to Next pulls from the source until a full window of
// size elements is buffered, then returns a fresh copy of that window. After
// the first window, every further call pulls exactly one element and returns
// the window shifted by one.
//
// Basic usage:
//
//	chunks, err := chunkz.NewOverlappingChunk(chunkz.FromString("abcde"), 3)
//	if err != nil {
//		return err
//	}
//
//	for w, ok := chunks.Next(); ok; w, ok = chunks.Next() {
//		fmt.Printf("%s\n", w) // abc, bcd, cde
//	}
//
// The same semantics are available as a range-over-func iterator (Windows)
// and as channel processors (OverlappingChunker, IndexedChunker) that follow
// the Processor contract. FirstDistinct builds on the adapter to locate the
// first window whose elements are pairwise distinct.
package chunkz

import (
	"context"
)

// Processor is the core interface for channel-based components.
// It transforms an input channel of type In to an output channel of type Out.
// Processors should:
//   - Close the output channel when the input channel is closed
//   - Respect context cancellation
//   - Be safe for concurrent use
type Processor[In, Out any] interface {
	// Process transforms the input channel to an output channel.
	// It should close the output channel when processing is complete.
	Process(ctx context.Context, in <-chan In) <-chan Out

	// Name returns a descriptive name for the processor, useful for debugging.
	Name() string
}
