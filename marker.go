package chunkz

import "context"

// NotFound is returned by the marker finders when no window qualifies.
const NotFound = 0

// Distinct reports whether all items are pairwise distinct.
func Distinct[T comparable](items []T) bool {
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			return false
		}
		seen[item] = struct{}{}
	}
	return true
}

// FirstDistinct scans the overlapping windows of src and returns the 1-based
// position of the last item of the first window whose size items are all
// different. It returns NotFound if src runs out first.
//
// Example:
//
//	pos, err := chunkz.FirstDistinct(chunkz.FromString("bvwbjplbgvbhsrlpgdmjqwftvncz"), 4)
//	// pos == 5: "vwbj" is the first run of four different bytes
func FirstDistinct[T comparable](src Source[T], size int) (int, error) {
	chunks, err := NewOverlappingChunk(src, size)
	if err != nil {
		return NotFound, err
	}

	for end := size; ; end++ {
		w, ok := chunks.Next()
		if !ok {
			return NotFound, nil
		}
		if Distinct(w) {
			return end, nil
		}
	}
}

// FirstDistinctIn reads positioned windows until one holds only distinct
// items and returns its End. It returns NotFound when windows closes first,
// or ctx.Err() if ctx is cancelled while waiting.
//
// The remaining windows are not drained; cancel the producing pipeline's
// context to release it.
func FirstDistinctIn[T comparable](ctx context.Context, windows <-chan Window[T]) (int, error) {
	for {
		select {
		case <-ctx.Done():
			return NotFound, ctx.Err()

		case w, ok := <-windows:
			if !ok {
				return NotFound, nil
			}
			if Distinct(w.Items) {
				return w.End, nil
			}
		}
	}
}
