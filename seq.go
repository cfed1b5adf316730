package chunkz

import "iter"

// Windows returns an iterator over the overlapping windows of seq.
// Semantics match OverlappingChunk. Each range over the result starts from a
// fresh buffer and ranges over seq again.
//
// Example:
//
//	windows, err := chunkz.Windows(slices.Values(readings), 3)
//	if err != nil {
//		return err
//	}
//	for w := range windows {
//		fmt.Println(mean(w))
//	}
func Windows[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if err := validateSize("windows", size); err != nil {
		return nil, err
	}

	return func(yield func([]T) bool) {
		buf := newRing[T](size)

		for item := range seq {
			buf.push(item)
			if buf.full() && !yield(buf.snapshot()) {
				return
			}
		}
	}, nil
}
