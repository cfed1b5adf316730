package chunkz

// ring is a fixed-capacity FIFO holding the most recent items pushed into it.
// Once full, each push overwrites the oldest item and advances head.
type ring[T any] struct {
	items []T
	head  int // index of the oldest item
	size  int
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{items: make([]T, capacity)}
}

func (r *ring[T]) push(item T) {
	if r.size < len(r.items) {
		r.items[(r.head+r.size)%len(r.items)] = item
		r.size++
		return
	}

	r.items[r.head] = item
	r.head = (r.head + 1) % len(r.items)
}

func (r *ring[T]) full() bool {
	return r.size == len(r.items)
}

func (r *ring[T]) len() int {
	return r.size
}

// snapshot copies the buffered items, oldest first, into a new slice.
// The result never shares storage with the ring.
func (r *ring[T]) snapshot() []T {
	out := make([]T, r.size)

	tail := r.head + r.size
	if tail > len(r.items) {
		tail = len(r.items)
	}

	n := copy(out, r.items[r.head:tail])
	copy(out[n:], r.items[:r.size-n])

	return out
}
