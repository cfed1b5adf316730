package chunkz

// Window is an overlapping chunk together with its position in the stream.
type Window[T any] struct {
	Items []T

	// Start is the 0-based offset of the first item.
	Start int

	// End is the 1-based position of the last item, i.e. Start+len(Items).
	End int
}
