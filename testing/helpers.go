// Package testing provides test utilities for chunkz.
package testing

import (
	"testing"
	"time"

	"github.com/zoobzio/chunkz"
)

// CollectWithTimeout collects everything from ch until it closes or the
// timeout elapses.
func CollectWithTimeout[T any](t *testing.T, ch <-chan T, timeout time.Duration) []T {
	t.Helper()

	var items []T
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case item, ok := <-ch:
			if !ok {
				return items
			}
			items = append(items, item)
		case <-timer.C:
			return items
		}
	}
}

// SendValues sends values on a buffered channel and closes it.
func SendValues[T any](t *testing.T, values []T) <-chan T {
	t.Helper()

	ch := make(chan T, len(values))
	for _, v := range values {
		ch <- v
	}
	close(ch)
	return ch
}

// SendString sends the bytes of s on a buffered channel and closes it.
func SendString(t *testing.T, s string) <-chan byte {
	t.Helper()

	return SendValues(t, []byte(s))
}

// WindowItems strips positions from collected windows.
func WindowItems[T any](windows []chunkz.Window[T]) [][]T {
	items := make([][]T, 0, len(windows))
	for _, w := range windows {
		items = append(items, w.Items)
	}
	return items
}

// AssertWindowCount verifies the expected number of windows were received.
func AssertWindowCount[T any](t *testing.T, windows [][]T, expected int) {
	t.Helper()

	if len(windows) != expected {
		t.Errorf("expected %d windows, got %d", expected, len(windows))
	}
}

// AssertContiguous verifies that windows[k] equals source[k : k+size] for
// every k, with size taken from the first window.
func AssertContiguous[T comparable](t *testing.T, source []T, windows [][]T) {
	t.Helper()

	if len(windows) == 0 {
		return
	}

	size := len(windows[0])
	for k, w := range windows {
		if len(w) != size {
			t.Errorf("window %d: expected size %d, got %d", k, size, len(w))
			continue
		}
		if k+size > len(source) {
			t.Errorf("window %d: extends past source of length %d", k, len(source))
			continue
		}
		for i, item := range w {
			if item != source[k+i] {
				t.Errorf("window %d item %d: expected %v, got %v", k, i, source[k+i], item)
			}
		}
	}
}
