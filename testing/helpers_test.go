package testing

import (
	"testing"
	"time"

	"github.com/zoobzio/chunkz"
)

func TestCollectWithTimeout(t *testing.T) {
	t.Run("collects all items before channel close", func(t *testing.T) {
		ch := make(chan int, 3)
		ch <- 1
		ch <- 2
		ch <- 3
		close(ch)

		items := CollectWithTimeout(t, ch, 100*time.Millisecond)

		if len(items) != 3 {
			t.Errorf("expected 3 items, got %d", len(items))
		}
	})

	t.Run("returns on timeout", func(t *testing.T) {
		ch := make(chan int)
		// Channel never sends or closes

		items := CollectWithTimeout(t, ch, 50*time.Millisecond)

		if len(items) != 0 {
			t.Errorf("expected 0 items on timeout, got %d", len(items))
		}
	})
}

func TestSendString(t *testing.T) {
	ch := SendString(t, "abc")

	var got []byte
	for b := range ch {
		got = append(got, b)
	}

	if string(got) != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
}

func TestWindowItems(t *testing.T) {
	windows := []chunkz.Window[int]{
		{Items: []int{1, 2}, Start: 0, End: 2},
		{Items: []int{2, 3}, Start: 1, End: 3},
	}

	items := WindowItems(windows)

	AssertWindowCount(t, items, 2)
	AssertContiguous(t, []int{1, 2, 3}, items)
}
