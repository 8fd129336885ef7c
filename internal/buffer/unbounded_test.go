package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnboundedPreservesOrder(t *testing.T) {
	in, out := Unbounded[int](1000)

	// Writes must not block even with no reader.
	for i := 0; i < 500; i++ {
		in <- i
	}
	close(in)

	var got []int
	for v := range out {
		got = append(got, v)
	}

	if len(got) != 500 {
		t.Fatalf("expected 500 items, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("item %d = %d", i, v)
		}
	}
}

func TestUnboundedDropsOldestAtLimit(t *testing.T) {
	in, out := Unbounded[string](2)

	for _, s := range []string{"a", "b", "c", "d"} {
		in <- s
	}
	close(in)

	var got []string
	for v := range out {
		got = append(got, v)
	}

	// Which older items survive depends on how many sit in the channel
	// buffers at the time, but the newest is never dropped.
	if len(got) == 0 || got[len(got)-1] != "d" {
		t.Fatalf("newest item lost: %v", got)
	}
	if len(got) > 4 {
		t.Fatalf("duplicated items: %v", got)
	}
}

func TestUnboundedCloseEmpty(t *testing.T) {
	in, out := Unbounded[int](10)
	close(in)

	var got []int
	for v := range out {
		got = append(got, v)
	}
	if diff := cmp.Diff([]int(nil), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUnboundedNoLimitKeepsEverything(t *testing.T) {
	in, out := Unbounded[int](0)

	const n = 5000
	for i := 0; i < n; i++ {
		in <- i
	}
	close(in)

	count := 0
	for v := range out {
		if v != count {
			t.Fatalf("item %d = %d", count, v)
		}
		count++
	}
	if count != n {
		t.Fatalf("expected %d items, got %d", n, count)
	}
}
