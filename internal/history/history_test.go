package history

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHistoryNewestFirst(t *testing.T) {
	h := New(10)
	h.Add("https://a.test")
	h.Add("https://b.test")
	h.Add("https://c.test")

	want := []string{"https://c.test", "https://b.test", "https://a.test"}
	if diff := cmp.Diff(want, h.Recent()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryDeduplicates(t *testing.T) {
	h := New(10)
	h.Add("https://a.test")
	h.Add("https://b.test")
	h.Add("https://a.test")
	h.Add("")

	want := []string{"https://a.test", "https://b.test"}
	if diff := cmp.Diff(want, h.Recent()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := New(2)
	h.Add("1")
	h.Add("2")
	h.Add("3")

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}
	want := []string{"3", "2"}
	if diff := cmp.Diff(want, h.Recent()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCursor(t *testing.T) {
	h := New(0)
	h.Add("old")
	h.Add("new")

	c := NewCursor(h)
	if got, ok := c.Older(); !ok || got != "new" {
		t.Fatalf("first Older = %q,%v", got, ok)
	}
	if got, ok := c.Older(); !ok || got != "old" {
		t.Fatalf("second Older = %q,%v", got, ok)
	}
	if _, ok := c.Older(); ok {
		t.Fatal("Older past the end should fail")
	}
	if got, ok := c.Newer(); !ok || got != "new" {
		t.Fatalf("Newer = %q,%v", got, ok)
	}
	if _, ok := c.Newer(); ok {
		t.Fatal("Newer past the newest should end browsing")
	}
}
