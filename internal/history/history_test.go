package history

import (
	"errors"
	"fmt"
	"testing"
)

func rec(q string) SearchRecord {
	return SearchRecord{Query: q, Response: "answer to " + q}
}

func TestHistoryAppendGetReset(t *testing.T) {
	h := NewManager()
	sessA := "a"
	sessB := "b"

	h.Append(sessA, rec("phone"))
	h.Append(sessA, rec("laptop"))
	h.Append(sessB, rec("earbuds"))

	all := h.All(sessA)
	if len(all) != 2 || h.Len(sessB) != 1 {
		t.Fatalf("unexpected lengths: A=%d B=%d", len(all), h.Len(sessB))
	}
	if all[0].Query != "phone" || all[1].Query != "laptop" {
		t.Fatalf("unexpected order: %+v", all)
	}

	// Ensure copy semantics (modifying returned slice does not affect internal state)
	all[0] = rec("mutated")
	if h.All(sessA)[0].Query != "phone" {
		t.Fatalf("internal state mutated via returned slice")
	}

	h.Reset(sessA)
	if h.Len(sessA) != 0 {
		t.Fatalf("reset did not clear session A")
	}
	if h.Len(sessB) != 1 {
		t.Fatalf("reset should not affect other sessions")
	}
}

func TestRecentIsReverseChronological(t *testing.T) {
	h := NewManager()
	for _, q := range []string{"first", "second", "third"} {
		h.Append("s", rec(q))
	}

	recent := h.Recent("s")
	if recent[0].Query != "third" || recent[2].Query != "first" {
		t.Fatalf("unexpected recent order: %+v", recent)
	}
	if h.All("s")[0].Query != "first" {
		t.Fatalf("Recent must not reorder stored history")
	}
}

func TestViewPositionMapsToSubmissionOrder(t *testing.T) {
	h := NewManager()
	n := 5
	for i := 1; i <= n; i++ {
		h.Append("s", rec(fmt.Sprintf("q%d", i)))
	}

	for pos := 1; pos <= n; pos++ {
		got, err := h.View("s", pos)
		if err != nil {
			t.Fatalf("view %d: %v", pos, err)
		}
		want := fmt.Sprintf("q%d", n-pos+1)
		if got.Query != want {
			t.Fatalf("pos %d: want %s, got %s", pos, want, got.Query)
		}
		viewed, ok := h.Viewed("s")
		if !ok || viewed.Query != want {
			t.Fatalf("pos %d: viewed mismatch %+v", pos, viewed)
		}
	}

	// repeated inspection leaves the history untouched
	all := h.All("s")
	for i, r := range all {
		if r.Query != fmt.Sprintf("q%d", i+1) {
			t.Fatalf("history reordered at %d: %+v", i, all)
		}
	}
}

func TestViewOutOfRange(t *testing.T) {
	h := NewManager()
	if _, err := h.View("missing", 1); !errors.Is(err, ErrNoSuchEntry) {
		t.Fatalf("want ErrNoSuchEntry, got %v", err)
	}
	h.Append("s", rec("q"))
	for _, pos := range []int{0, -1, 2} {
		if _, err := h.View("s", pos); !errors.Is(err, ErrNoSuchEntry) {
			t.Fatalf("pos %d: want ErrNoSuchEntry, got %v", pos, err)
		}
	}
	if _, ok := h.Viewed("s"); ok {
		t.Fatalf("failed view must not set viewed record")
	}
}

func TestViewPersistsUntilCleared(t *testing.T) {
	h := NewManager()
	h.Append("s", rec("old"))
	if _, err := h.View("s", 1); err != nil {
		t.Fatal(err)
	}
	h.Append("s", rec("new"))

	viewed, ok := h.Viewed("s")
	if !ok || viewed.Query != "old" {
		t.Fatalf("viewed record should survive unrelated appends: %+v", viewed)
	}

	h.ClearView("s")
	if _, ok := h.Viewed("s"); ok {
		t.Fatalf("ClearView did not clear")
	}
	if h.Len("s") != 2 {
		t.Fatalf("ClearView must not touch history")
	}
}
