package corrector

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/dmitry-maltsev/spelling-corrector/symdelete"
)

func newFixture(t *testing.T) *Corrector {
	t.Helper()
	index := symdelete.New(2, 7, symdelete.KeyExact)
	c := New(index)
	entries := []struct {
		word string
		freq int64
	}{
		{"word", 100},
		{"words", 50},
		{"ward", 40},
		{"sword", 10},
		{"spelling", 80},
		{"spell", 60},
		{"speller", 20},
		{"quintessential", 5},
	}
	for _, e := range entries {
		if err := c.AddEntry(e.word, e.freq); err != nil {
			t.Fatalf("AddEntry(%q): %v", e.word, err)
		}
	}
	return c
}

// TestExactMatchShortCircuit covers scenario 3 from the concrete end-to-end
// vectors: an exact dictionary hit at maxEditDistance=0 returns only itself.
func TestExactMatchShortCircuit(t *testing.T) {
	c := newFixture(t)
	got, err := c.Correct("word", 0, 3)
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if len(got) != 1 || got[0].Word != "word" || got[0].Distance != 0 {
		t.Fatalf("got %s, want exactly [word - 0 - 100]", spew.Sdump(got))
	}
}

func TestExactMatchStillRankedFirstAmongNeighbors(t *testing.T) {
	c := newFixture(t)
	got, err := c.Correct("word", 2, 10)
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if len(got) == 0 || got[0].Word != "word" || got[0].Distance != 0 {
		t.Fatalf("exact match must rank first: %s", spew.Sdump(got))
	}
}

func TestRankingByDistanceThenFrequency(t *testing.T) {
	c := newFixture(t)
	got, err := c.Correct("worx", 2, 10)
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance < got[i-1].Distance {
			t.Fatalf("not sorted by distance ascending: %s", spew.Sdump(got))
		}
		if got[i].Distance == got[i-1].Distance && got[i].Frequency > got[i-1].Frequency {
			t.Fatalf("not sorted by frequency descending within a distance tier: %s", spew.Sdump(got))
		}
	}
}

func TestTopKBoundedness(t *testing.T) {
	c := newFixture(t)
	got, err := c.Correct("word", 2, 2)
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if len(got) > 2 {
		t.Fatalf("got %d suggestions, want at most 2: %s", len(got), spew.Sdump(got))
	}
}

func TestVerbosityTop(t *testing.T) {
	c := newFixture(t)
	got, err := c.Correct("word", 2, 10, WithVerbosity(Top))
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if len(got) > 1 {
		t.Fatalf("Top verbosity must return at most 1, got %s", spew.Sdump(got))
	}
}

func TestVerbosityClosest(t *testing.T) {
	c := newFixture(t)
	got, err := c.Correct("worx", 2, 10, WithVerbosity(Closest))
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	for _, s := range got {
		if s.Distance != got[0].Distance {
			t.Fatalf("Closest verbosity must return a single distance tier: %s", spew.Sdump(got))
		}
	}
}

func TestDistanceOutOfRange(t *testing.T) {
	c := newFixture(t)
	if _, err := c.Correct("word", -1, 3); !errors.Is(err, ErrDistanceOutOfRange) {
		t.Fatalf("expected ErrDistanceOutOfRange for -1, got %v", err)
	}
	if _, err := c.Correct("word", c.index.Depth()+1, 3); !errors.Is(err, ErrDistanceOutOfRange) {
		t.Fatalf("expected ErrDistanceOutOfRange above build depth, got %v", err)
	}
}

func TestNoMatchWithinThresholdReturnsEmpty(t *testing.T) {
	c := newFixture(t)
	got, err := c.Correct("zzzzzzzzzz", 1, 3)
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no suggestions, got %s", spew.Sdump(got))
	}
}

func TestFirstInsertedWinsFrequencyTie(t *testing.T) {
	index := symdelete.New(1, 7, symdelete.KeyExact)
	c := New(index)
	if err := c.AddEntry("cat", 10); err != nil {
		t.Fatal(err)
	}
	if err := c.AddEntry("cot", 10); err != nil {
		t.Fatal(err)
	}
	got, err := c.Correct("cbt", 1, 2)
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if len(got) < 2 {
		t.Fatalf("expected both cat and cot as candidates: %s", spew.Sdump(got))
	}
	if got[0].Word != "cat" {
		t.Fatalf("expected first-inserted word to win the tie, got %s", spew.Sdump(got))
	}
}
