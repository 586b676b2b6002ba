package corrector

import "testing"

func TestLinearExactMatch(t *testing.T) {
	l := NewLinear(2)
	if err := l.AddEntry("word", 10); err != nil {
		t.Fatal(err)
	}
	got, err := l.Correct("word", 0, 3)
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if len(got) != 1 || got[0].Word != "word" || got[0].Distance != 0 {
		t.Fatalf("got %v, want exactly [word - 0 - 10]", got)
	}
}

func TestLinearDistanceOutOfRange(t *testing.T) {
	l := NewLinear(1)
	if _, err := l.Correct("word", 2, 3); err == nil {
		t.Fatal("expected an error for maxEditDistance above the build bound")
	}
}

func TestLinearRejectsDuplicateWord(t *testing.T) {
	l := NewLinear(2)
	if err := l.AddEntry("word", 10); err != nil {
		t.Fatal(err)
	}
	if err := l.AddEntry("word", 20); err == nil {
		t.Fatal("expected an error re-adding the same word")
	}
}
