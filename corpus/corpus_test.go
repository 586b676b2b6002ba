package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCorpus(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadHappyPath(t *testing.T) {
	path := writeTempCorpus(t, `{"the": 100, "of": 90}`)
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got["the"] != 100 || got["of"] != 90 {
		t.Fatalf("got %v", got)
	}
}

func TestLoadRejectsNonObject(t *testing.T) {
	path := writeTempCorpus(t, `[1, 2, 3]`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a non-object top level JSON value")
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := writeTempCorpus(t, `{not json`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestLoadRejectsNonNumericCount(t *testing.T) {
	path := writeTempCorpus(t, `{"the": "a lot"}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a non-numeric count")
	}
}

func TestMergeOnlyOverlaysKnownWords(t *testing.T) {
	entries := map[string]int64{"the": 1, "of": 2}
	overrides := Frequencies{"the": 999, "unknownword": 50}

	Merge(entries, overrides)

	if entries["the"] != 999 {
		t.Fatalf("expected 'the' to be overridden, got %d", entries["the"])
	}
	if entries["of"] != 2 {
		t.Fatalf("expected 'of' to be untouched, got %d", entries["of"])
	}
	if _, ok := entries["unknownword"]; ok {
		t.Fatal("expected a corpus-only word not to be added to entries")
	}
}
