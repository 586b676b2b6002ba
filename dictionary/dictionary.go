// Package dictionary loads the symmetric-delete word list from its
// external text format: one "word<whitespace>frequency" entry per line,
// UTF-8, no comments, no header.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Sentinel error kinds, per §7.
var (
	ErrFileMissing   = errors.New("dictionary: file missing or unreadable")
	ErrMalformedLine = errors.New("dictionary: malformed line")
	ErrDuplicateWord = errors.New("dictionary: duplicate word")
)

// Entry is a single (word, frequency) pair parsed from a dictionary file.
type Entry struct {
	Word      string
	Frequency int64
}

// Sink receives entries as they are parsed, in file order, and fails the
// whole load (fail-fast, per §7) by returning a non-nil error.
type Sink func(Entry) error

// Load reads path and calls sink once per entry, in order. The first
// malformed line, duplicate word (as reported by sink), or trailing blank
// line aborts the load; the caller is expected to discard any partially
// built state.
//
// The file handle is scoped to this call and released on every exit path.
func Load(path string, sink Sink) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %q: %w", path, ErrFileMissing)
	}
	defer f.Close()

	return load(f, sink)
}

// load has no tolerance for blank lines anywhere in the file — including a
// trailing one, which a naive implementation might shrug off as an editor
// artifact. A blank line has zero whitespace-separated fields, so it fails
// the same "fewer than two fields" rule as any other malformed line; no
// special-case handling is needed to reject it.
func load(f *os.File, sink Sink) (int, error) {
	scanner := bufio.NewScanner(f)

	count := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		entry, err := parseLine(line, lineNo)
		if err != nil {
			return count, err
		}

		if err := sink(entry); err != nil {
			return count, fmt.Errorf("line %d, word %q: %w", lineNo, entry.Word, err)
		}

		count++
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("reading %w", err)
	}

	return count, nil
}

// LoadAll reads path and returns every entry, in file order, failing with
// ErrDuplicateWord on a word repeated across lines. It exists so a caller
// (e.g. a corpus-enrichment step) can inspect and adjust frequencies before
// entries are fed into an index.
func LoadAll(path string) ([]Entry, error) {
	var entries []Entry
	seen := make(map[string]bool)

	_, err := Load(path, func(e Entry) error {
		if seen[e.Word] {
			return ErrDuplicateWord
		}
		seen[e.Word] = true
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// EntryAdder is the minimal surface a build target needs:
// corrector.Corrector and corrector.LinearCorrector both satisfy it.
// symdelete.Index does not (its method is Add).
type EntryAdder interface {
	AddEntry(word string, frequency int64) error
}

// BuildInto loads path (rejecting duplicate words per the text format
// itself, see LoadAll) and feeds every entry into adder via AddEntry.
func BuildInto(path string, adder EntryAdder) (int, error) {
	entries, err := LoadAll(path)
	if err != nil {
		return len(entries), err
	}

	for i, e := range entries {
		if err := adder.AddEntry(e.Word, e.Frequency); err != nil {
			return i, fmt.Errorf("add %q: %w", e.Word, err)
		}
	}

	return len(entries), nil
}

func parseLine(line string, lineNo int) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Entry{}, fmt.Errorf("line %d: expected word and frequency, got %d field(s): %w",
			lineNo, len(fields), ErrMalformedLine)
	}

	freq, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || freq < 0 {
		return Entry{}, fmt.Errorf("line %d: invalid frequency %q: %w", lineNo, fields[1], ErrMalformedLine)
	}

	return Entry{Word: fields[0], Frequency: freq}, nil
}
