// Package search implements literal substring search across multi-line
// text, plus the cyclic next/previous index arithmetic the caller
// threads through its own current-match state.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is one occurrence of the query. Line and Col are zero-based
// byte offsets into the original line. Text is the matched span of the
// original line; in case-insensitive mode its byte length can differ
// from the query's when a folded rune changes width, and Length always
// reports the matched span's byte length.
type Match struct {
	Line   int
	Col    int
	Length int
	Text   string
}

// Find returns every occurrence of query in text, ordered by
// (line, column). The scan resumes one character past the start of each
// hit, so overlapping occurrences are all reported: query "aa" on the
// line "aaa" yields matches at columns 0 and 1. An empty query or empty
// text yields no matches.
//
// Case-insensitive matching folds rune-by-rune against the original
// line rather than searching a lowered copy, so columns stay valid even
// when lowering a rune changes its byte width.
func Find(query, text string, caseSensitive bool) []Match {
	var matches []Match
	if query == "" || text == "" {
		return matches
	}

	for index, line := range strings.Split(text, "\n") {
		if caseSensitive {
			from := 0
			for from <= len(line)-len(query) {
				rel := strings.Index(line[from:], query)
				if rel < 0 {
					break
				}
				col := from + rel
				matches = append(matches, Match{
					Line:   index,
					Col:    col,
					Length: len(query),
					Text:   line[col : col+len(query)],
				})
				from = col + 1
			}
			continue
		}

		for col := 0; col < len(line); {
			if width, ok := foldPrefix(line[col:], query); ok {
				matches = append(matches, Match{
					Line:   index,
					Col:    col,
					Length: width,
					Text:   line[col : col+width],
				})
			}
			_, size := utf8.DecodeRuneInString(line[col:])
			col += size
		}
	}
	return matches
}

// foldPrefix reports whether s starts with needle under per-rune case
// folding, and the byte length of the matched prefix within s.
func foldPrefix(s, needle string) (int, bool) {
	at := 0
	for _, want := range needle {
		if at >= len(s) {
			return 0, false
		}
		have, size := utf8.DecodeRuneInString(s[at:])
		if unicode.ToLower(have) != unicode.ToLower(want) {
			return 0, false
		}
		at += size
	}
	return at, true
}

// Next advances a current-match index cyclically. With zero matches it
// is a no-op and returns current unchanged.
func Next(current, count int) int {
	if count <= 0 {
		return current
	}
	return (current + 1) % count
}

// Prev moves a current-match index backwards cyclically, wrapping from
// the first match to the last. With zero matches it is a no-op.
func Prev(current, count int) int {
	if count <= 0 {
		return current
	}
	return (current - 1 + count) % count
}
