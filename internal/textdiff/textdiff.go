// Package textdiff compares two text blocks line by line with two
// synchronized cursors. This is a positional comparison, not a
// minimal-edit-distance diff: a line inserted near the top shifts every
// following pair out of alignment and each shifted pair is reported as
// removed/added. That cascade is the contract of the plain-text compare
// view and must not be replaced with an LCS alignment.
package textdiff

import (
	"regexp"
	"strings"
)

// Kind classifies one side of an aligned line pair.
type Kind uint8

const (
	Unchanged Kind = iota
	Added
	Removed
)

// String returns the kind name used when rendering the comparison.
func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Line is one row of a side. Number is the 1-based line number within
// its own side, or 0 for the empty placeholder emitted when the other
// side still has lines left.
type Line struct {
	Kind    Kind
	Content string
	Number  int
}

// Options are the preprocessing toggles. Both apply to the whole text
// before it is split into lines, identically on both sides.
type Options struct {
	// CollapseWhitespace replaces every whitespace run with a single
	// space and trims the ends. Line breaks are whitespace too, so this
	// reduces each input to a single line.
	CollapseWhitespace bool
	// IgnoreCase lowercases both inputs.
	IgnoreCase bool
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Compare splits both texts into lines and walks them positionally.
// The returned sequences have equal length; index k of one side is
// aligned with index k of the other. There is no failure mode: any two
// inputs, empty included, produce a valid (possibly empty) result.
func Compare(left, right string, opts Options) (leftSeq, rightSeq []Line) {
	leftLines := splitLines(preprocess(left, opts))
	rightLines := splitLines(preprocess(right, opts))
	return DiffLines(leftLines, rightLines)
}

// DiffLines is the two-cursor pass over already-split line slices.
func DiffLines(leftLines, rightLines []string) (leftSeq, rightSeq []Line) {
	i, j := 0, 0
	for i < len(leftLines) || j < len(rightLines) {
		switch {
		case i >= len(leftLines):
			leftSeq = append(leftSeq, Line{Kind: Added})
			rightSeq = append(rightSeq, Line{Kind: Added, Content: rightLines[j], Number: j + 1})
			j++
		case j >= len(rightLines):
			leftSeq = append(leftSeq, Line{Kind: Removed, Content: leftLines[i], Number: i + 1})
			rightSeq = append(rightSeq, Line{Kind: Removed})
			i++
		case leftLines[i] == rightLines[j]:
			leftSeq = append(leftSeq, Line{Kind: Unchanged, Content: leftLines[i], Number: i + 1})
			rightSeq = append(rightSeq, Line{Kind: Unchanged, Content: rightLines[j], Number: j + 1})
			i++
			j++
		default:
			leftSeq = append(leftSeq, Line{Kind: Removed, Content: leftLines[i], Number: i + 1})
			rightSeq = append(rightSeq, Line{Kind: Added, Content: rightLines[j], Number: j + 1})
			i++
			j++
		}
	}
	return leftSeq, rightSeq
}

func preprocess(text string, opts Options) string {
	if opts.CollapseWhitespace {
		text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	}
	if opts.IgnoreCase {
		text = strings.ToLower(text)
	}
	return text
}

// splitLines splits on '\n'. An empty text has no lines at all rather
// than one empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
