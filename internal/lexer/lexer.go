// Package lexer scans formatted JSON text into classified spans for
// syntax highlighting. Each line is scanned independently: serialized
// JSON always escapes newlines inside strings, so no token can span a
// line break. Hand-edited text with a real newline inside a string
// literal is outside that guarantee and tokenizes best-effort (the
// unterminated string covers the rest of its line).
package lexer

import (
	"strings"
)

const numberChars = "-0123456789.eE+"

// Tokenize scans text and returns its tokens in (line, column) order.
// It is total: any line content produces a covering token sequence.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	var tokens []Token
	for index, line := range strings.Split(text, "\n") {
		tokens = scanLine(tokens, line, index)
	}
	return tokens
}

// scanLine appends the tokens of one line. Every byte of the line lands
// in exactly one token.
func scanLine(tokens []Token, line string, lineIndex int) []Token {
	i := 0
	for i < len(line) {
		start := i
		c := line[i]

		switch {
		case isSpace(c):
			for i < len(line) && isSpace(line[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: KindWhitespace, Text: line[start:i], Line: lineIndex, Col: start})

		case c == '"':
			i = scanString(line, i)
			kind := KindString
			if isKeyPosition(line, i) {
				kind = KindKey
			}
			tokens = append(tokens, Token{Kind: kind, Text: line[start:i], Line: lineIndex, Col: start})

		case c == '-' || isDigit(c):
			for i < len(line) && strings.IndexByte(numberChars, line[i]) >= 0 {
				i++
			}
			tokens = append(tokens, Token{Kind: KindNumber, Text: line[start:i], Line: lineIndex, Col: start})

		case strings.HasPrefix(line[i:], "true"):
			i += len("true")
			tokens = append(tokens, Token{Kind: KindBoolean, Text: "true", Line: lineIndex, Col: start})

		case strings.HasPrefix(line[i:], "false"):
			i += len("false")
			tokens = append(tokens, Token{Kind: KindBoolean, Text: "false", Line: lineIndex, Col: start})

		case strings.HasPrefix(line[i:], "null"):
			i += len("null")
			tokens = append(tokens, Token{Kind: KindNull, Text: "null", Line: lineIndex, Col: start})

		default:
			i++
			tokens = append(tokens, Token{Kind: KindPunctuation, Text: line[start:i], Line: lineIndex, Col: start})
		}
	}
	return tokens
}

// scanString consumes a string literal starting at the opening quote.
// A backslash escapes exactly the next character. An unterminated
// literal extends to the end of the line.
func scanString(line string, i int) int {
	i++ // opening quote
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	if i > len(line) {
		// trailing backslash escaped past the end of the line
		i = len(line)
	}
	return i
}

// isKeyPosition reports whether the first non-space character at or
// after position i is a colon, which reclassifies the string that just
// ended as an object key.
func isKeyPosition(line string, i int) bool {
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	return i < len(line) && line[i] == ':'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
