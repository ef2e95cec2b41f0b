// Package formatter serializes a parsed Value back to JSON text with a
// configurable indent width and optional key sorting. The serialized
// form always escapes newlines inside strings, which is what lets the
// lexer scan the output line by line.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"jsonlens/internal/errors"
	"jsonlens/internal/models"
	"jsonlens/internal/parser"
)

// Indent widths accepted by Format. 0 produces minified output.
var supportedIndents = map[int]bool{0: true, 2: true, 4: true, 8: true}

// Options controls serialization.
type Options struct {
	// Indent is the number of spaces per nesting level: 0, 2, 4 or 8.
	// 0 means minified (no whitespace at all).
	Indent int
	// SortKeys recursively sorts object keys before serializing.
	SortKeys bool
}

// Format serializes v according to opts.
func Format(v models.Value, opts Options) (string, error) {
	if !supportedIndents[opts.Indent] {
		return "", errors.NewFormatError(
			fmt.Sprintf("unsupported indent width %d", opts.Indent),
			errors.ErrInvalidIndent,
		)
	}
	if opts.SortKeys {
		v = SortKeys(v)
	}

	var b strings.Builder
	writeValue(&b, v, opts.Indent, 0)
	return b.String(), nil
}

// FormatString parses text and serializes the result. On any failure it
// returns the empty string alongside the error, so callers can render
// "nothing" rather than a partial document.
func FormatString(text string, opts Options) (string, error) {
	v, err := parser.ParseString(text)
	if err != nil {
		return "", err
	}
	return Format(v, opts)
}

// SortKeys returns a copy of v with object keys recursively sorted by
// ordinal string comparison. Array element order and scalar values pass
// through unchanged. It is used only for the optional sort-keys
// formatting mode, never by the diff engine.
func SortKeys(v models.Value) models.Value {
	switch v.Kind {
	case models.Object:
		members := make([]models.Member, len(v.Members))
		for i, m := range v.Members {
			members[i] = models.Member{Key: m.Key, Value: SortKeys(m.Value)}
		}
		sort.Slice(members, func(i, j int) bool {
			return members[i].Key < members[j].Key
		})
		return models.ObjectValue(members)
	case models.Array:
		items := make([]models.Value, len(v.Items))
		for i, item := range v.Items {
			items[i] = SortKeys(item)
		}
		return models.ArrayValue(items)
	default:
		return v
	}
}

func writeValue(b *strings.Builder, v models.Value, indent, depth int) {
	switch v.Kind {
	case models.Null:
		b.WriteString("null")
	case models.Bool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case models.Number:
		// The literal is echoed as parsed; reformatting never rewrites
		// a number the author typed.
		b.WriteString(string(v.Number))
	case models.String:
		writeString(b, v.Str)
	case models.Array:
		writeArray(b, v, indent, depth)
	case models.Object:
		writeObject(b, v, indent, depth)
	}
}

func writeArray(b *strings.Builder, v models.Value, indent, depth int) {
	if len(v.Items) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	for i, item := range v.Items {
		if i > 0 {
			b.WriteByte(',')
		}
		writeNewlineIndent(b, indent, depth+1)
		writeValue(b, item, indent, depth+1)
	}
	writeNewlineIndent(b, indent, depth)
	b.WriteByte(']')
}

func writeObject(b *strings.Builder, v models.Value, indent, depth int) {
	if len(v.Members) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteByte('{')
	for i, m := range v.Members {
		if i > 0 {
			b.WriteByte(',')
		}
		writeNewlineIndent(b, indent, depth+1)
		writeString(b, m.Key)
		b.WriteByte(':')
		if indent > 0 {
			b.WriteByte(' ')
		}
		writeValue(b, m.Value, indent, depth+1)
	}
	writeNewlineIndent(b, indent, depth)
	b.WriteByte('}')
}

func writeNewlineIndent(b *strings.Builder, indent, depth int) {
	if indent == 0 {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < indent*depth; i++ {
		b.WriteByte(' ')
	}
}

const hexDigits = "0123456789abcdef"

// writeString emits s as a JSON string literal. Control characters and
// the two mandatory escapes are encoded; everything else, multi-byte
// UTF-8 included, is written verbatim.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
}
