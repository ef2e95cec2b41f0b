package lexer

// Kind classifies a lexical span of formatted JSON text.
type Kind uint8

const (
	KindWhitespace Kind = iota
	KindKey
	KindString
	KindNumber
	KindBoolean
	KindNull
	KindPunctuation
)

// String returns the kind name used when rendering token dumps.
func (k Kind) String() string {
	switch k {
	case KindWhitespace:
		return "whitespace"
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Token is one classified span. Line and Col are zero-based; Col counts
// bytes from the start of the line. Concatenating the Text of a line's
// tokens in order reproduces that line exactly.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}
