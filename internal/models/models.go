package models

import (
	"encoding/json"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of an object. Objects keep their
// members in insertion order so formatting without key sorting can
// reproduce the document as written.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value. Exactly one variant is meaningful,
// selected by Kind; the others hold their zero value. Values are never
// mutated after parsing — every transformation returns a fresh Value.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  json.Number // raw literal, preserved for serialization
	Str     string
	Items   []Value  // Array elements
	Members []Member // Object members, insertion order, keys unique
}

// Constructors for each variant.

func NullValue() Value             { return Value{Kind: Null} }
func BoolValue(b bool) Value       { return Value{Kind: Bool, Bool: b} }
func StringValue(s string) Value   { return Value{Kind: String, Str: s} }
func ArrayValue(v []Value) Value   { return Value{Kind: Array, Items: v} }
func ObjectValue(m []Member) Value { return Value{Kind: Object, Members: m} }

// NumberValue wraps a raw JSON number literal.
func NumberValue(n json.Number) Value { return Value{Kind: Number, Number: n} }

// IsContainer reports whether the value is an object or an array.
func (v Value) IsContainer() bool {
	return v.Kind == Object || v.Kind == Array
}

// Field looks up an object member by key. The second return is false
// when the key is absent or the value is not an object.
func (v Value) Field(key string) (Value, bool) {
	if v.Kind != Object {
		return Value{}, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the object's member keys in insertion order, or nil for
// any other kind.
func (v Value) Keys() []string {
	if v.Kind != Object {
		return nil
	}
	keys := make([]string, len(v.Members))
	for i, m := range v.Members {
		keys[i] = m.Key
	}
	return keys
}

// Float returns the number variant at float64 precision. Non-numbers
// and unparseable literals return 0; the parser only constructs Number
// values from literals the JSON grammar accepted.
func (v Value) Float() float64 {
	if v.Kind != Number {
		return 0
	}
	f, err := v.Number.Float64()
	if err != nil {
		return 0
	}
	return f
}

// Equal reports exact value equality: kinds must match (the string "1"
// never equals the number 1), numbers compare at float64 precision,
// arrays compare element by element and objects by key set and per-key
// value regardless of member order.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case Null:
		return true
	case Bool:
		return v.Bool == other.Bool
	case Number:
		return v.Float() == other.Float()
	case String:
		return v.Str == other.Str
	case Array:
		if len(v.Items) != len(other.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.Members) != len(other.Members) {
			return false
		}
		for _, m := range v.Members {
			o, ok := other.Field(m.Key)
			if !ok || !m.Value.Equal(o) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
