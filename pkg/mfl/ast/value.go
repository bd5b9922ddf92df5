package ast

import (
	"strconv"
	"strings"
)

// Value is the dynamically-typed data unit used for all free-form data in
// MFL (task inputs and outputs, variable values, case labels). It is a
// closed sum: the only implementations are String, Boolean, Float, Integer,
// Array, and Mapping.
type Value interface {
	valueNode()

	// String returns a compact, human-readable rendering of the value,
	// suitable for diagnostics.
	String() string
}

// String is a textual value. Quoted and block scalars always decode to
// String; plain scalars decode to String when no other coercion applies.
type String string

// Boolean is a true/false value. Only the literal spellings "true" and
// "false" decode to Boolean; YAML's wider yes/no/on/off aliases do not.
type Boolean bool

// Float is a floating-point value kept as the original source text to avoid
// precision loss and formatting drift. Conversion to a binary representation
// is the consumer's concern.
type Float string

// Integer is a 64-bit signed integer value.
type Integer int64

// Array is an ordered sequence of values.
type Array []Value

// Mapping is an ordered sequence of key/value pairs. Source order is
// preserved and duplicate keys are allowed; deduplication, if any, is a
// downstream concern.
type Mapping []KV

// KV is a single key/value pair within a Mapping.
type KV struct {
	Location Location
	Key      string
	Value    Value
}

func (String) valueNode()  {}
func (Boolean) valueNode() {}
func (Float) valueNode()   {}
func (Integer) valueNode() {}
func (Array) valueNode()   {}
func (Mapping) valueNode() {}

func (s String) String() string  { return strconv.Quote(string(s)) }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (f Float) String() string   { return string(f) }
func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (m Mapping) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, kv := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(kv.Key)
		sb.WriteString(": ")
		sb.WriteString(kv.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Get returns the value for the first occurrence of key, or nil and false if
// the key is not present.
func (m Mapping) Get(key string) (Value, bool) {
	for _, kv := range m {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// Keys returns the mapping keys in source order, including duplicates.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, kv := range m {
		keys[i] = kv.Key
	}
	return keys
}
