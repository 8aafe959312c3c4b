// Package document provides the in-memory representation of a loaded profile:
// a tagged JSON value whose objects preserve the key order of the source text.
//
// Profiles have no fixed schema, so downstream code never assumes shape; it
// inspects the Kind tag at each step. Key order matters because extraction
// output must be reproducible run to run, and the only stable order for
// dynamically-named keys (dates, sessions, sides) is the order they appeared
// in the document.
package document

import (
	"encoding/json"
	"strings"
)

// Kind is the tag of a Value.
type Kind uint8

const (
	// KindNull is a JSON null.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number, kept as its source text.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object with source key order preserved.
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a decoded profile. The zero Value is a JSON null.
// Values are built once during decoding and treated as immutable afterwards.
type Value struct {
	kind   Kind
	b      bool
	num    json.Number
	str    string
	elems  []*Value
	keys   []string
	fields map[string]*Value
}

// Null returns a new null value. Each call returns a distinct pointer so
// callers may use pointer identity for sentinels.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a new boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// Number returns a new number value from its source representation.
func Number(n json.Number) *Value {
	return &Value{kind: KindNumber, num: n}
}

// String returns a new string value.
func String(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// NewArray returns a new array value holding the given elements.
func NewArray(elems ...*Value) *Value {
	return &Value{kind: KindArray, elems: elems}
}

// NewObject returns a new empty object value.
func NewObject() *Value {
	return &Value{kind: KindObject, fields: make(map[string]*Value)}
}

// Kind returns the tag of the value.
func (v *Value) Kind() Kind {
	return v.kind
}

// IsObject reports whether the value is a JSON object.
func (v *Value) IsObject() bool {
	return v.kind == KindObject
}

// Set adds or replaces a field on an object value. New keys are appended to
// the key order; replacing an existing key keeps its position.
// Calling Set on a non-object panics, the same as assigning into a nil map
// would: building a document is programmer-controlled, unlike reading one.
func (v *Value) Set(key string, child *Value) {
	if v.kind != KindObject {
		panic("document: Set on non-object value")
	}
	if _, exists := v.fields[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.fields[key] = child
}

// Keys returns the object's keys in source order. Returns nil for
// non-objects.
func (v *Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Field looks up a key on an object value. The second return is false when
// the key is absent or the value is not an object.
func (v *Value) Field(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	child, ok := v.fields[key]
	return child, ok
}

// Len returns the number of fields of an object or elements of an array,
// and zero for scalars.
func (v *Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.keys)
	case KindArray:
		return len(v.elems)
	default:
		return 0
	}
}

// Elems returns the elements of an array value, nil for non-arrays.
func (v *Value) Elems() []*Value {
	if v.kind != KindArray {
		return nil
	}
	return v.elems
}

// Str returns the string payload of a string value, "" otherwise.
func (v *Value) Str() string {
	return v.str
}

// Num returns the number payload of a number value, "" otherwise.
func (v *Value) Num() json.Number {
	return v.num
}

// Boolean returns the boolean payload of a bool value, false otherwise.
func (v *Value) Boolean() bool {
	return v.b
}

// Interface unwraps the value into plain Go types: nil, bool, int64 or
// float64, string, []any, or map[string]any. Object key order is not
// representable in a plain map; callers that need order keep the Value.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		if i, err := v.num.Int64(); err == nil {
			return i
		}
		if f, err := v.num.Float64(); err == nil {
			return f
		}
		return v.num.String()
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = v.fields[k].Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes the value, emitting object keys in source order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	if err := v.writeJSON(&sb); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func (v *Value) writeJSON(sb *strings.Builder) error {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(v.num.String())
	case KindString:
		enc, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		sb.Write(enc)
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := e.writeJSON(sb); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			enc, err := json.Marshal(k)
			if err != nil {
				return err
			}
			sb.Write(enc)
			sb.WriteByte(':')
			if err := v.fields[k].writeJSON(sb); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	}
	return nil
}
