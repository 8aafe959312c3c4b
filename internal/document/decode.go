package document

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Decode reads a single JSON document from r into a Value tree.
// Numbers are kept as json.Number so integer-valued cells survive untouched,
// and object key order follows the source text.
func Decode(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Anything after the first document is malformed input.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON document")
	}

	return v, nil
}

// Parse decodes a JSON document held in a byte slice.
func Parse(data []byte) (*Value, error) {
	return Decode(strings.NewReader(string(data)))
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", keyTok)
		}

		child, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, child)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	var elems []*Value
	for dec.More() {
		child, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		elems = append(elems, child)
	}

	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return NewArray(elems...), nil
}
