//go:build !goexperiment.jsonv2

package json

import (
	"bytes"
	stdjson "encoding/json"
)

// JSON v1 compatibility layer (default).
//
// Marshal goes through an Encoder with HTML escaping disabled so that
// the escaping layer above this package is the only place the
// script-unsafe characters are handled, under v1 and v2 alike.

func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := stdjson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode terminates the value with a newline
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func Unmarshal(data []byte, v any) error {
	return stdjson.Unmarshal(data, v)
}
