//go:build goexperiment.jsonv2

package json

import jsonv2 "encoding/json/v2"

// JSON v2 compatibility layer.
//
// v2 does not escape HTML-significant characters on its own; the
// escaping layer above this package handles them.

func Marshal(v any) ([]byte, error) {
	return jsonv2.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return jsonv2.Unmarshal(data, v)
}
