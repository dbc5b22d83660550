// Package jsonscript embeds arbitrary values as JSON inside HTML
// <script type="application/json"> elements, escaping the characters
// that would otherwise allow breaking out of the script context.
package jsonscript

import (
	"fmt"
	"strings"

	json "github.com/eznix86/jsonscript/jsoncompat"
)

// escaper replaces the characters that terminate or alter a script
// context with their JSON Unicode escapes. It operates on raw characters
// only, so already-escaped sequences pass through untouched.
var escaper = strings.NewReplacer(
	"<", `\u003c`,
	">", `\u003e`,
	"&", `\u0026`,
)

// Encode serializes value to JSON text safe for embedding in the body of
// a <script> element. Lazy values are forced before serialization.
func Encode(value any) (string, error) {
	b, err := json.Marshal(Force(value))
	if err != nil {
		return "", fmt.Errorf("encode value: %w", err)
	}
	return escaper.Replace(string(b)), nil
}

// Render returns a complete script element wrapping the encoded value:
//
//	<script id="{elementID}" type="application/json">{json}</script>
//
// elementID is emitted verbatim; callers are expected to pass a safe,
// caller-controlled identifier.
func Render(value any, elementID string) (string, error) {
	payload, err := Encode(value)
	if err != nil {
		return "", err
	}
	return `<script id="` + elementID + `" type="application/json">` + payload + `</script>`, nil
}
