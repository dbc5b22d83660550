package jsonscript

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component wraps Render as a templ component so the script element can
// be composed into templ pages directly.
func Component(value any, elementID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fragment, err := Render(value, elementID)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, fragment)
		return err
	})
}
