package jsonscript

import "golang.org/x/text/message"

// Lazy defers producing a value until it is forced. It covers constructs
// like translatable strings whose final text is not known at the time the
// template context is built.
type Lazy interface {
	Force() any
}

// LazyFunc adapts a plain function to the Lazy interface.
type LazyFunc func() any

func (f LazyFunc) Force() any { return f() }

// Compile-time interface compliance check
var _ Lazy = (LazyFunc)(nil)

// Force resolves v to a concrete value. Chained lazy values are forced
// until a non-lazy value is reached; any other value is returned as-is.
func Force(v any) any {
	for {
		l, ok := v.(Lazy)
		if !ok {
			return v
		}
		v = l.Force()
	}
}

// Translated returns a lazy string localized through p when forced.
// key and args follow message.Printer.Sprintf semantics.
func Translated(p *message.Printer, key message.Reference, args ...any) Lazy {
	return LazyFunc(func() any {
		return p.Sprintf(key, args...)
	})
}
