package jsonscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestForce(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "non-lazy value passes through", value: "plain", want: "plain"},
		{name: "nil passes through", value: nil, want: nil},
		{name: "lazy func", value: LazyFunc(func() any { return 42 }), want: 42},
		{
			name: "chained lazies resolve to the innermost value",
			value: LazyFunc(func() any {
				return LazyFunc(func() any { return "inner" })
			}),
			want: "inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Force(tt.value))
		})
	}
}

func TestEncode_LazyMatchesForced(t *testing.T) {
	concrete := "<script>this</script>ampersand: &amp;"
	lazy := LazyFunc(func() any { return concrete })

	fromLazy, err := Encode(lazy)
	require.NoError(t, err)
	fromConcrete, err := Encode(concrete)
	require.NoError(t, err)

	assert.Equal(t, fromConcrete, fromLazy)
}

func TestTranslated(t *testing.T) {
	p := message.NewPrinter(language.English)

	lazy := Translated(p, "%d widgets", 1000)
	assert.Equal(t, "1,000 widgets", Force(lazy))

	got, err := Render(Translated(p, "save & close"), "label")
	require.NoError(t, err)
	assert.Equal(t, `<script id="label" type="application/json">"save \u0026 close"</script>`, got)
}
