package jsonscript

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	comp := Component(map[string]string{"theme": "<dark>"}, "settings")

	var sb strings.Builder
	require.NoError(t, comp.Render(context.Background(), &sb))

	assert.Equal(t,
		`<script id="settings" type="application/json">{"theme":"\u003cdark\u003e"}</script>`,
		sb.String(),
	)
}

func TestComponent_SerializationError(t *testing.T) {
	comp := Component(make(chan int), "settings")

	var sb strings.Builder
	err := comp.Render(context.Background(), &sb)
	require.Error(t, err)
	assert.Empty(t, sb.String())
}
