package translator

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/shader"
)

func requireTranslator(t *testing.T) {
	t.Helper()
	if _, err := GetTranslator(); err != nil {
		t.Skipf("shader translator unavailable: %v", err)
	}
}

func TestTranslateTriangleShaders(t *testing.T) {
	requireTranslator(t)

	out, err := Translate(shader.Portable())
	require.NoError(t, err)
	assert.True(t, out.Translated)
	assert.Contains(t, out.Vertex, "main")
	assert.Contains(t, out.Fragment, "main")
	assert.NotEmpty(t, out.Position)
}

func TestTranslateRejectsBrokenSource(t *testing.T) {
	requireTranslator(t)

	src := shader.Portable()
	src.Fragment = "#version 300 es\nprecision mediump float;\nout vec4 color;\nvoid main() { color = undefinedColor; }\n"
	_, err := Translate(src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graphics.ErrShader))
}

func TestTranslatePassesThroughDesktopSources(t *testing.T) {
	src := shader.Desktop()
	out, err := Translate(src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}
