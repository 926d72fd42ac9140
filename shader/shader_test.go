package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortableSources(t *testing.T) {
	src := Portable()
	assert.False(t, src.Translated)
	assert.True(t, strings.HasPrefix(src.Vertex, "#version 300 es\n"))
	assert.True(t, strings.HasPrefix(src.Fragment, "#version 300 es\n"))
	assert.Contains(t, src.Fragment, "precision mediump float;")
}

func TestDesktopSources(t *testing.T) {
	src := Desktop()
	assert.True(t, src.Translated)
	assert.True(t, strings.HasPrefix(src.Vertex, "#version 410 core\n"))
	assert.True(t, strings.HasPrefix(src.Fragment, "#version 410 core\n"))
}

func TestPositionAttributeAtSlotZero(t *testing.T) {
	for name, src := range map[string]Sources{"portable": Portable(), "desktop": Desktop()} {
		assert.Contains(t, src.Vertex, "layout (location = 0) in vec3 "+PositionAttribute+";", name)
		assert.Contains(t, src.Fragment, "vec4(1.0, 0.5, 0.2, 1.0)", name)
	}
	assert.Equal(t, 0, PositionLocation)
}
