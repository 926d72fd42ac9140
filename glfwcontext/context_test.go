package glfwcontext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richinsley/hellotriangle/graphics"
)

func TestKeyMapCoversRendererKeys(t *testing.T) {
	for _, key := range []graphics.Key{graphics.KeyEscape, graphics.KeySpace, graphics.KeyEnter, graphics.KeyQ} {
		_, ok := keyMap[key]
		assert.True(t, ok, "key %d", key)
	}
	_, ok := keyMap[graphics.KeyUnknown]
	assert.False(t, ok)
}

func TestUnknownKeyIsNeverPressed(t *testing.T) {
	c := &Context{}
	assert.False(t, c.KeyPressed(graphics.KeyUnknown))
}

func TestFramebufferSizeCallbackForwards(t *testing.T) {
	c := &Context{}
	c.glfwFramebufferSizeCallback(nil, 10, 20)

	var got [2]int
	c.SetFramebufferSizeCallback(func(w, h int) { got = [2]int{w, h} })
	c.glfwFramebufferSizeCallback(nil, 1280, 720)
	assert.Equal(t, [2]int{1280, 720}, got)
}
