//go:build linux

package gldevice

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/hellotriangle/headless"
	"github.com/richinsley/hellotriangle/renderer"
	"github.com/richinsley/hellotriangle/shader"
)

func initTestGL(t *testing.T, width, height int) *Device {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	h, err := headless.NewHeadless(width, height)
	if err != nil {
		t.Skipf("no EGL display: %v", err)
	}
	t.Cleanup(h.Shutdown)

	dev, err := New()
	if err != nil {
		t.Skipf("no OpenGL 4.1 core entry points: %v", err)
	}
	return dev
}

func TestDesktopShadersCompile(t *testing.T) {
	dev := initTestGL(t, 16, 16)

	prog, diags := renderer.CompileAndLink(dev, shader.Desktop())
	defer prog.Delete()
	assert.Empty(t, diags)
	assert.NotZero(t, prog.Handle)
}

func TestBrokenShaderReportsLog(t *testing.T) {
	dev := initTestGL(t, 16, 16)

	src := shader.Desktop()
	src.Fragment = "#version 410 core\nout vec4 color;\nvoid main() { color = undefinedColor; }\n"
	prog, diags := renderer.CompileAndLink(dev, src)
	defer prog.Delete()
	require.NotEmpty(t, diags)
	assert.Equal(t, renderer.StageFragment, diags[0].Stage)
	assert.NotEmpty(t, diags[0].Log)
}

func TestRenderTriangleOffscreen(t *testing.T) {
	const size = 32
	dev := initTestGL(t, size, size)

	prog, diags := renderer.CompileAndLink(dev, shader.Desktop())
	require.Empty(t, diags)
	defer prog.Delete()
	vb, err := renderer.Upload(dev, renderer.Flatten(renderer.TriangleVertices()), renderer.PositionLayout())
	require.NoError(t, err)
	defer vb.Delete()

	off, err := renderer.NewOffscreen(dev, size, size)
	require.NoError(t, err)
	defer off.Delete()
	off.Bind()

	dev.ClearColor(renderer.DefaultClearColor.Elem())
	dev.ClearColorBuffer()
	prog.Use()
	vb.Bind()
	dev.DrawTriangles(0, vb.VertexCount())

	pixels := off.ReadFrame()
	off.Unbind()
	require.Len(t, pixels, size*size*4)

	at := func(x, y int) []byte {
		i := (y*size + x) * 4
		return pixels[i : i+4]
	}
	// Corners show the background, the center is covered by the triangle.
	assertRGBA(t, [4]int{51, 77, 77, 255}, at(0, 0))
	assertRGBA(t, [4]int{51, 77, 77, 255}, at(size-1, size-1))
	assertRGBA(t, [4]int{255, 128, 51, 255}, at(size/2, size/2))
}

func assertRGBA(t *testing.T, want [4]int, got []byte) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], int(got[i]), 1, "channel %d of %v", i, got)
	}
}
