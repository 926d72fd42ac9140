package renderer

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/graphics/graphicstest"
	"github.com/richinsley/hellotriangle/shader"
)

func TestCompileAndLink(t *testing.T) {
	dev := graphicstest.NewDevice()
	src := shader.Desktop()

	prog, diags := CompileAndLink(dev, src)
	require.NotNil(t, prog)
	assert.Empty(t, diags)

	p := dev.Programs[prog.Handle]
	require.NotNil(t, p)
	assert.True(t, p.Linked)
	require.Len(t, p.Attached, 2)
	assert.Equal(t, uint32(shader.PositionLocation), p.AttribLocations[shader.PositionAttribute])

	vs, fs := dev.Shaders[p.Attached[0]], dev.Shaders[p.Attached[1]]
	assert.Equal(t, graphics.VertexShader, vs.Type)
	assert.Equal(t, src.Vertex, vs.Source)
	assert.Equal(t, graphics.FragmentShader, fs.Type)
	assert.Equal(t, src.Fragment, fs.Source)
	// Intermediate shader objects do not outlive the link.
	assert.True(t, vs.Deleted)
	assert.True(t, fs.Deleted)
}

func TestCompileFailureStillLinks(t *testing.T) {
	dev := graphicstest.NewDevice()
	dev.CompileErrors[graphics.FragmentShader] = "0:3: 'colour' : undeclared identifier\x00"

	prog, diags := CompileAndLink(dev, shader.Desktop())
	require.NotNil(t, prog)
	require.Len(t, diags, 2)

	assert.Equal(t, StageFragment, diags[0].Stage)
	assert.Contains(t, diags[0].Log, "undeclared identifier")
	assert.Equal(t, StageLink, diags[1].Stage)

	p := dev.Programs[prog.Handle]
	assert.Len(t, p.Attached, 2)
	assert.NotZero(t, prog.Handle)
	assert.Contains(t, dev.Calls, "LinkProgram(3)")
}

func TestLinkFailure(t *testing.T) {
	dev := graphicstest.NewDevice()
	dev.LinkError = "error: vertex output 'x' not read by fragment shader"

	_, diags := CompileAndLink(dev, shader.Desktop())
	require.Len(t, diags, 1)
	assert.Equal(t, StageLink, diags[0].Stage)
	assert.Equal(t, "shader diagnostic (link): error: vertex output 'x' not read by fragment shader", diags[0].Error())
}

func TestDiagnosticIsShaderError(t *testing.T) {
	var err error = Diagnostic{Stage: StageVertex, Log: "bad\n"}
	assert.True(t, errors.Is(err, graphics.ErrShader))
	assert.True(t, errors.Is(errors.Wrap(err, "setup"), graphics.ErrShader))
	assert.False(t, errors.Is(err, graphics.ErrLoader))
	assert.Equal(t, "shader diagnostic (vertex): bad", err.Error())
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex", StageVertex.String())
	assert.Equal(t, "fragment", StageFragment.String())
	assert.Equal(t, "link", StageLink.String())
}

func TestProgramDelete(t *testing.T) {
	dev := graphicstest.NewDevice()
	prog, _ := CompileAndLink(dev, shader.Desktop())
	handle := prog.Handle

	prog.Delete()
	prog.Delete()
	assert.True(t, dev.Programs[handle].Deleted)
	assert.Zero(t, prog.Handle)

	var none *Program
	assert.NotPanics(t, none.Delete)
}
