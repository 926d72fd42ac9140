package renderer

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/shader"
)

const floatSize = 4

// AttribLayout describes how one vertex attribute slot reads the bound buffer.
type AttribLayout struct {
	Slot       uint32
	Components int32
	Normalized bool
	Stride     int32 // bytes
	Offset     int   // bytes
}

// PositionLayout is the tightly packed vec3 position layout at slot 0.
func PositionLayout() AttribLayout {
	return AttribLayout{
		Slot:       shader.PositionLocation,
		Components: 3,
		Normalized: false,
		Stride:     3 * floatSize,
		Offset:     0,
	}
}

// TriangleVertices returns the triangle in normalized device coordinates.
func TriangleVertices() []mgl32.Vec3 {
	return []mgl32.Vec3{
		{-0.5, -0.5, 0.0},
		{0.5, -0.5, 0.0},
		{0.0, 0.5, 0.0},
	}
}

// Flatten packs vectors into a contiguous float slice.
func Flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		x, y, z := v.Elem()
		out = append(out, x, y, z)
	}
	return out
}

// VertexBuffer is a write-once vertex buffer and the vertex array describing it.
type VertexBuffer struct {
	VAO      uint32
	VBO      uint32
	Vertices []float32
	Layout   AttribLayout
	dev      graphics.Device
}

// Upload copies vertices into a static GPU buffer and records layout in a new vertex array.
func Upload(dev graphics.Device, vertices []float32, layout AttribLayout) (*VertexBuffer, error) {
	if layout.Components <= 0 {
		return nil, errors.Newf("invalid component count %d", layout.Components)
	}
	if len(vertices) == 0 || len(vertices)%int(layout.Components) != 0 {
		return nil, errors.Newf("vertex data of %d floats does not split into %d-component vertices", len(vertices), layout.Components)
	}

	vb := &VertexBuffer{
		Vertices: append([]float32(nil), vertices...),
		Layout:   layout,
		dev:      dev,
	}

	vb.VAO = dev.GenVertexArray()
	vb.VBO = dev.GenBuffer()
	dev.BindVertexArray(vb.VAO)
	dev.BindArrayBuffer(vb.VBO)
	dev.BufferStaticData(vb.Vertices)
	dev.VertexAttribPointer(layout.Slot, layout.Components, layout.Normalized, layout.Stride, layout.Offset)
	dev.EnableVertexAttribArray(layout.Slot)

	// The vertex array keeps its reference to the buffer; both can be unbound.
	dev.BindArrayBuffer(0)
	dev.BindVertexArray(0)

	return vb, nil
}

// VertexCount is the number of vertices the layout decodes from the uploaded floats.
func (vb *VertexBuffer) VertexCount() int32 {
	return int32(len(vb.Vertices)) / vb.Layout.Components
}

func (vb *VertexBuffer) Bind() {
	vb.dev.BindVertexArray(vb.VAO)
}

func (vb *VertexBuffer) Delete() {
	if vb == nil || vb.VAO == 0 {
		return
	}
	vb.dev.DeleteVertexArray(vb.VAO)
	vb.dev.DeleteBuffer(vb.VBO)
	vb.VAO, vb.VBO = 0, 0
}
