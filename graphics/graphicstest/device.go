// Package graphicstest provides recording fakes of graphics.Device and graphics.Context
// for exercising renderer logic without a GPU or a display.
package graphicstest

import (
	"fmt"

	"github.com/richinsley/hellotriangle/graphics"
)

type Shader struct {
	Type     graphics.ShaderType
	Source   string
	Compiled bool
	Deleted  bool
}

type Program struct {
	Attached        []uint32
	AttribLocations map[string]uint32
	Linked          bool
	Deleted         bool
}

type Buffer struct {
	Data    []float32
	Deleted bool
}

// AttribPointer records one VertexAttribPointer call.
type AttribPointer struct {
	Buffer     uint32
	Size       int32
	Normalized bool
	Stride     int32
	Offset     int
	Enabled    bool
}

type VertexArray struct {
	Attribs map[uint32]*AttribPointer
	Deleted bool
}

// DrawCall records one DrawTriangles call together with the state bound when it was issued.
type DrawCall struct {
	Program uint32
	VAO     uint32
	First   int32
	Count   int32
}

// Device is a recording graphics.Device. Set CompileErrors or LinkError before use to
// simulate driver failures.
type Device struct {
	CompileErrors  map[graphics.ShaderType]string
	LinkError      string
	FramebufferErr error

	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	Buffers      map[uint32]*Buffer
	VertexArrays map[uint32]*VertexArray
	Framebuffers map[uint32]*graphics.Framebuffer

	Draws        []DrawCall
	Clears       int
	ClearRGBA    [4]float32
	ViewportXYWH [4]int32
	Calls        []string

	BoundProgram     uint32
	BoundVAO         uint32
	BoundVBO         uint32
	BoundFramebuffer *graphics.Framebuffer

	next uint32
}

var _ graphics.Device = (*Device)(nil)

func NewDevice() *Device {
	return &Device{
		CompileErrors: make(map[graphics.ShaderType]string),
		Shaders:       make(map[uint32]*Shader),
		Programs:      make(map[uint32]*Program),
		Buffers:       make(map[uint32]*Buffer),
		VertexArrays:  make(map[uint32]*VertexArray),
		Framebuffers:  make(map[uint32]*graphics.Framebuffer),
	}
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

func (d *Device) record(format string, args ...interface{}) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) CreateShader(t graphics.ShaderType) uint32 {
	h := d.handle()
	d.Shaders[h] = &Shader{Type: t}
	d.record("CreateShader(%s)", t)
	return h
}

func (d *Device) ShaderSource(shader uint32, source string) {
	d.Shaders[shader].Source = source
	d.record("ShaderSource(%d)", shader)
}

func (d *Device) CompileShader(shader uint32) {
	s := d.Shaders[shader]
	_, failed := d.CompileErrors[s.Type]
	s.Compiled = !failed
	d.record("CompileShader(%d)", shader)
}

func (d *Device) ShaderStatus(shader uint32) (bool, string) {
	s := d.Shaders[shader]
	if s.Compiled {
		return true, ""
	}
	return false, d.CompileErrors[s.Type]
}

func (d *Device) DeleteShader(shader uint32) {
	d.Shaders[shader].Deleted = true
	d.record("DeleteShader(%d)", shader)
}

func (d *Device) CreateProgram() uint32 {
	h := d.handle()
	d.Programs[h] = &Program{AttribLocations: make(map[string]uint32)}
	d.record("CreateProgram")
	return h
}

func (d *Device) AttachShader(program, shader uint32) {
	p := d.Programs[program]
	p.Attached = append(p.Attached, shader)
	d.record("AttachShader(%d, %d)", program, shader)
}

func (d *Device) BindAttribLocation(program, index uint32, name string) {
	d.Programs[program].AttribLocations[name] = index
	d.record("BindAttribLocation(%d, %d, %s)", program, index, name)
}

func (d *Device) LinkProgram(program uint32) {
	p := d.Programs[program]
	p.Linked = d.LinkError == ""
	for _, s := range p.Attached {
		if !d.Shaders[s].Compiled {
			p.Linked = false
		}
	}
	d.record("LinkProgram(%d)", program)
}

func (d *Device) ProgramStatus(program uint32) (bool, string) {
	p := d.Programs[program]
	if p.Linked {
		return true, ""
	}
	if d.LinkError != "" {
		return false, d.LinkError
	}
	return false, "one or more attached shaders failed to compile"
}

func (d *Device) UseProgram(program uint32) {
	d.BoundProgram = program
	d.record("UseProgram(%d)", program)
}

func (d *Device) DeleteProgram(program uint32) {
	if p, ok := d.Programs[program]; ok {
		p.Deleted = true
	}
	d.record("DeleteProgram(%d)", program)
}

func (d *Device) GenVertexArray() uint32 {
	h := d.handle()
	d.VertexArrays[h] = &VertexArray{Attribs: make(map[uint32]*AttribPointer)}
	d.record("GenVertexArray")
	return h
}

func (d *Device) BindVertexArray(vao uint32) {
	d.BoundVAO = vao
	d.record("BindVertexArray(%d)", vao)
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.VertexArrays[vao].Deleted = true
	d.record("DeleteVertexArray(%d)", vao)
}

func (d *Device) GenBuffer() uint32 {
	h := d.handle()
	d.Buffers[h] = &Buffer{}
	d.record("GenBuffer")
	return h
}

func (d *Device) BindArrayBuffer(vbo uint32) {
	d.BoundVBO = vbo
	d.record("BindArrayBuffer(%d)", vbo)
}

func (d *Device) BufferStaticData(data []float32) {
	b := d.Buffers[d.BoundVBO]
	b.Data = append([]float32(nil), data...)
	d.record("BufferStaticData(%d)", len(data))
}

func (d *Device) DeleteBuffer(vbo uint32) {
	d.Buffers[vbo].Deleted = true
	d.record("DeleteBuffer(%d)", vbo)
}

func (d *Device) VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset int) {
	vao := d.VertexArrays[d.BoundVAO]
	vao.Attribs[index] = &AttribPointer{
		Buffer:     d.BoundVBO,
		Size:       size,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	}
	d.record("VertexAttribPointer(%d, %d, %d, %d)", index, size, stride, offset)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	vao := d.VertexArrays[d.BoundVAO]
	if a, ok := vao.Attribs[index]; ok {
		a.Enabled = true
	}
	d.record("EnableVertexAttribArray(%d)", index)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.ClearRGBA = [4]float32{r, g, b, a}
	d.record("ClearColor")
}

func (d *Device) ClearColorBuffer() {
	d.Clears++
	d.record("Clear")
}

func (d *Device) DrawTriangles(first, count int32) {
	d.Draws = append(d.Draws, DrawCall{
		Program: d.BoundProgram,
		VAO:     d.BoundVAO,
		First:   first,
		Count:   count,
	})
	d.record("DrawTriangles(%d, %d)", first, count)
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.ViewportXYWH = [4]int32{x, y, width, height}
	d.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (d *Device) NewFramebuffer(width, height int) (*graphics.Framebuffer, error) {
	if d.FramebufferErr != nil {
		return nil, d.FramebufferErr
	}
	fb := &graphics.Framebuffer{
		FBO:     d.handle(),
		Texture: d.handle(),
		Depth:   d.handle(),
		Width:   width,
		Height:  height,
	}
	d.Framebuffers[fb.FBO] = fb
	d.record("NewFramebuffer(%d, %d)", width, height)
	return fb, nil
}

func (d *Device) BindFramebuffer(fb *graphics.Framebuffer) {
	d.BoundFramebuffer = fb
	d.record("BindFramebuffer")
}

func (d *Device) DeleteFramebuffer(fb *graphics.Framebuffer) {
	delete(d.Framebuffers, fb.FBO)
	d.record("DeleteFramebuffer(%d)", fb.FBO)
}

// ReadPixels fills dst with the current clear color, which is what a frame without
// rasterized geometry would read back.
func (d *Device) ReadPixels(width, height int, dst []byte) {
	var px [4]byte
	for i, c := range d.ClearRGBA {
		px[i] = byte(c*255 + 0.5)
	}
	for i := 0; i+3 < len(dst) && i < width*height*4; i += 4 {
		copy(dst[i:i+4], px[:])
	}
	d.record("ReadPixels(%d, %d)", width, height)
}
