package graphics

// ShaderType selects the pipeline stage a shader object is compiled for.
type ShaderType int

const (
	VertexShader ShaderType = iota
	FragmentShader
)

func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the subset of the OpenGL API used by the renderer. Handles are the raw GL object names.
type Device interface {
	CreateShader(t ShaderType) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	// ShaderStatus returns the compile status and the shader's info log.
	ShaderStatus(shader uint32) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindAttribLocation(program, index uint32, name string)
	LinkProgram(program uint32)
	// ProgramStatus returns the link status and the program's info log.
	ProgramStatus(program uint32) (ok bool, infoLog string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	// BufferStaticData uploads data into the bound array buffer with a static-draw usage hint.
	BufferStaticData(data []float32)
	DeleteBuffer(vbo uint32)

	VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	ClearColor(r, g, b, a float32)
	ClearColorBuffer()
	DrawTriangles(first, count int32)
	Viewport(x, y, width, height int32)

	// NewFramebuffer creates a complete framebuffer with an RGBA8 color attachment.
	NewFramebuffer(width, height int) (*Framebuffer, error)
	// BindFramebuffer binds fb for drawing and reading; nil binds the default framebuffer.
	BindFramebuffer(fb *Framebuffer)
	DeleteFramebuffer(fb *Framebuffer)
	// ReadPixels reads width*height RGBA8 pixels from the bound read framebuffer into dst.
	ReadPixels(width, height int, dst []byte)
}

// Framebuffer is an offscreen render target.
type Framebuffer struct {
	FBO     uint32
	Texture uint32
	Depth   uint32
	Width   int
	Height  int
}
