package glfwcontext

import (
	"log"
	"runtime"

	"github.com/cockroachdb/errors"
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/options"
)

// keyMap translates the keys the renderer asks about into GLFW key codes.
var keyMap = map[graphics.Key]glfw.Key{
	graphics.KeyEscape: glfw.KeyEscape,
	graphics.KeySpace:  glfw.KeySpace,
	graphics.KeyEnter:  glfw.KeyEnter,
	graphics.KeyQ:      glfw.KeyQ,
}

// Context is a GLFW window with an OpenGL 4.1 core context.
type Context struct {
	window       *glfw.Window
	sizeCallback func(width, height int)
}

var _ graphics.Context = (*Context)(nil)

// New creates the window described by opts. InitGraphics must have succeeded first.
func New(opts *options.TriangleOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to create GLFW window"), graphics.ErrWindowCreation)
	}

	c := &Context{window: win}
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	return c, nil
}

// glfwFramebufferSizeCallback is called by GLFW while polling events.
func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.sizeCallback != nil {
		c.sizeCallback(width, height)
	}
}

func (c *Context) SetFramebufferSizeCallback(fn func(width, height int)) {
	c.sizeCallback = fn
}

func (c *Context) KeyPressed(key graphics.Key) bool {
	k, ok := keyMap[key]
	if !ok {
		return false
	}
	return c.window.GetKey(k) == glfw.Press
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window; TerminateGraphics releases the library.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(value bool) {
	c.window.SetShouldClose(value)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return errors.Mark(errors.Wrap(err, "failed to initialize GLFW"), graphics.ErrHostInit)
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
