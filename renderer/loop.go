package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/richinsley/hellotriangle/graphics"
)

// LoopState is the state of the frame loop.
type LoopState int

const (
	Running LoopState = iota
	Closing
)

func (s LoopState) String() string {
	if s == Closing {
		return "closing"
	}
	return "running"
}

// DefaultClearColor is the background the triangle is drawn over.
var DefaultClearColor = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}

// Loop draws one triangle per frame until the host asks to close.
type Loop struct {
	ClearColor mgl32.Vec4
	CloseKey   graphics.Key
	// MaxFrames stops the loop after that many presented frames; 0 means no limit.
	MaxFrames int
	// AfterDraw runs after the draw call and before the frame is presented. An error
	// stops the loop and is reported by Err.
	AfterDraw func(frame int) error

	context  graphics.Context
	device   graphics.Device
	program  *Program
	geometry *VertexBuffer
	state    LoopState
	frames   int
	err      error
}

func NewLoop(ctx graphics.Context, dev graphics.Device, program *Program, geometry *VertexBuffer) *Loop {
	return &Loop{
		ClearColor: DefaultClearColor,
		CloseKey:   graphics.KeyEscape,
		context:    ctx,
		device:     dev,
		program:    program,
		geometry:   geometry,
		state:      Running,
	}
}

func (l *Loop) State() LoopState { return l.state }

// Frames is the number of frames presented so far.
func (l *Loop) Frames() int { return l.frames }

func (l *Loop) Err() error { return l.err }

// ProcessInput requests a close when the close key is held.
func (l *Loop) ProcessInput() {
	if l.context.KeyPressed(l.CloseKey) {
		l.context.SetShouldClose(true)
	}
}

// Draw clears the color target and issues the triangle draw call.
func (l *Loop) Draw() {
	l.device.ClearColor(l.ClearColor.Elem())
	l.device.ClearColorBuffer()

	l.program.Use()
	l.geometry.Bind()
	l.device.DrawTriangles(0, l.geometry.VertexCount())
}

// Tick runs one frame if the loop is still running and returns the resulting state.
func (l *Loop) Tick() LoopState {
	if l.state == Closing {
		return Closing
	}
	if l.context.ShouldClose() {
		l.state = Closing
		return l.state
	}

	l.ProcessInput()
	l.Draw()
	if l.AfterDraw != nil {
		if err := l.AfterDraw(l.frames); err != nil {
			l.err = err
			l.context.SetShouldClose(true)
		}
	}
	l.context.EndFrame()
	l.frames++

	if l.MaxFrames > 0 && l.frames >= l.MaxFrames {
		l.context.SetShouldClose(true)
	}
	if l.context.ShouldClose() {
		l.state = Closing
	}
	return l.state
}

// Run ticks until the loop reaches Closing and returns the number of frames presented.
func (l *Loop) Run() int {
	for l.Tick() == Running {
	}
	return l.frames
}
