package graphics

// Key identifies a keyboard key independently of the windowing library.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyQ
)

// Context defines the interface for an OpenGL context and the window (or surface) that owns it.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(value bool)
	// EndFrame presents the back buffer and polls pending host events.
	EndFrame()
	GetFramebufferSize() (int, int)
	// SetFramebufferSizeCallback registers fn to run whenever the framebuffer is resized.
	SetFramebufferSizeCallback(fn func(width, height int))
	// KeyPressed reports whether key is currently held down.
	KeyPressed(key Key) bool
	// Time returns host time in seconds.
	Time() float64
}
