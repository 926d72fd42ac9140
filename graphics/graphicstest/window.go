package graphicstest

import "github.com/richinsley/hellotriangle/graphics"

// Window is a scripted graphics.Context. OnEndFrame runs after every presented frame with
// the number of frames presented so far, which lets tests inject key presses, resizes and
// close requests at exact points of the loop.
type Window struct {
	Width  int
	Height int

	Closed     bool
	Keys       map[graphics.Key]bool
	Frames     int
	Current    bool
	Shut       bool
	OnEndFrame func(w *Window, frame int)

	sizeCallback func(width, height int)
	time         float64
}

var _ graphics.Context = (*Window)(nil)

func NewWindow(width, height int) *Window {
	return &Window{
		Width:  width,
		Height: height,
		Keys:   make(map[graphics.Key]bool),
	}
}

func (w *Window) MakeCurrent()              { w.Current = true }
func (w *Window) Shutdown()                 { w.Shut = true }
func (w *Window) ShouldClose() bool         { return w.Closed }
func (w *Window) SetShouldClose(value bool) { w.Closed = value }

func (w *Window) EndFrame() {
	w.Frames++
	w.time += 1.0 / 60.0
	if w.OnEndFrame != nil {
		w.OnEndFrame(w, w.Frames)
	}
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Width, w.Height
}

func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) {
	w.sizeCallback = fn
}

func (w *Window) KeyPressed(key graphics.Key) bool {
	return w.Keys[key]
}

func (w *Window) Time() float64 {
	return w.time
}

// Resize changes the framebuffer size and fires the registered callback, as the host
// does while polling events.
func (w *Window) Resize(width, height int) {
	w.Width = width
	w.Height = height
	if w.sizeCallback != nil {
		w.sizeCallback(width, height)
	}
}

// Press marks key as held down; Release clears it.
func (w *Window) Press(key graphics.Key)   { w.Keys[key] = true }
func (w *Window) Release(key graphics.Key) { w.Keys[key] = false }
