package renderer

import (
	"log"

	"github.com/cockroachdb/errors"

	"github.com/richinsley/hellotriangle/graphics"
)

// FrameSink receives rendered RGBA frames, bottom row first as OpenGL reads them.
type FrameSink interface {
	WriteFrame(pixels []byte, pts int64) error
}

// Offscreen is a framebuffer the loop renders into when there is no window to present to.
type Offscreen struct {
	device graphics.Device
	fb     *graphics.Framebuffer
	pixels []byte
	width  int
	height int
}

func NewOffscreen(dev graphics.Device, width, height int) (*Offscreen, error) {
	fb, err := dev.NewFramebuffer(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create offscreen framebuffer")
	}
	log.Printf("Offscreen FBO: %dx%d RGBA8", width, height)
	return &Offscreen{
		device: dev,
		fb:     fb,
		pixels: make([]byte, width*height*4),
		width:  width,
		height: height,
	}, nil
}

// Bind directs drawing and reads to the offscreen target and sizes the viewport to it.
func (o *Offscreen) Bind() {
	o.device.BindFramebuffer(o.fb)
	o.device.Viewport(0, 0, int32(o.width), int32(o.height))
}

func (o *Offscreen) Unbind() {
	o.device.BindFramebuffer(nil)
}

// ReadFrame reads the current contents of the target. The returned slice is reused by the
// next call.
func (o *Offscreen) ReadFrame() []byte {
	o.device.ReadPixels(o.width, o.height, o.pixels)
	return o.pixels
}

func (o *Offscreen) Delete() {
	if o == nil || o.fb == nil {
		return
	}
	o.device.DeleteFramebuffer(o.fb)
	o.fb = nil
}
