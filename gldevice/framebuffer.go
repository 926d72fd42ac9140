package gldevice

import (
	"github.com/cockroachdb/errors"
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/hellotriangle/graphics"
)

func (d *Device) NewFramebuffer(width, height int) (*graphics.Framebuffer, error) {
	fb := &graphics.Framebuffer{Width: width, Height: height}

	gl.GenFramebuffers(1, &fb.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.FBO)

	gl.GenTextures(1, &fb.Texture)
	gl.BindTexture(gl.TEXTURE_2D, fb.Texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.Texture, 0)

	gl.GenRenderbuffers(1, &fb.Depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.Depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.Depth)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		d.DeleteFramebuffer(fb)
		return nil, errors.Newf("offscreen framebuffer is not complete (status 0x%x)", status)
	}
	return fb, nil
}

func (d *Device) BindFramebuffer(fb *graphics.Framebuffer) {
	if fb == nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.FBO)
}

func (d *Device) DeleteFramebuffer(fb *graphics.Framebuffer) {
	gl.DeleteFramebuffers(1, &fb.FBO)
	gl.DeleteTextures(1, &fb.Texture)
	gl.DeleteRenderbuffers(1, &fb.Depth)
}

func (d *Device) ReadPixels(width, height int, dst []byte) {
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(dst))
}
