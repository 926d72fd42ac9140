package renderer

import (
	"log"

	"github.com/cockroachdb/errors"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/options"
	"github.com/richinsley/hellotriangle/shader"
	"github.com/richinsley/hellotriangle/translator"
)

// Renderer owns the program, the triangle's vertex buffer and the frame loop for one context.
type Renderer struct {
	context     graphics.Context
	device      graphics.Device
	options     *options.TriangleOptions
	program     *Program
	geometry    *VertexBuffer
	loop        *Loop
	offscreen   *Offscreen
	diagnostics []Diagnostic
	viewport    [2]int
	elapsed     float64
}

func NewRenderer(ctx graphics.Context, dev graphics.Device, opts *options.TriangleOptions) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	r := &Renderer{
		context: ctx,
		device:  dev,
		options: opts,
	}

	r.context.MakeCurrent()
	r.context.SetFramebufferSizeCallback(r.resize)
	r.resize(r.context.GetFramebufferSize())

	return r, nil
}

// resize keeps the viewport matched to the framebuffer. On high-DPI displays the
// framebuffer is larger than the requested window size.
func (r *Renderer) resize(width, height int) {
	r.viewport = [2]int{width, height}
	r.device.Viewport(0, 0, int32(width), int32(height))
}

// Viewport is the size last applied to the viewport.
func (r *Renderer) Viewport() (int, int) {
	return r.viewport[0], r.viewport[1]
}

// Diagnostics returns the shader diagnostics collected by Setup.
func (r *Renderer) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Setup builds the shader program and uploads the triangle. Shader problems are logged and
// setup continues with whatever program the driver linked, unless the options ask for
// strict handling.
func (r *Renderer) Setup(src shader.Sources) error {
	if *r.options.Translate && !src.Translated {
		translated, err := translator.Translate(src)
		if err != nil {
			log.Printf("Shader translation failed, compiling sources as given: %v", err)
			if *r.options.Strict {
				return err
			}
		} else {
			src = translated
		}
	}

	var diags []Diagnostic
	r.program, diags = CompileAndLink(r.device, src)
	r.diagnostics = diags
	for _, d := range diags {
		log.Println(d.Error())
	}
	if len(diags) > 0 && *r.options.Strict {
		return errors.Wrapf(diags[0], "%d shader diagnostic(s)", len(diags))
	}

	var err error
	r.geometry, err = Upload(r.device, Flatten(TriangleVertices()), PositionLayout())
	if err != nil {
		return errors.Wrap(err, "failed to upload triangle")
	}

	r.loop = NewLoop(r.context, r.device, r.program, r.geometry)
	r.loop.MaxFrames = *r.options.Frames
	return nil
}

// Loop returns the frame loop created by Setup.
func (r *Renderer) Loop() *Loop {
	return r.loop
}

// Run drives the interactive frame loop until the window is closed.
func (r *Renderer) Run() error {
	if r.loop == nil {
		return errors.New("renderer is not set up")
	}
	log.Println("Starting interactive render loop...")
	frames := r.runLoop()
	log.Printf("Render loop finished after %d frames in %.2fs (%.1f fps)", frames, r.elapsed, FrameRate(frames, r.elapsed))
	return r.loop.Err()
}

// RunOffscreen renders the configured number of frames into an offscreen target and hands
// each one to sink.
func (r *Renderer) RunOffscreen(sink FrameSink) error {
	if r.loop == nil {
		return errors.New("renderer is not set up")
	}
	var err error
	r.offscreen, err = NewOffscreen(r.device, *r.options.Width, *r.options.Height)
	if err != nil {
		return err
	}

	log.Println("Starting offscreen render loop...")
	r.offscreen.Bind()
	r.loop.AfterDraw = func(frame int) error {
		if err := sink.WriteFrame(r.offscreen.ReadFrame(), int64(frame)); err != nil {
			return errors.Wrapf(err, "failed to write frame %d", frame)
		}
		return nil
	}
	frames := r.runLoop()
	r.offscreen.Unbind()
	log.Printf("Rendered %d offscreen frames in %.2fs (%.1f fps)", frames, r.elapsed, FrameRate(frames, r.elapsed))
	return r.loop.Err()
}

// runLoop runs the frame loop and records the host time it took.
func (r *Renderer) runLoop() int {
	start := r.context.Time()
	frames := r.loop.Run()
	r.elapsed = r.context.Time() - start
	return frames
}

// Elapsed returns the host time in seconds spent in the last Run or RunOffscreen.
func (r *Renderer) Elapsed() float64 {
	return r.elapsed
}

// FrameRate returns the average frames per second over seconds.
func FrameRate(frames int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(frames) / seconds
}

// Shutdown releases the GPU objects. The context is shut down by its owner.
func (r *Renderer) Shutdown() {
	r.offscreen.Delete()
	r.geometry.Delete()
	r.program.Delete()
}
