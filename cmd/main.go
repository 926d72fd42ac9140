package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/cockroachdb/errors"

	"github.com/richinsley/hellotriangle/encoder"
	"github.com/richinsley/hellotriangle/gldevice"
	"github.com/richinsley/hellotriangle/glfwcontext"
	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/headless"
	"github.com/richinsley/hellotriangle/options"
	"github.com/richinsley/hellotriangle/renderer"
	"github.com/richinsley/hellotriangle/shader"
)

func sources(opts *options.TriangleOptions) shader.Sources {
	if *opts.Translate {
		return shader.Portable()
	}
	return shader.Desktop()
}

// openDevice loads the GL entry points for the current context.
func openDevice() (graphics.Device, error) {
	dev, err := gldevice.New()
	if err != nil {
		return nil, err
	}
	log.Printf("OpenGL %s", dev.Version())
	return dev, nil
}

// render takes ownership of ctx and shuts it down on return, after the renderer has
// released its GPU objects.
func render(ctx graphics.Context, newDevice func() (graphics.Device, error), opts *options.TriangleOptions, drive func(*renderer.Renderer) error) error {
	defer ctx.Shutdown()
	ctx.MakeCurrent()

	dev, err := newDevice()
	if err != nil {
		return err
	}

	r, err := renderer.NewRenderer(ctx, dev, opts)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	if err := r.Setup(sources(opts)); err != nil {
		return errors.Wrap(err, "failed to set up renderer")
	}
	return drive(r)
}

func record(opts *options.TriangleOptions) func(*renderer.Renderer) error {
	return func(r *renderer.Renderer) error {
		enc, err := encoder.New(opts)
		if err != nil {
			return err
		}
		renderErr := r.RunOffscreen(enc)
		if err := enc.Close(); err != nil {
			return errors.CombineErrors(renderErr, err)
		}
		if renderErr != nil {
			return renderErr
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
		return nil
	}
}

func runInteractive(opts *options.TriangleOptions) error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return err
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		return err
	}
	return render(ctx, openDevice, opts, (*renderer.Renderer).Run)
}

func runRecord(opts *options.TriangleOptions) error {
	ctx, err := headless.NewHeadless(*opts.Width, *opts.Height)
	if err != nil {
		return err
	}
	return render(ctx, openDevice, opts, record(opts))
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("Hello Triangle")
		flag.PrintDefaults()
		return
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	run := runInteractive
	if *opts.Record {
		run = runRecord
	}
	if err := run(opts); err != nil {
		log.Fatalf("%v", err)
	}
}
