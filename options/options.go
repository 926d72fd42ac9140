package options

import (
	"flag"

	"github.com/cockroachdb/errors"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Learn OpenGL"
	DefaultFPS    = 60
	DefaultOutput = "triangle.mp4"
)

type TriangleOptions struct {
	Width      *int
	Height     *int
	Title      *string
	Frames     *int  // Stop after this many frames; 0 runs until the window is closed
	Strict     *bool // Treat shader diagnostics as fatal
	Translate  *bool // Run the portable shader sources through the translator
	Help       *bool
	Record     *bool   // Render headless and encode instead of opening a window
	FPS        *int    // Capture frame rate
	OutputFile *string // Capture output file
	FFMPEGPath *string // Optional path to the ffmpeg executable
}

// Register defines the command-line flags on fs and returns options bound to them.
func Register(fs *flag.FlagSet) *TriangleOptions {
	return &TriangleOptions{
		Width:      fs.Int("width", DefaultWidth, "Width of the window (or capture)"),
		Height:     fs.Int("height", DefaultHeight, "Height of the window (or capture)"),
		Title:      fs.String("title", DefaultTitle, "Window title"),
		Frames:     fs.Int("frames", 0, "Number of frames to render before exiting (0 = until closed)"),
		Strict:     fs.Bool("strict", false, "Abort when a shader fails to compile or link"),
		Translate:  fs.Bool("translate", true, "Translate the portable shader sources to desktop GLSL"),
		Help:       fs.Bool("help", false, "Show help message"),
		Record:     fs.Bool("record", false, "Render offscreen and encode the frames with ffmpeg"),
		FPS:        fs.Int("fps", DefaultFPS, "Frames per second for recording"),
		OutputFile: fs.String("output", DefaultOutput, "Output file name for recording"),
		FFMPEGPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),
	}
}

// Default returns options holding every flag's default value.
func Default() *TriangleOptions {
	return Register(flag.NewFlagSet("defaults", flag.ContinueOnError))
}

func (o *TriangleOptions) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return errors.Newf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if *o.Frames < 0 {
		return errors.Newf("frame count must not be negative, got %d", *o.Frames)
	}
	if *o.Record {
		if *o.FPS <= 0 {
			return errors.Newf("fps must be positive, got %d", *o.FPS)
		}
		if *o.Frames == 0 {
			return errors.New("recording needs a frame count (-frames)")
		}
		if *o.OutputFile == "" {
			return errors.New("recording needs an output file (-output)")
		}
	}
	return nil
}
