package encoder

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/cockroachdb/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/richinsley/hellotriangle/options"
)

// Frame represents a single rendered frame's data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

const frameQueue = 3

// Encoder streams raw RGBA frames into an ffmpeg process.
type Encoder struct {
	width     int
	height    int
	frameSize int
	frames    chan *Frame
	done      chan error
	closed    bool
}

// New starts ffmpeg writing to opts.OutputFile.
func New(opts *options.TriangleOptions) (*Encoder, error) {
	if *opts.OutputFile == "" {
		return nil, errors.New("no output file")
	}
	inputArgs := InputArgs(*opts.Width, *opts.Height, *opts.FPS)
	outputArgs := OutputArgs()

	run := func(r io.Reader) error {
		cmd := ffmpeg.Input("pipe:", inputArgs).
			Output(*opts.OutputFile, outputArgs).
			OverWriteOutput().WithInput(r).ErrorToStdOut()
		if *opts.FFMPEGPath != "" {
			cmd = cmd.SetFfmpegPath(*opts.FFMPEGPath)
		}
		return cmd.Run()
	}
	log.Printf("Encoding %dx%d@%d to %s", *opts.Width, *opts.Height, *opts.FPS, *opts.OutputFile)
	return start(*opts.Width, *opts.Height, run), nil
}

// start launches the consumer goroutine feeding run through a pipe.
func start(width, height int, run func(r io.Reader) error) *Encoder {
	e := &Encoder{
		width:     width,
		height:    height,
		frameSize: width * height * 4,
		frames:    make(chan *Frame, frameQueue),
		done:      make(chan error, 1),
	}

	pipeReader, pipeWriter := io.Pipe()
	errc := make(chan error, 1)
	go func() {
		err := run(pipeReader)
		// Unblock the writer if the process exits before consuming everything.
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	go func() {
		var writeErr error
		for frame := range e.frames {
			if writeErr != nil {
				continue
			}
			if _, err := pipeWriter.Write(frame.Pixels); err != nil {
				writeErr = errors.Wrapf(err, "failed to write frame %d to ffmpeg", frame.PTS)
				log.Printf("Error: %v", writeErr)
			}
		}
		pipeWriter.Close()
		runErr := <-errc
		if runErr != nil {
			e.done <- errors.Wrap(runErr, "ffmpeg failed")
			return
		}
		e.done <- writeErr
	}()

	return e
}

// WriteFrame queues a copy of pixels for encoding. pixels must hold width*height RGBA8 values.
func (e *Encoder) WriteFrame(pixels []byte, pts int64) error {
	if e.closed {
		return errors.New("encoder is closed")
	}
	if len(pixels) != e.frameSize {
		return errors.Newf("frame %d has %d bytes, want %d", pts, len(pixels), e.frameSize)
	}
	e.frames <- &Frame{Pixels: append([]byte(nil), pixels...), PTS: pts}
	return nil
}

// Close flushes the queued frames and waits for ffmpeg to finish.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	close(e.frames)
	return <-e.done
}

// InputArgs describes the raw frames the renderer produces.
func InputArgs(width, height, fps int) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": fps,
	}
}

// OutputArgs picks the codec for the current platform. Frames arrive bottom row first,
// so the output is flipped.
func OutputArgs() ffmpeg.KwArgs {
	outputArgs := ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}
	switch runtime.GOOS {
	case "darwin":
		outputArgs["c:v"] = "h264_videotoolbox"
		outputArgs["b:v"] = "8M"
	default:
		outputArgs["c:v"] = "libx264"
		outputArgs["preset"] = "veryfast"
	}
	return outputArgs
}
