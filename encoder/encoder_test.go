package encoder

import (
	"bytes"
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/hellotriangle/options"
)

func TestFramesReachProcessInOrder(t *testing.T) {
	var got bytes.Buffer
	e := start(2, 1, func(r io.Reader) error {
		_, err := io.Copy(&got, r)
		return err
	})

	for i := 0; i < 4; i++ {
		frame := bytes.Repeat([]byte{byte(i)}, 2*1*4)
		require.NoError(t, e.WriteFrame(frame, int64(i)))
	}
	require.NoError(t, e.Close())

	want := append(append(append(
		bytes.Repeat([]byte{0}, 8),
		bytes.Repeat([]byte{1}, 8)...),
		bytes.Repeat([]byte{2}, 8)...),
		bytes.Repeat([]byte{3}, 8)...)
	assert.Equal(t, want, got.Bytes())
}

func TestWriteFrameCopiesPixels(t *testing.T) {
	var got bytes.Buffer
	e := start(1, 1, func(r io.Reader) error {
		_, err := io.Copy(&got, r)
		return err
	})
	px := []byte{1, 2, 3, 4}
	require.NoError(t, e.WriteFrame(px, 0))
	px[0] = 9
	require.NoError(t, e.Close())
	assert.Equal(t, []byte{1, 2, 3, 4}, got.Bytes())
}

func TestWriteFrameRejectsWrongSize(t *testing.T) {
	e := start(2, 2, func(r io.Reader) error {
		_, err := io.Copy(io.Discard, r)
		return err
	})
	assert.Error(t, e.WriteFrame(make([]byte, 15), 0))
	require.NoError(t, e.Close())
	assert.Error(t, e.WriteFrame(make([]byte, 16), 1))
	assert.NoError(t, e.Close())
}

func TestProcessFailure(t *testing.T) {
	boom := errors.New("exit status 1")
	e := start(1, 1, func(r io.Reader) error {
		return boom
	})
	for i := 0; i < 10; i++ {
		require.NoError(t, e.WriteFrame(make([]byte, 4), int64(i)))
	}
	err := e.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestArgs(t *testing.T) {
	in := InputArgs(800, 600, 30)
	assert.Equal(t, "rawvideo", in["format"])
	assert.Equal(t, "rgba", in["pix_fmt"])
	assert.Equal(t, "800x600", in["s"])
	assert.Equal(t, 30, in["framerate"])

	out := OutputArgs()
	assert.Equal(t, "vflip", out["vf"])
	assert.Equal(t, "yuv420p", out["pix_fmt"])
	assert.NotEmpty(t, out["c:v"])
}

func TestNewRequiresOutput(t *testing.T) {
	opts := options.Default()
	*opts.OutputFile = ""
	_, err := New(opts)
	assert.Error(t, err)
}
