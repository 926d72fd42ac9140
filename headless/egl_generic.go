//go:build !linux

package headless

import (
	"github.com/cockroachdb/errors"

	"github.com/richinsley/hellotriangle/graphics"
)

// Headless is only available on linux.
type Headless struct {
	graphics.Context
}

func NewHeadless(width, height int) (*Headless, error) {
	return nil, errors.Mark(errors.New("egl headless rendering is not supported on this platform"), graphics.ErrHostInit)
}
