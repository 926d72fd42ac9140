package graphics

import "github.com/cockroachdb/errors"

var (
	// ErrHostInit reports that the windowing library failed to initialize.
	ErrHostInit = errors.New("graphics host initialization failed")
	// ErrWindowCreation reports that no window (or surface) with a current context could be created.
	ErrWindowCreation = errors.New("window creation failed")
	// ErrLoader reports that the OpenGL entry points could not be resolved for the current context.
	ErrLoader = errors.New("opengl function loader failed")
	// ErrShader marks shader compile, link and translation problems.
	ErrShader = errors.New("shader error")
)
