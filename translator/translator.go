package translator

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	gst "github.com/richinsley/goshadertranslator"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/shader"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	initOnce   sync.Once
)

// GetTranslator returns the process-wide shader translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	initOnce.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
		if initErr != nil {
			initErr = errors.Wrap(initErr, "failed to create shader translator")
		}
	})
	return translator, initErr
}

// Translate validates the portable ESSL 3.00 pair and converts it to GLSL 4.10 core.
// Sources that are already translated are returned unchanged.
func Translate(src shader.Sources) (shader.Sources, error) {
	if src.Translated {
		return src, nil
	}
	t, err := GetTranslator()
	if err != nil {
		return src, errors.Mark(err, graphics.ErrShader)
	}

	vs, err := t.TranslateShader(src.Vertex, "vertex", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return src, errors.Mark(errors.Wrap(err, "vertex shader translation failed"), graphics.ErrShader)
	}
	fs, err := t.TranslateShader(src.Fragment, "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return src, errors.Mark(errors.Wrap(err, "fragment shader translation failed"), graphics.ErrShader)
	}

	out := shader.Sources{
		Vertex:     vs.Code,
		Fragment:   fs.Code,
		Position:   src.Position,
		Translated: true,
	}
	// ANGLE may rename user-declared inputs; the program binds slot 0 by this name.
	if v, ok := vs.Variables[src.Position]; ok && v.MappedName != "" {
		out.Position = v.MappedName
	}
	return out, nil
}
