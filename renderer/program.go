package renderer

import (
	"fmt"
	"strings"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/shader"
)

// Stage identifies where a shader diagnostic came from.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageLink
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageLink:
		return "link"
	default:
		return "unknown"
	}
}

func stageOf(t graphics.ShaderType) Stage {
	if t == graphics.FragmentShader {
		return StageFragment
	}
	return StageVertex
}

// Diagnostic is a compile or link failure reported by the driver.
type Diagnostic struct {
	Stage Stage
	Log   string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("shader diagnostic (%s): %s", d.Stage, strings.TrimRight(d.Log, "\x00\r\n "))
}

// Is makes every diagnostic match graphics.ErrShader.
func (d Diagnostic) Is(target error) bool {
	return target == graphics.ErrShader
}

// Program is a linked shader program.
type Program struct {
	Handle  uint32
	Sources shader.Sources
	dev     graphics.Device
}

func (p *Program) Use() {
	p.dev.UseProgram(p.Handle)
}

func (p *Program) Delete() {
	if p == nil || p.Handle == 0 {
		return
	}
	p.dev.DeleteProgram(p.Handle)
	p.Handle = 0
}

// CompileAndLink compiles both sources and links them into one program. Failures do not
// stop the sequence: a shader that failed to compile is still attached and linked, and the
// returned program is always usable as a handle. Every failure is reported as a Diagnostic.
func CompileAndLink(dev graphics.Device, src shader.Sources) (*Program, []Diagnostic) {
	var diags []Diagnostic

	vertexShader, diag := compileShader(dev, src.Vertex, graphics.VertexShader)
	if diag != nil {
		diags = append(diags, *diag)
	}
	fragmentShader, diag := compileShader(dev, src.Fragment, graphics.FragmentShader)
	if diag != nil {
		diags = append(diags, *diag)
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vertexShader)
	dev.AttachShader(program, fragmentShader)
	if src.Position != "" {
		dev.BindAttribLocation(program, shader.PositionLocation, src.Position)
	}
	dev.LinkProgram(program)

	if ok, infoLog := dev.ProgramStatus(program); !ok {
		diags = append(diags, Diagnostic{Stage: StageLink, Log: infoLog})
	}

	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)

	return &Program{Handle: program, Sources: src, dev: dev}, diags
}

func compileShader(dev graphics.Device, source string, shaderType graphics.ShaderType) (uint32, *Diagnostic) {
	s := dev.CreateShader(shaderType)
	dev.ShaderSource(s, source)
	dev.CompileShader(s)

	if ok, infoLog := dev.ShaderStatus(s); !ok {
		return s, &Diagnostic{Stage: stageOf(shaderType), Log: infoLog}
	}
	return s, nil
}
