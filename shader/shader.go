package shader

// PositionAttribute is the vertex input fed from attribute slot 0.
const PositionAttribute = "aPos"

// PositionLocation is the attribute slot the position data is bound to.
const PositionLocation = 0

// Sources is a vertex/fragment pair compiled and linked into one program.
type Sources struct {
	Vertex   string
	Fragment string
	// Position is the name the position input carries in Vertex.
	Position string
	// Translated is true when the pair is GLSL 4.10 core text that can go to the driver as is.
	Translated bool
}

// ──────────────────────────────── Portable (ESSL) ───────────────────────────────
// These are the sources of record. The translator turns them into desktop GLSL.

const vertexShaderSourceES = `#version 300 es
layout (location = 0) in vec3 aPos;

void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentShaderSourceES = `#version 300 es
precision mediump float;
out vec4 color;

void main()
{
    color = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec3 aPos;

void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentShaderSourceGL = `#version 410 core
out vec4 color;

void main()
{
    color = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// Portable returns the ESSL 3.00 triangle shaders, to be run through the translator.
func Portable() Sources {
	return Sources{
		Vertex:   vertexShaderSourceES,
		Fragment: fragmentShaderSourceES,
		Position: PositionAttribute,
	}
}

// Desktop returns the triangle shaders written directly against GLSL 4.10 core.
func Desktop() Sources {
	return Sources{
		Vertex:     vertexShaderSourceGL,
		Fragment:   fragmentShaderSourceGL,
		Position:   PositionAttribute,
		Translated: true,
	}
}
