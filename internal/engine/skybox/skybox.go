// Package skybox renders the procedurally-lit sky dome.
package skybox

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skydome/internal/engine/shader"
	"github.com/Faultbox/skydome/internal/engine/skybox/shaders"
	"github.com/Faultbox/skydome/pkg/math"
	"github.com/Faultbox/skydome/pkg/sky"
)

// Unit cube around the viewer; the fragment shader only cares about the
// interpolated direction.
var cubeVertices = []float32{
	-1, -1, 1, // 0: left, bottom, front
	1, -1, 1, // 1: right, bottom, front
	1, 1, 1, // 2: right, top, front
	-1, 1, 1, // 3: left, top, front
	-1, -1, -1, // 4: left, bottom, back
	1, -1, -1, // 5: right, bottom, back
	1, 1, -1, // 6: right, top, back
	-1, 1, -1, // 7: left, top, back
}

// Faces wound to be visible from inside the cube.
var cubeIndices = []uint16{
	2, 1, 0, 0, 3, 2, // front
	5, 6, 7, 7, 4, 5, // back
	3, 0, 4, 4, 7, 3, // left
	6, 5, 1, 1, 2, 6, // top
	6, 2, 3, 3, 7, 6, // right
	0, 1, 5, 5, 4, 0, // bottom
}

// Renderer draws the sky dome with the solved model parameters.
type Renderer struct {
	program uint32

	// Uniform locations
	locProjection  int32
	locOrientation int32
	locParams      int32
	locSunDir      int32

	vao uint32
	vbo uint32
	ebo uint32
}

// New creates the sky renderer. Requires a current OpenGL context.
func New() (*Renderer, error) {
	r := &Renderer{}

	program, err := shader.CompileProgram(shaders.SkyVertexShader, shaders.SkyFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sky shader: %w", err)
	}
	r.program = program

	r.locProjection = shader.GetUniform(program, "projection")
	r.locOrientation = shader.GetUniform(program, "orientation")
	r.locParams = shader.GetUniform(program, "params")
	r.locSunDir = shader.GetUniform(program, "sun_direction")

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*2, gl.Ptr(cubeIndices), gl.STATIC_DRAW)

	// position attribute is bound to location 0 in sky.vert
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)

	gl.BindVertexArray(0)

	return r, nil
}

// Render draws the dome. The orientation matrix must be rotation-only so
// the sky stays pinned to the horizon while the viewer moves.
func (r *Renderer) Render(projection, orientation math.Mat4, params *sky.Params, sunDir math.Vec3) {
	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())
	gl.UniformMatrix4fv(r.locOrientation, 1, false, orientation.Ptr())

	uniforms := params.Uniforms()
	gl.Uniform3fv(r.locParams, 10, &uniforms[0])
	gl.Uniform3f(r.locSunDir, sunDir.X, sunDir.Y, sunDir.Z)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(cubeIndices)), gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
