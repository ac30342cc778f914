// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/cube/cube"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context holds the GPU resources of the cube and the window whose
// GL context they live in. It is created once by [NewContext] and
// must only be used from the thread that owns the window.
type Context struct {

	// Window is the window with the current GL context.
	Window *glfw.Window

	// Program is the linked shader program.
	Program uint32

	// VAO is the vertex array recording the buffer bindings and formats.
	VAO uint32

	// Transform is the location of the transform matrix uniform.
	Transform int32

	// Positions, Colors, and Indexes are the uploaded cube geometry.
	Positions, Colors, Indexes *Buffer

	released bool
}

// NewContext uploads the cube geometry to GPU buffers, compiles the
// shaders, and resolves the transform uniform, using the GL context of
// the given window, which must be current. Shader compile and link
// errors are logged with the GL info log, and setup carries on with
// whatever program resulted. No vertex array or buffer is left bound.
func NewContext(win *glfw.Window) *Context {
	cx := &Context{Window: win}
	gl.Enable(gl.DEPTH_TEST)

	gl.GenVertexArrays(1, &cx.VAO)
	gl.BindVertexArray(cx.VAO)
	cx.Indexes = NewIndexesBuffer(cube.IndexData())
	cx.Positions = NewVectorsBuffer(cube.PositionLoc, cube.Components, cube.PositionData())
	cx.Colors = NewVectorsBuffer(cube.ColorLoc, cube.Components, cube.ColorData())

	// unbind to prevent accidental modification;
	// the vertex array goes first so it keeps its element buffer
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	var err error
	cx.Program, err = CompileProgram(VertexShader, FragmentShader)
	errors.Log(err)
	cx.Transform = UniformLocation(cx.Program, TransformUniform)
	return cx
}

// Release deletes the program, vertex array and buffers.
// It must be called before the window is destroyed, and
// only the first call has any effect.
func (cx *Context) Release() {
	if cx.released {
		return
	}
	cx.released = true
	cx.Indexes.Delete()
	cx.Positions.Delete()
	cx.Colors.Delete()
	gl.DeleteVertexArrays(1, &cx.VAO)
	cx.VAO = 0
	gl.DeleteProgram(cx.Program)
	cx.Program = 0
}
