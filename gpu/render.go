// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/cube/anim"
	"cogentcore.org/cube/cube"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Renderer draws the spinning cube of a [Context] once per frame,
// and shows the measured frame rate in the window title.
type Renderer struct {

	// Context has the GPU resources to draw with.
	Context *Context

	// Clock drives the spin animation and the frame rate measurement.
	Clock *anim.Clock

	// Config provides the clear color.
	Config *Config

	// fps is owned by this renderer so independent renderers
	// do not share frame counts.
	fps anim.FPS
}

// NewRenderer returns a new [Renderer] for the given context.
func NewRenderer(cx *Context, clock *anim.Clock, cfg *Config) *Renderer {
	return &Renderer{Context: cx, Clock: clock, Config: cfg}
}

// Render draws one frame: it clears the color and depth buffers,
// uploads the cube transform for the current animation progress,
// and draws all of the cube's triangles. Only the framebuffer and
// the transform uniform are changed.
func (r *Renderer) Render() {
	r.updateFPS()

	cc := r.Config.ClearColor
	gl.ClearColor(cc.X, cc.Y, cc.Z, cc.W)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.Context.Program)

	m := cube.Transform(r.Clock.Progress(cube.SpinPeriod))
	gl.UniformMatrix4fv(r.Context.Transform, 1, false, m.Ptr())

	gl.BindVertexArray(r.Context.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, cube.NIndexes, gl.UNSIGNED_SHORT, 0)
}

// updateFPS pushes the frame rate to the window title,
// at most 1/[anim.FPSInterval] times per second.
func (r *Renderer) updateFPS() {
	if fps, ok := r.fps.Frame(r.Clock.Now()); ok {
		r.Context.Window.SetTitle(anim.Title(fps))
	}
}
