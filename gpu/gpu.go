// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu sets up an OpenGL 3.3 core context with glfw, uploads the
// cube to GPU buffers, compiles its shaders, and renders it each frame.
//
// All functions in this package must be called from the main thread,
// which must be locked with runtime.LockOSThread.
package gpu

import (
	_ "embed"
	"image"

	"cogentcore.org/cube/math32"
)

// VertexShader transforms each position by the transform uniform
// and passes the vertex color through.
//
//go:embed shaders/cube.vert
var VertexShader string

// FragmentShader outputs the interpolated vertex color.
//
//go:embed shaders/cube.frag
var FragmentShader string

// TransformUniform is the name of the matrix uniform in [VertexShader].
const TransformUniform = "transform"

// Config holds the fixed parameters of the window and context.
// There are no command line flags or config files: use [DefaultConfig].
type Config struct {

	// Size is the window size in screen coordinates.
	Size image.Point

	// Title is the initial window title, replaced by the frame rate once rendering starts.
	Title string

	// GLMajor and GLMinor are the requested OpenGL core profile version.
	GLMajor, GLMinor int

	// SwapInterval is the number of screen updates to wait for on each swap.
	// 0 disables vsync so the loop runs uncapped.
	SwapInterval int

	// ClearColor is the RGBA background color.
	ClearColor math32.Vector4
}

// DefaultConfig returns the configuration of the cube window:
// 800x800, OpenGL 3.3 core, no vsync, and a dark blue background.
func DefaultConfig() *Config {
	return &Config{
		Size:         image.Pt(800, 800),
		Title:        "OpenGL Cube Demo",
		GLMajor:      3,
		GLMinor:      3,
		SwapInterval: 0,
		ClearColor:   math32.Vec4(0.1, 0.12, 0.2, 1),
	}
}
