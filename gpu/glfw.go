// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, which provide the
// window, the GL context, events, and time.

// Init initializes glfw. Must be called before [NewWindow].
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("gpu.Init: failed to initialize glfw: %w", err)
	}
	return nil
}

// Terminate shuts down glfw, destroying any remaining windows.
// Call as last thing before quitting, after all GPU resources are released.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// Time returns the number of seconds since glfw was initialized.
// It is the time source of the cube animation.
func Time() float64 {
	return glfw.GetTime()
}

// PollEvents processes pending window events without waiting.
func PollEvents() {
	glfw.PollEvents()
}

// NewWindow creates a fixed-size window with an OpenGL core profile
// context of the configured version, makes the context current,
// loads the GL functions and sets the viewport and swap interval.
func NewWindow(cfg *Config) (*glfw.Window, error) {
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Size.X, cfg.Size.Y, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("gpu.NewWindow: failed to create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("gpu.NewWindow: failed to initialize OpenGL: %w", err)
	}
	slog.Info("gpu: OpenGL context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Viewport(0, 0, int32(cfg.Size.X), int32(cfg.Size.Y))
	glfw.SwapInterval(cfg.SwapInterval)
	return win, nil
}
