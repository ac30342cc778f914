// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cube renders a rotating, colored cube with OpenGL.
package main

import (
	"os"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cube/anim"
	"cogentcore.org/cube/gpu"
)

func init() {
	// glfw and GL must be on the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := gpu.Init(); err != nil {
		errors.Log(err)
		return 1
	}
	defer gpu.Terminate()

	cfg := gpu.DefaultConfig()
	win, err := gpu.NewWindow(cfg)
	if err != nil {
		errors.Log(err)
		return 1
	}
	defer win.Destroy()

	cx := gpu.NewContext(win)
	defer cx.Release()

	r := gpu.NewRenderer(cx, anim.NewClock(gpu.Time), cfg)
	for !win.ShouldClose() {
		r.Render()
		win.SwapBuffers()
		gpu.PollEvents()
	}
	return 0
}
