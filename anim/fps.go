// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "fmt"

// FPSInterval is the minimum number of seconds between frame rate updates.
const FPSInterval = 0.25

// FPS measures frames per second over rolling windows of at least
// [FPSInterval] seconds. Based on https://antongerdelan.net/opengl/glcontext2.html
type FPS struct {
	// last is the time of the last update, in seconds.
	last float64

	// frames is the number of frames since the last update.
	frames int
}

// Frame records a frame at the given time in seconds. When more than
// [FPSInterval] has passed since the last update, it returns the frame
// rate over that window with ok true, and starts a new window.
func (f *FPS) Frame(now float64) (fps float64, ok bool) {
	f.frames++
	dt := now - f.last
	if dt <= FPSInterval {
		return 0, false
	}
	fps = float64(f.frames) / dt
	f.last = now
	f.frames = 0
	return fps, true
}

// Title returns the window title showing the given frame rate.
func Title(fps float64) string {
	return fmt.Sprintf("Cube (%.1f FPS)", fps)
}
