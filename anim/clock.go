// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim maps wall-clock time onto looping animation progress,
// and measures the frame rate of a render loop.
package anim

// TimeSource returns monotonically increasing time in seconds since an
// arbitrary epoch, such as process start or library initialization.
type TimeSource func() float64

// Clock maps the time of a [TimeSource] to a looping progress value.
// It has no state of its own and cannot be reset: progress is always
// derived from the current time.
type Clock struct {
	// Now is the source of time for this clock.
	Now TimeSource
}

// NewClock returns a new [Clock] driven by the given time source.
func NewClock(now TimeSource) *Clock {
	return &Clock{Now: now}
}

// Progress returns the position within the current cycle of the given
// duration in seconds, as a value in [0, 1). It ramps up linearly and
// drops back to 0 every duration seconds.
//
// Time is measured in whole milliseconds held in a uint64, which does
// not overflow for any realistic session. Negative or NaN times are
// treated as 0, and a duration under one millisecond, negative, or NaN
// yields 0.
func (c *Clock) Progress(duration float32) float32 {
	return Progress(c.Now(), duration)
}

// Progress returns the progress within a cycle of duration seconds at
// the given elapsed time in seconds. See [Clock.Progress].
func Progress(elapsed float64, duration float32) float32 {
	// checked as floats: converting a negative float to uint64 is
	// implementation-defined
	if !(elapsed > 0) {
		elapsed = 0
	}
	if !(float64(duration)*1000 >= 1) {
		return 0
	}
	ms := uint64(elapsed * 1000)
	dur := uint64(float64(duration) * 1000)
	p := float32(ms%dur) / float32(dur)
	if p >= 1 { // float32 rounding of (dur-1)/dur for very long durations
		p = 0
	}
	return p
}
