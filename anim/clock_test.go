// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixed(t float64) TimeSource {
	return func() float64 { return t }
}

func TestProgressZero(t *testing.T) {
	for _, d := range []float32{0.5, 1, 4, 60} {
		assert.Equal(t, float32(0), NewClock(fixed(0)).Progress(d))
	}
}

func TestProgressHalf(t *testing.T) {
	assert.Equal(t, float32(0.5), NewClock(fixed(2)).Progress(4))
	assert.Equal(t, float32(0.25), NewClock(fixed(5)).Progress(4))
	assert.Equal(t, float32(0), NewClock(fixed(8)).Progress(4))
}

func TestProgressRange(t *testing.T) {
	for _, d := range []float32{0.25, 1, 4, 7.5} {
		for ms := 0; ms < 40000; ms += 37 {
			p := Progress(float64(ms)/1000, d)
			assert.GreaterOrEqual(t, p, float32(0))
			assert.Less(t, p, float32(1))
		}
	}
}

func TestProgressSawtooth(t *testing.T) {
	const d = 4
	prev := Progress(0, d)
	drops := 0
	for ms := 1; ms <= 12000; ms++ {
		p := Progress(float64(ms)/1000, d)
		if p < prev {
			drops++
			assert.Equal(t, float32(0), p, "drop at %d ms", ms)
			assert.Equal(t, 0, ms%4000, "drop at %d ms", ms)
			assert.Greater(t, prev, float32(0.999))
		} else {
			// float64 seconds may truncate to the previous millisecond
			assert.LessOrEqual(t, p-prev, float32(2.0/4000+1e-6), "step at %d ms", ms)
		}
		prev = p
	}
	assert.Equal(t, 3, drops)
}

func TestProgressLongSession(t *testing.T) {
	// a year of uptime
	year := 365 * 24 * 3600.0
	p := Progress(year+2, 4)
	assert.InDelta(t, 0.5, p, 1e-6)
}

func TestProgressDegenerate(t *testing.T) {
	assert.Equal(t, float32(0), Progress(-3, 4))
	assert.Equal(t, float32(0), Progress(10, 0))
	assert.Equal(t, float32(0), Progress(10, -1))
	assert.Equal(t, float32(0), Progress(math.NaN(), 4))
}

func TestProgressInvalidDuration(t *testing.T) {
	nan := float32(math.NaN())
	for _, d := range []float32{-1, -4, -0.0005, 0.0005, nan} {
		for _, el := range []float64{0, 1, 10, 12345.678} {
			assert.Equal(t, float32(0), Progress(el, d), "Progress(%g, %g)", el, d)
		}
	}
	// the smallest duration counted is one millisecond
	assert.Equal(t, float32(0), Progress(10, 0.001))
	assert.Equal(t, float32(0.5), Progress(0.001, 0.002))
}

func TestClockFollowsSource(t *testing.T) {
	now := 0.0
	c := NewClock(func() float64 { return now })
	assert.Equal(t, float32(0), c.Progress(4))
	now = 1
	assert.Equal(t, float32(0.25), c.Progress(4))
	now = 3
	assert.Equal(t, float32(0.75), c.Progress(4))
}
