// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/logx"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Buffer manages a GPU buffer object holding either vertex attributes
// (gl.ARRAY_BUFFER) or indexes for indexed drawing
// (gl.ELEMENT_ARRAY_BUFFER, for glDrawElements calls).
type Buffer struct {
	init   bool
	handle uint32
	target uint32

	// number of elements (floats or indexes) in the buffer
	ln int
}

// NewVectorsBuffer uploads the given tightly packed float32 vectors of
// n components each to a new array buffer, and records their format at
// the given attribute location of the currently bound vertex array.
// It leaves the buffer bound.
func NewVectorsBuffer(loc uint32, n int32, data []float32) *Buffer {
	b := &Buffer{target: gl.ARRAY_BUFFER, ln: len(data)}
	b.Activate()
	gl.BufferData(b.target, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(loc, n, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(loc)
	logx.PrintfDebug("gpu: vectors buffer %d at location %d: %d floats\n", b.handle, loc, len(data))
	return b
}

// NewIndexesBuffer uploads the given indexes to a new element array
// buffer, which is recorded in the currently bound vertex array.
// It leaves the buffer bound.
func NewIndexesBuffer(idxs []uint16) *Buffer {
	b := &Buffer{target: gl.ELEMENT_ARRAY_BUFFER, ln: len(idxs)}
	b.Activate()
	gl.BufferData(b.target, len(idxs)*2, gl.Ptr(idxs), gl.STATIC_DRAW)
	logx.PrintfDebug("gpu: indexes buffer %d: %d indexes\n", b.handle, len(idxs))
	return b
}

// Len returns the number of elements in the buffer.
func (b *Buffer) Len() int {
	return b.ln
}

// Activate binds buffer as active one, creating it first if needed.
func (b *Buffer) Activate() {
	if !b.init {
		gl.GenBuffers(1, &b.handle)
		b.init = true
	}
	gl.BindBuffer(b.target, b.handle)
}

// Handle returns the unique handle for this buffer -- only valid after Activate()
func (b *Buffer) Handle() uint32 {
	return b.handle
}

// Delete deletes the GPU resources associated with this buffer.
// It is safe to call more than once.
func (b *Buffer) Delete() {
	if b == nil || !b.init {
		return
	}
	gl.DeleteBuffers(1, &b.handle)
	b.handle = 0
	b.init = false
}
