// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cube provides the fixed geometry of a unit cube centered on
// the origin, with one color per corner, and the transform that places
// the spinning cube in front of the camera.
package cube

import "cogentcore.org/cube/math32"

const (
	// NVertices is the number of cube corners.
	NVertices = 8

	// NTriangles is the number of triangles: 6 faces of 2 triangles each.
	NTriangles = 6 * 2

	// NIndexes is the number of entries in [Indexes].
	NIndexes = NTriangles * 3

	// PositionLoc is the vertex attribute location of the positions.
	PositionLoc = 0

	// ColorLoc is the vertex attribute location of the colors.
	ColorLoc = 1

	// Components is the number of float32 values per position or color.
	Components = 3
)

// Positions are the cube corners: the front face at z = 0.5, then
// the back face at z = -0.5, each counter-clockwise from the top right
// as seen from +Z.
var Positions = [NVertices]math32.Vector3{
	{0.5, 0.5, 0.5},
	{-0.5, 0.5, 0.5},
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},

	{0.5, 0.5, -0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
}

// Colors are the RGB colors of the corners, index-aligned with [Positions].
var Colors = [NVertices]math32.Vector3{
	{1.0, 0.4, 0.6},
	{1.0, 0.9, 0.2},
	{0.7, 0.3, 0.8},
	{0.5, 0.3, 1.0},

	{0.2, 0.6, 1.0},
	{0.6, 1.0, 0.4},
	{0.6, 0.8, 0.8},
	{0.4, 0.8, 0.8},
}

// Faces names the cube faces in the order they appear in [Indexes].
var Faces = [6]string{"front", "right", "bottom", "left", "back", "top"}

// Indexes lists the corners of each triangle, two per face in the order
// of [Faces]. The two triangles of a face share a diagonal.
var Indexes = [NIndexes]uint16{
	0, 1, 2,
	2, 3, 0,

	0, 3, 7,
	7, 4, 0,

	2, 6, 7,
	7, 3, 2,

	1, 5, 6,
	6, 2, 1,

	4, 7, 6,
	6, 5, 4,

	5, 1, 0,
	0, 4, 5,
}

// PositionData returns the positions as tightly packed float32
// triples, ready for upload to a vertex buffer.
func PositionData() []float32 {
	return flatten(Positions[:])
}

// ColorData returns the colors as tightly packed float32 triples,
// ready for upload to a vertex buffer.
func ColorData() []float32 {
	return flatten(Colors[:])
}

// IndexData returns a copy of [Indexes].
func IndexData() []uint16 {
	idx := make([]uint16, NIndexes)
	copy(idx, Indexes[:])
	return idx
}

// Triangles returns [Indexes] grouped by triangle.
func Triangles() [NTriangles][3]uint16 {
	var tris [NTriangles][3]uint16
	for i := range tris {
		copy(tris[i][:], Indexes[i*3:i*3+3])
	}
	return tris
}

func flatten(vs []math32.Vector3) []float32 {
	data := make([]float32, len(vs)*Components)
	for i, v := range vs {
		v.ToSlice(data, i*Components)
	}
	return data
}
