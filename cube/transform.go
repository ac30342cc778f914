// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "cogentcore.org/cube/math32"

const (
	// SpinPeriod is the number of seconds for one full turn about Y.
	SpinPeriod = 4

	// Tilt is the fixed rotation about X, in radians, that shows the top face.
	Tilt = 0.15 * math32.Pi

	// Distance is how far the cube is moved away from the camera along -Z.
	Distance = 3
)

// Transform returns the model-view-projection matrix for the given
// animation progress in [0, 1). The cube is first spun about Y by
// 2π·progress, then tilted about X, then moved away from the camera,
// and finally projected:
//
//	perspective × translate(0, 0, -Distance) × rotateX(Tilt) × rotateY(2π·progress)
func Transform(progress float32) math32.Matrix4 {
	return math32.Mul4(
		math32.Perspective4(),
		math32.Translation4(0, 0, -Distance),
		math32.RotationX4(Tilt),
		math32.RotationY4(2*math32.Pi*progress),
	)
}
