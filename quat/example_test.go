// SPDX-License-Identifier: MIT
package quat_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlmath/quat"
	"github.com/katalvlaran/lvlmath/vector"
)

// ExampleFromAxisAngle rotates the +X axis a quarter turn about +Z.
func ExampleFromAxisAngle() {
	q, err := quat.FromAxisAngle(vector.Vec3(0, 0, 1), math.Pi/2)
	if err != nil {
		panic(err)
	}

	out, err := q.RotateVector(vector.Vec3(1, 0, 0))
	if err != nil {
		panic(err)
	}

	c := out.Components()
	fmt.Printf("(%d, %d, %d)\n", int(math.Round(c[0])), int(math.Round(c[1])), int(math.Round(c[2])))

	// Output:
	// (0, 1, 0)
}

// ExampleQuaternion_Slerp walks an orientation along the great arc at
// constant angular velocity.
func ExampleQuaternion_Slerp() {
	start := quat.Identity()
	end, err := quat.FromAxisAngle(vector.Vec3(0, 1, 0), math.Pi/2)
	if err != nil {
		panic(err)
	}

	for _, t := range []float64{0, 0.5, 1} {
		_, angle := start.Slerp(end, t).ToAxisAngle()
		fmt.Printf("t=%.1f angle=%.2f\n", t, angle)
	}

	// Output:
	// t=0.0 angle=0.00
	// t=0.5 angle=0.79
	// t=1.0 angle=1.57
}
