// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Length returns the length of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rotate returns this vector rotated about the origin by the given
// angle in degrees, counter-clockwise in a y-up frame.
func (v Vector2) Rotate(degrees float32) Vector2 {
	rad := DegToRad(degrees)
	s, c := Sin(rad), Cos(rad)
	return Vector2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// RotateAround returns this vector rotated about the given center
// by the given angle in degrees; see [Vector2.Rotate].
func (v Vector2) RotateAround(center Vector2, degrees float32) Vector2 {
	return v.Sub(center).Rotate(degrees).Add(center)
}

// IsEqualTol returns if this vector is equal to other, within the given tolerance.
func (v Vector2) IsEqualTol(other Vector2, tol float32) bool {
	return Abs(v.X-other.X) < tol && Abs(v.Y-other.Y) < tol
}
