// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and math package
// for 2D layout.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// degToRad is the number of radians per degree.
const degToRad = math.Pi / 180

// DegToRad converts the given angle in degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * degToRad
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sin and Cos take radians.

func Sin(x float32) float32 {
	return math32.Sin(x)
}

func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Clamp returns x limited to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
