// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"fmt"

	"cogentcore.org/scene/math32"
)

// Canvas is a surface that widgets draw onto. The rotation of a
// rectangle is in degrees about its center.
type Canvas interface {

	// FillRect fills the given rectangle with the given color
	// and opacity from 0 to 1.
	FillRect(rect math32.Box2, rotation float32, color Color3, alpha float32)

	// StrokeRect strokes the edges of the given rectangle with lines
	// of the given width, color and opacity.
	StrokeRect(rect math32.Box2, rotation float32, color Color3, width, alpha float32)
}

// DrawOp is one operation recorded by a [Recorder].
type DrawOp struct {

	// Op is "fill" or "stroke".
	Op string

	Rect     math32.Box2
	Rotation float32
	Color    Color3

	// Width is the stroke width; it is 0 for fills.
	Width float32

	Alpha float32
}

func (op DrawOp) String() string {
	return fmt.Sprintf("%s %v rot=%g color=%s width=%g alpha=%g", op.Op, op.Rect, op.Rotation, op.Color, op.Width, op.Alpha)
}

// Recorder is a [Canvas] that records the operations drawn onto it.
type Recorder struct {
	Ops []DrawOp
}

func (r *Recorder) FillRect(rect math32.Box2, rotation float32, color Color3, alpha float32) {
	r.Ops = append(r.Ops, DrawOp{Op: "fill", Rect: rect, Rotation: rotation, Color: color, Alpha: alpha})
}

func (r *Recorder) StrokeRect(rect math32.Box2, rotation float32, color Color3, width, alpha float32) {
	r.Ops = append(r.Ops, DrawOp{Op: "stroke", Rect: rect, Rotation: rotation, Color: color, Width: width, Alpha: alpha})
}

// Reset removes all of the recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
