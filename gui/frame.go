// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/tree"
)

// Frame is a rectangular widget with a background and a border.
type Frame struct {
	GuiObject
}

// NewFrame returns a new [Frame] with the given name.
func NewFrame(name string) *Frame {
	return errors.Must1(tree.NewAs[*Frame](FrameClass, name))
}

// Draw draws the background and the border of the frame
// if it is displayed.
func (fr *Frame) Draw(c Canvas) {
	if !fr.IsDisplayed() {
		return
	}
	rect := fr.AbsoluteRect()
	if a := fr.backgroundAlpha(); a > 0 {
		c.FillRect(rect, fr.absoluteRotation, fr.BackgroundColor3, a)
	}
	if fr.BorderSizePixel > 0 {
		w := float32(fr.BorderSizePixel)
		c.StrokeRect(fr.BorderMode.rect(rect, w), fr.absoluteRotation, fr.BorderColor3, w, math32.Clamp(1-fr.Transparency, 0, 1))
	}
}

// Root is the top-level [Frame] of a gui tree. Its absolute bounds are
// always the viewport and it is not Visible by default. It can not be
// destroyed.
type Root struct {
	Frame
}

// NewRoot returns a new [Root] with the given name.
func NewRoot(name string) *Root {
	return errors.Must1(tree.NewAs[*Root](RootClass, name))
}

// Destroy does nothing: the root can not be destroyed.
func (r *Root) Destroy() {}

func (r *Root) layout(parent math32.Box2, parentRotation float32, viewport math32.Vector2) (math32.Box2, float32) {
	r.setAbsolute(math32.Vector2{}, viewport, 0)
	return r.AbsoluteRect(), 0
}
