// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gui provides the minimal widgets of the scene tree:
// [GuiBase] nodes with absolute layout state, [GuiObject] nodes with
// relative layout and visual properties, [Frame] and [Root]. The
// absolute layout state is recomputed from the relative properties
// by [Layout], and widgets draw themselves onto a [Canvas].
package gui

import (
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/tree"
)

// Class names of the gui widgets.
const (
	GuiBaseClass   = "GuiBase"
	GuiObjectClass = "GuiObject"
	FrameClass     = "Frame"
	RootClass      = "RootWidget"
)

func init() {
	tree.Register(&tree.Class{Name: GuiBaseClass})
	tree.Register(&tree.Class{Name: GuiObjectClass, Base: GuiBaseClass})
	tree.Register(&tree.Class{Name: FrameClass, Base: GuiObjectClass, New: func() tree.Node {
		fr := &Frame{}
		fr.setDefaults()
		return fr
	}})
	tree.Register(&tree.Class{Name: RootClass, Base: FrameClass, New: func() tree.Node {
		r := &Root{}
		r.setDefaults()
		r.Visible = false
		return r
	}})
}

// Widget is the interface that all gui nodes satisfy.
type Widget interface {
	tree.Node

	// AsGuiBase returns the [GuiBase] of the widget.
	AsGuiBase() *GuiBase
}

// GuiBase is the base of all gui nodes. It holds the absolute layout
// state of the widget, which is read-only outside of [Layout].
type GuiBase struct {
	tree.NodeBase

	absolutePosition math32.Vector2
	absoluteSize     math32.Vector2
	absoluteRotation float32
}

// AsGuiBase returns the [GuiBase] of the widget.
func (gb *GuiBase) AsGuiBase() *GuiBase {
	return gb
}

// AbsolutePosition returns the position of the top-left corner of the
// widget in pixels, as of the last [Layout].
func (gb *GuiBase) AbsolutePosition() math32.Vector2 {
	return gb.absolutePosition
}

// AbsoluteSize returns the size of the widget in pixels,
// as of the last [Layout].
func (gb *GuiBase) AbsoluteSize() math32.Vector2 {
	return gb.absoluteSize
}

// AbsoluteRotation returns the rotation of the widget in degrees,
// including that of its ancestors, as of the last [Layout].
func (gb *GuiBase) AbsoluteRotation() float32 {
	return gb.absoluteRotation
}

// AbsoluteRect returns the bounds of the widget in pixels.
func (gb *GuiBase) AbsoluteRect() math32.Box2 {
	return math32.Box2FromPosSize(gb.absolutePosition, gb.absoluteSize)
}

// setAbsolute sets the absolute layout state, firing the change
// signals for the values that change.
func (gb *GuiBase) setAbsolute(pos, size math32.Vector2, rotation float32) {
	tree.SetProperty(gb.This(), "AbsolutePosition", &gb.absolutePosition, pos)
	tree.SetProperty(gb.This(), "AbsoluteSize", &gb.absoluteSize, size)
	tree.SetProperty(gb.This(), "AbsoluteRotation", &gb.absoluteRotation, rotation)
}
