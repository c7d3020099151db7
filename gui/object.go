// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/tree"
)

// Object is the interface that all [GuiObject] widgets satisfy.
type Object interface {
	Widget

	// AsGuiObject returns the [GuiObject] of the widget.
	AsGuiObject() *GuiObject
}

// GuiObject is the base of the widgets that are laid out relative to
// their parent. Its exported fields are properties, except for
// SelectionImageObject: use the setters to change them so that change
// signals fire.
type GuiObject struct {
	GuiBase

	// AnchorPoint is the point of the widget, relative to its size,
	// that is placed at its Position.
	AnchorPoint math32.Vector2

	// Position is the position of the AnchorPoint relative
	// to the parent.
	Position UDim2

	// Size is the size of the widget relative to the parent.
	Size UDim2

	// Rotation is the rotation of the widget in degrees.
	Rotation float32

	// Visible is whether the widget and its descendants are drawn.
	Visible bool

	ZIndex int

	LayoutOrder int

	BackgroundColor3 Color3

	// BackgroundTransparency is the transparency of the background
	// from 0 (opaque) to 1 (invisible).
	BackgroundTransparency float32

	BorderColor3 Color3

	// BorderSizePixel is the width of the border in pixels.
	BorderSizePixel int

	BorderMode BorderMode

	// Transparency is the overall transparency of the widget,
	// combined with BackgroundTransparency.
	Transparency float32

	ClipsDescendants bool

	Selectable bool

	SelectionOrder int

	Draggable bool

	// AutomaticSize is stored and observed but does not change layout.
	AutomaticSize AutomaticSize

	// SizeConstraint is which parent axes the scale of Size uses.
	SizeConstraint SizeConstraint

	// SelectionImageObject is the widget drawn over this one when it is
	// selected, or nil for the default. It refers to a node elsewhere in
	// the tree, so it is not copied by Clone nor saved in documents.
	SelectionImageObject Object `property:"-" copier:"-"`
}

func (g *GuiObject) setDefaults() {
	g.Visible = true
	g.BackgroundColor3 = Color3{1, 1, 1}
	g.BorderSizePixel = 1
	g.BorderMode = BorderOutline
	g.AutomaticSize = AutomaticSizeNone
	g.SizeConstraint = RelativeXY
}

// AsGuiObject returns the [GuiObject] of the widget.
func (g *GuiObject) AsGuiObject() *GuiObject {
	return g
}

// SetAnchorPoint sets the [GuiObject.AnchorPoint] property.
func (g *GuiObject) SetAnchorPoint(v math32.Vector2) *GuiObject {
	tree.SetProperty(g.This(), "AnchorPoint", &g.AnchorPoint, v)
	return g
}

// SetPosition sets the [GuiObject.Position] property.
func (g *GuiObject) SetPosition(v UDim2) *GuiObject {
	tree.SetProperty(g.This(), "Position", &g.Position, v)
	return g
}

// SetSize sets the [GuiObject.Size] property.
func (g *GuiObject) SetSize(v UDim2) *GuiObject {
	tree.SetProperty(g.This(), "Size", &g.Size, v)
	return g
}

// SetRotation sets the [GuiObject.Rotation] property.
func (g *GuiObject) SetRotation(v float32) *GuiObject {
	tree.SetProperty(g.This(), "Rotation", &g.Rotation, v)
	return g
}

// SetVisible sets the [GuiObject.Visible] property.
func (g *GuiObject) SetVisible(v bool) *GuiObject {
	tree.SetProperty(g.This(), "Visible", &g.Visible, v)
	return g
}

// SetZIndex sets the [GuiObject.ZIndex] property.
func (g *GuiObject) SetZIndex(v int) *GuiObject {
	tree.SetProperty(g.This(), "ZIndex", &g.ZIndex, v)
	return g
}

// SetLayoutOrder sets the [GuiObject.LayoutOrder] property.
func (g *GuiObject) SetLayoutOrder(v int) *GuiObject {
	tree.SetProperty(g.This(), "LayoutOrder", &g.LayoutOrder, v)
	return g
}

// SetBackgroundColor3 sets the [GuiObject.BackgroundColor3] property.
func (g *GuiObject) SetBackgroundColor3(v Color3) *GuiObject {
	tree.SetProperty(g.This(), "BackgroundColor3", &g.BackgroundColor3, v)
	return g
}

// SetBackgroundTransparency sets the [GuiObject.BackgroundTransparency] property.
func (g *GuiObject) SetBackgroundTransparency(v float32) *GuiObject {
	tree.SetProperty(g.This(), "BackgroundTransparency", &g.BackgroundTransparency, v)
	return g
}

// SetBorderColor3 sets the [GuiObject.BorderColor3] property.
func (g *GuiObject) SetBorderColor3(v Color3) *GuiObject {
	tree.SetProperty(g.This(), "BorderColor3", &g.BorderColor3, v)
	return g
}

// SetBorderSizePixel sets the [GuiObject.BorderSizePixel] property.
func (g *GuiObject) SetBorderSizePixel(v int) *GuiObject {
	tree.SetProperty(g.This(), "BorderSizePixel", &g.BorderSizePixel, v)
	return g
}

// SetBorderMode sets the [GuiObject.BorderMode] property.
func (g *GuiObject) SetBorderMode(v BorderMode) *GuiObject {
	tree.SetProperty(g.This(), "BorderMode", &g.BorderMode, v)
	return g
}

// SetTransparency sets the [GuiObject.Transparency] property.
func (g *GuiObject) SetTransparency(v float32) *GuiObject {
	tree.SetProperty(g.This(), "Transparency", &g.Transparency, v)
	return g
}

// SetClipsDescendants sets the [GuiObject.ClipsDescendants] property.
func (g *GuiObject) SetClipsDescendants(v bool) *GuiObject {
	tree.SetProperty(g.This(), "ClipsDescendants", &g.ClipsDescendants, v)
	return g
}

// SetSelectable sets the [GuiObject.Selectable] property.
func (g *GuiObject) SetSelectable(v bool) *GuiObject {
	tree.SetProperty(g.This(), "Selectable", &g.Selectable, v)
	return g
}

// SetSelectionOrder sets the [GuiObject.SelectionOrder] property.
func (g *GuiObject) SetSelectionOrder(v int) *GuiObject {
	tree.SetProperty(g.This(), "SelectionOrder", &g.SelectionOrder, v)
	return g
}

// SetDraggable sets the [GuiObject.Draggable] property.
func (g *GuiObject) SetDraggable(v bool) *GuiObject {
	tree.SetProperty(g.This(), "Draggable", &g.Draggable, v)
	return g
}

// IsDisplayed returns whether the widget is drawn: it and every
// [GuiObject] ancestor below the [Root] are Visible.
func (g *GuiObject) IsDisplayed() bool {
	return g.Visible && g.hiddenAncestor() == nil
}

// hiddenAncestor returns the first ancestor below the [Root]
// that is not Visible, or nil if there is none.
func (g *GuiObject) hiddenAncestor() tree.Node {
	for a := g.Parent(); a != nil; a = a.AsTree().Parent() {
		if _, ok := a.(*Root); ok {
			return nil
		}
		if o, ok := a.(Object); ok && !o.AsGuiObject().Visible {
			return a
		}
	}
	return nil
}

// backgroundAlpha returns the opacity of the background from 0 to 1.
func (g *GuiObject) backgroundAlpha() float32 {
	return math32.Clamp((1-g.BackgroundTransparency)*(1-g.Transparency), 0, 1)
}

// SetAutomaticSize sets the [GuiObject.AutomaticSize] property.
func (g *GuiObject) SetAutomaticSize(v AutomaticSize) *GuiObject {
	tree.SetProperty(g.This(), "AutomaticSize", &g.AutomaticSize, v)
	return g
}

// SetSizeConstraint sets the [GuiObject.SizeConstraint] property.
func (g *GuiObject) SetSizeConstraint(v SizeConstraint) *GuiObject {
	tree.SetProperty(g.This(), "SizeConstraint", &g.SizeConstraint, v)
	return g
}

// SetSelectionImageObject sets the [GuiObject.SelectionImageObject]
// property, firing its change signal if it refers to a different widget.
func (g *GuiObject) SetSelectionImageObject(v Object) *GuiObject {
	if sameObject(g.SelectionImageObject, v) {
		return g
	}
	g.SelectionImageObject = v
	g.PropertyChanged("SelectionImageObject")
	return g
}

func sameObject(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.AsTree() == b.AsTree()
}
