// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/tree"
)

// layouter is implemented by widgets that compute their absolute
// layout state from that of their parent. It returns the bounds
// and rotation that their children are laid out in.
type layouter interface {
	layout(parent math32.Box2, parentRotation float32, viewport math32.Vector2) (math32.Box2, float32)
}

// Layout recomputes the absolute position, size and rotation of every
// widget in the tree under the given node, in pre-order, for a screen
// of the given viewport size. Widgets are laid out relative to their
// nearest widget ancestor; nodes that are not widgets pass the bounds
// of their parent through to their children. Nodes above the first
// widget are laid out in the viewport.
func Layout(n tree.Node, viewport math32.Vector2) {
	layoutTree(n, math32.Box2FromPosSize(math32.Vector2{}, viewport), 0, viewport)
}

func layoutTree(n tree.Node, parent math32.Box2, rotation float32, viewport math32.Vector2) {
	if l, ok := n.(layouter); ok {
		parent, rotation = l.layout(parent, rotation, viewport)
	}
	for _, kid := range n.AsTree().GetChildren() {
		layoutTree(kid, parent, rotation, viewport)
	}
}

func (g *GuiObject) layout(parent math32.Box2, parentRotation float32, viewport math32.Vector2) (math32.Box2, float32) {
	psize := parent.Size()
	size := g.Size.Resolve(g.SizeConstraint.basis(psize))
	pos := parent.Min.Add(g.Position.Resolve(psize)).Sub(g.AnchorPoint.Mul(size))
	rotation := parentRotation + g.Rotation
	g.setAbsolute(pos, size, rotation)
	return g.AbsoluteRect(), rotation
}
