// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata has node types used in the tree tests.
package testdata

import (
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/tree"
)

// BasePartClass is an abstract class that [PartClass] inherits from.
const BasePartClass = "BasePart"

// PartClass is the class of [Part] nodes.
const PartClass = "Part"

func init() {
	tree.Register(&tree.Class{Name: BasePartClass})
	tree.Register(&tree.Class{Name: PartClass, Base: BasePartClass, New: func() tree.Node {
		return &Part{Size: 1, Color: "gray"}
	}})
}

// Part embeds tree.NodeBase and adds a few properties.
type Part struct {
	tree.NodeBase
	Size   int
	Color  string
	Weight float32

	// Cache is not a property.
	Cache string `property:"-"`

	// ParentChanges records the parents passed to OnParentChanged.
	ParentChanges []tree.Node `property:"-" copier:"-"`
}

// NewPart returns a new initialized [Part] with the given name.
func NewPart(name string) *Part {
	return errors.Must1(tree.NewAs[*Part](PartClass, name))
}

// SetSize sets the Size property.
func (p *Part) SetSize(size int) *Part {
	tree.SetProperty(p, "Size", &p.Size, size)
	return p
}

// SetColor sets the Color property.
func (p *Part) SetColor(color string) *Part {
	tree.SetProperty(p, "Color", &p.Color, color)
	return p
}

func (p *Part) OnParentChanged(oldParent, newParent tree.Node) {
	p.ParentChanges = append(p.ParentChanges, newParent)
}
