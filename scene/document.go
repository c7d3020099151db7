// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene saves and loads scene trees as YAML, TOML or JSON
// documents. A [Document] describes one node by its class, name, tags,
// attributes and the properties that differ from their defaults,
// together with the documents of its children.
package scene

import (
	"fmt"
	"slices"

	"cogentcore.org/scene/tree"
)

// Document is the saved form of a node and its subtree.
type Document struct {

	// Class is the registered class of the node.
	Class string `yaml:"class" toml:"class" json:"class" mapstructure:"class"`

	// Name is the name of the node; it defaults to the class.
	Name string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty" mapstructure:"name"`

	// Archivable, if set, overrides whether the node is archivable.
	Archivable *bool `yaml:"archivable,omitempty" toml:"archivable,omitempty" json:"archivable,omitempty" mapstructure:"archivable"`

	Tags []string `yaml:"tags,omitempty" toml:"tags,omitempty" json:"tags,omitempty" mapstructure:"tags"`

	Attributes map[string]any `yaml:"attributes,omitempty" toml:"attributes,omitempty" json:"attributes,omitempty" mapstructure:"attributes"`

	// Properties are the values of the properties of the node by name;
	// see [tree.PropertyNames].
	Properties map[string]any `yaml:"properties,omitempty" toml:"properties,omitempty" json:"properties,omitempty" mapstructure:"properties"`

	Children []*Document `yaml:"children,omitempty" toml:"children,omitempty" json:"children,omitempty" mapstructure:"children"`
}

func (d *Document) String() string {
	if d.Name == "" {
		return d.Class
	}
	return fmt.Sprintf("%s %q", d.Class, d.Name)
}

// Snapshot returns the [Document] of the given node and its archivable
// descendants. Only the properties that differ from their defaults are
// included. It returns nil if the node is not archivable.
func Snapshot(n tree.Node) *Document {
	nb := n.AsTree()
	if !nb.Archivable() {
		return nil
	}
	d := &Document{Class: nb.ClassName(), Tags: nb.GetTags()}
	if nb.Name() != nb.ClassName() {
		d.Name = nb.Name()
	}
	if names := nb.AttributeNames(); len(names) > 0 {
		d.Attributes = nb.Attributes()
	}
	for _, name := range tree.PropertyNames(n) {
		if name == "Name" || name == "Archivable" || !tree.IsPropertyModified(n, name) {
			continue
		}
		v, err := tree.PropertyValue(n, name)
		if err != nil {
			continue
		}
		if d.Properties == nil {
			d.Properties = map[string]any{}
		}
		d.Properties[name] = v
	}
	for _, kid := range nb.GetChildren() {
		if kd := Snapshot(kid); kd != nil {
			d.Children = append(d.Children, kd)
		}
	}
	return d
}

// Walk calls the given function on the document and all of its
// descendant documents in pre-order.
func (d *Document) Walk(fun func(d *Document, depth int)) {
	d.walk(fun, 0)
}

func (d *Document) walk(fun func(d *Document, depth int), depth int) {
	fun(d, depth)
	for _, kid := range d.Children {
		kid.walk(fun, depth+1)
	}
}

// PropertyNames returns the names of the properties of the
// document in sorted order.
func (d *Document) PropertyNames() []string {
	names := make([]string, 0, len(d.Properties))
	for name := range d.Properties {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
