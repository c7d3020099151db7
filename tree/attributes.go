// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"maps"
	"reflect"
	"slices"

	"cogentcore.org/scene/base/keylist"
	"cogentcore.org/scene/signal"
)

type signalList = keylist.List[string, *signal.Signal[signal.Void]]

// Tags:

// AddTag adds the given tag to the node. Tags do not fire signals.
func (n *NodeBase) AddTag(tag string) {
	if n.tags == nil {
		n.tags = map[string]struct{}{}
	}
	n.tags[tag] = struct{}{}
}

// RemoveTag removes the given tag from the node, if it has it.
func (n *NodeBase) RemoveTag(tag string) {
	delete(n.tags, tag)
}

// HasTag returns whether the node has the given tag.
func (n *NodeBase) HasTag(tag string) bool {
	_, ok := n.tags[tag]
	return ok
}

// GetTags returns a sorted snapshot of the tags of the node.
func (n *NodeBase) GetTags() []string {
	return slices.Sorted(maps.Keys(n.tags))
}

// Attributes:

// SetAttribute sets the attribute with the given name to the given value.
// A nil value deletes the attribute. If the attribute changes, the signal
// from [NodeBase.GetAttributeChangedSignal] fires (if it has been requested),
// followed by [NodeBase.AttributeChanged]. Setting a comparable value equal
// to the current one does nothing.
func (n *NodeBase) SetAttribute(name string, value any) {
	old, had := n.attributes.AtTry(name)
	if value == nil {
		if !had {
			return
		}
		n.attributes.DeleteByKey(name)
	} else {
		if had && equalValues(old, value) {
			return
		}
		n.attributes.Set(name, value)
	}
	if n.this == nil {
		return
	}
	if s, ok := n.attributeSignals.AtTry(name); ok {
		s.Fire(signal.Void{})
	}
	n.attributeChanged.Fire(name)
}

// Attribute returns the value of the attribute with the given name,
// or nil if it is not set.
func (n *NodeBase) Attribute(name string) any {
	return n.attributes.At(name)
}

// Attributes returns a snapshot of the attributes of the node.
func (n *NodeBase) Attributes() map[string]any {
	res := make(map[string]any, n.attributes.Len())
	for i, k := range n.attributes.Keys {
		res[k] = n.attributes.Values[i]
	}
	return res
}

// AttributeNames returns the names of the attributes of the node
// in the order they were first set.
func (n *NodeBase) AttributeNames() []string {
	return slices.Clone(n.attributes.Keys)
}

// equalValues returns whether the two values are of the same comparable
// type and equal. Values of non-comparable types are never equal.
func equalValues(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	defer func() { recover() }()
	return a == b
}
