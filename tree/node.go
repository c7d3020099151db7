// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides a retained-mode scene tree of addressable
// nodes, centered on the core [Node] interface and its [NodeBase]
// implementation.
//
// Every node has a process-unique id, a name, an immutable class tag,
// at most one parent, and an ordered set of children. Nodes carry typed
// properties that fire change signals, free-form tags and attributes,
// and can be cloned or destroyed as a unit. Destroying a node destroys
// its whole subtree.
//
// The tree assumes a single mutator: nothing in this package is safe
// for concurrent use, except for node construction.
package tree

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level node types
// must embed it. This interface only contains the tree functionality that
// higher-level node types may need to override. You can call [Node.AsTree]
// to get the [NodeBase] of a Node and access the core tree functionality.
// All values that implement [Node] are pointer values.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// Destroy recursively destroys the node and all of its children,
	// detaching it from its parent. Node types can implement this to
	// do additional destruction, in which case they should call
	// [NodeBase.Destroy] at the end of their implementation, or to veto
	// destruction entirely by not calling it at all.
	Destroy()

	// CopyFieldsFrom copies the fields of the node from the given node,
	// which is of the same concrete type. It is used by [NodeBase.Clone].
	// By default, it is [NodeBase.CopyFieldsFrom], which does a deep copy
	// of all of the exported fields of the node. All custom CopyFieldsFrom
	// methods should call [NodeBase.CopyFieldsFrom] first and then only do
	// manual handling of specific fields.
	CopyFieldsFrom(from Node)
}

// ParentChanger is implemented by nodes that need to react to
// their own reparenting, such as to recompute derived state.
// OnParentChanged is called after both hierarchy indexes have been
// updated and before any of the reparenting signals fire.
type ParentChanger interface {
	OnParentChanged(oldParent, newParent Node)
}

// AncestryChange is the value sent by [NodeBase.AncestryChanged].
type AncestryChange struct {

	// Child is the node whose parent was actually changed.
	Child Node

	// Parent is the new parent of Child, or nil if it was removed.
	Parent Node
}

// sameNode returns whether the two nodes are the same node,
// treating nil as equal only to nil.
func sameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.AsTree() == b.AsTree()
}
