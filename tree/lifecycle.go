// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"maps"
	"reflect"

	"github.com/jinzhu/copier"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/signal"
)

// Destroy destroys the node and its whole subtree. It fires Destroying,
// destroys every child, clears the hierarchy indexes, detaches the node
// from its parent (firing the normal reparenting signals), clears the tags
// and attributes, and finally destroys every signal owned by the node,
// disconnecting all of their handlers. After Destroy, the node can not be
// parented again. Calling it more than once does nothing.
//
// Children whose own Destroy vetoes destruction are detached without
// notification.
func (n *NodeBase) Destroy() {
	if n.this == nil || n.destroyed || n.isDestroying {
		return
	}
	n.isDestroying = true
	n.destroying.Fire(signal.Void{})

	for _, kid := range n.GetChildren() {
		kid.Destroy()
	}
	for _, kid := range n.childrenByID.Values {
		kid.AsTree().parent = nil
	}
	n.childrenByID.Reset()
	clear(n.childrenByName)

	if n.parent != nil {
		n.setParent(nil)
	}
	clear(n.tags)
	n.attributes.Reset()

	n.destroySignals()
	n.destroyed = true
	n.isDestroying = false
}

// destroySignals destroys the structural signals and every
// memoized property and attribute signal. The memoized signals
// stay stored, so later lookups return the same destroyed signals.
func (n *NodeBase) destroySignals() {
	n.changed.Destroy()
	n.childAdded.Destroy()
	n.childRemoved.Destroy()
	n.descendantAdded.Destroy()
	n.ancestryChanged.Destroy()
	n.attributeChanged.Destroy()
	n.destroying.Destroy()
	for _, s := range n.propertySignals.Values {
		s.Destroy()
	}
	for _, s := range n.attributeSignals.Values {
		s.Destroy()
	}
}

// Deep Copy:

// Clone creates and returns a deep copy of the tree from this node down.
// It returns nil if the node is not archivable. The clone is a new node of
// the same type with the same name, class, tags, attributes and property
// values, and clones of all of the archivable children, recursively; a child
// that is not archivable is left out together with its whole subtree. The
// returned clone has no parent and none of the signal handlers of the original.
func (n *NodeBase) Clone() Node {
	if n.this == nil || !n.archivable {
		return nil
	}
	nc := n.NewInstance()
	InitNode(nc, n.classTag, n.name)
	nc.CopyFieldsFrom(n.this)
	nb := nc.AsTree()
	nb.archivable = n.archivable
	maps.Copy(nb.tags, n.tags)
	nb.attributes.Copy(&n.attributes)
	for _, kid := range n.GetChildren() {
		kc := kid.AsTree().Clone()
		if kc == nil {
			continue
		}
		errors.Log(kc.AsTree().SetParent(nc))
	}
	return nc
}

// CloneOf is a generic helper function for [NodeBase.Clone]
// that returns the clone as the type of the given node.
// It returns the zero value if the node is not archivable.
func CloneOf[T Node](n T) T {
	c, _ := n.AsTree().Clone().(T)
	return c
}

// NewInstance returns a new uninitialized node of the same type as this
// node. It uses the constructor of the node's class when it makes nodes of
// the same type, so that unexported state gets its default values.
func (n *NodeBase) NewInstance() Node {
	typ := reflect.TypeOf(n.this)
	if c := ClassByName(n.classTag); c != nil && c.New != nil {
		if nn := c.New(); reflect.TypeOf(nn) == typ {
			return nn
		}
	}
	return reflect.New(typ.Elem()).Interface().(Node)
}

// CopyFieldsFrom copies the fields of the node from the given node.
// It does a deep copy of all of the exported fields of the node type.
// The [NodeBase] state of the node (identity, hierarchy, tags,
// attributes and signals) is never copied.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	base := *n
	err := copier.CopyWithOption(n.this, from.AsTree().this, copier.Option{CaseSensitive: true, DeepCopy: true})
	*n = base
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
}
