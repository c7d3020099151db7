// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"cogentcore.org/scene/signal"
)

// Changed returns the signal fired with the property name
// after any property of the node changes.
func (n *NodeBase) Changed() *signal.Signal[string] {
	return n.changed
}

// ChildAdded returns the signal fired with the child
// after a node becomes a child of this node.
func (n *NodeBase) ChildAdded() *signal.Signal[Node] {
	return n.childAdded
}

// ChildRemoved returns the signal fired with the child
// after a child is removed from this node.
func (n *NodeBase) ChildRemoved() *signal.Signal[Node] {
	return n.childRemoved
}

// DescendantAdded returns the signal fired with the moved node
// after a node is added anywhere under this node.
func (n *NodeBase) DescendantAdded() *signal.Signal[Node] {
	return n.descendantAdded
}

// AncestryChanged returns the signal fired after the parent
// of this node or of one of its ancestors changes.
func (n *NodeBase) AncestryChanged() *signal.Signal[AncestryChange] {
	return n.ancestryChanged
}

// AttributeChanged returns the signal fired with the attribute
// name after any attribute of the node changes.
func (n *NodeBase) AttributeChanged() *signal.Signal[string] {
	return n.attributeChanged
}

// Destroying returns the signal fired at the start of [NodeBase.Destroy].
func (n *NodeBase) Destroying() *signal.Signal[signal.Void] {
	return n.destroying
}

// GetPropertyChangedSignal returns the signal fired after the given property
// changes. The signal is created on the first call; every later call for the
// same property returns the same signal, also after the node is destroyed.
// A signal first requested from a destroyed node is already destroyed.
func (n *NodeBase) GetPropertyChangedSignal(property string) *signal.Signal[signal.Void] {
	return n.memoSignal(&n.propertySignals, property)
}

// GetAttributeChangedSignal returns the signal fired after the given attribute
// changes, memoized in the same way as [NodeBase.GetPropertyChangedSignal]
// but in a separate namespace.
func (n *NodeBase) GetAttributeChangedSignal(attribute string) *signal.Signal[signal.Void] {
	return n.memoSignal(&n.attributeSignals, attribute)
}

func (n *NodeBase) memoSignal(signals *signalList, key string) *signal.Signal[signal.Void] {
	if s, ok := signals.AtTry(key); ok {
		return s
	}
	s := signal.New[signal.Void]()
	if n.destroyed {
		s.Destroy()
	}
	signals.Set(key, s)
	return s
}

// PropertyChanged fires the change signal for the given property, if it
// has ever been requested with [NodeBase.GetPropertyChangedSignal], and then
// [NodeBase.Changed]. Property setters call it after committing a new value;
// see [SetProperty].
func (n *NodeBase) PropertyChanged(property string) {
	if n.this == nil {
		return
	}
	if s, ok := n.propertySignals.AtTry(property); ok {
		s.Fire(signal.Void{})
	}
	n.changed.Fire(property)
}
