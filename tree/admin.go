// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"sync/atomic"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/signal"
)

// admin.go has infrastructure code outside of the Node interface.

var (
	// ErrUnknownClass is returned when constructing a class
	// that has not been registered.
	ErrUnknownClass = errors.New("unknown class")

	// ErrAbstractClass is returned when constructing a registered
	// class that has no constructor.
	ErrAbstractClass = errors.New("abstract class")

	// ErrCycle is returned when setting a parent would make
	// a node its own ancestor.
	ErrCycle = errors.New("parent would create a cycle")

	// ErrDestroyed is returned when parenting a destroyed node,
	// or parenting to a destroyed node.
	ErrDestroyed = errors.New("node has been destroyed")

	// ErrUnknownProperty is returned for a property name
	// that the node does not have.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrNotInitialized is returned for a node that has not
	// been initialized with [InitNode] or [New].
	ErrNotInitialized = errors.New("node has not been initialized; use tree.New or tree.InitNode")
)

// nextID is the id of the next node to be initialized.
// It starts at 0 and is never reused.
var nextID atomic.Uint64

// newID returns a new process-unique node id.
func newID() uint64 {
	return nextID.Add(1) - 1
}

// InitNode initializes the given node with the given class tag and name:
// it assigns the node its id and creates its signals. It must be called
// exactly once on every node before use; [New] and [NodeBase.Clone] call
// it automatically, so it typically only needs to be called directly for
// node types that are not registered as classes. Subsequent calls do nothing.
func InitNode(this Node, class, name string) {
	n := this.AsTree()
	if n.this != nil {
		return
	}
	n.this = this
	n.id = newID()
	n.classTag = class
	n.name = name
	n.archivable = true
	n.childrenByName = map[string]Node{}
	n.tags = map[string]struct{}{}
	n.changed = signal.New[string]()
	n.childAdded = signal.New[Node]()
	n.childRemoved = signal.New[Node]()
	n.descendantAdded = signal.New[Node]()
	n.ancestryChanged = signal.New[AncestryChange]()
	n.attributeChanged = signal.New[string]()
	n.destroying = signal.New[signal.Void]()
}

// NewNodeBase returns a new initialized [NodeBase] of the
// [InstanceClass] with the given name.
func NewNodeBase(name string) *NodeBase {
	n := &NodeBase{}
	InitNode(n, InstanceClass, name)
	return n
}

// checkThis returns an error if the node has not been initialized.
func checkThis(n *NodeBase, op string) error {
	if n.this != nil {
		return nil
	}
	return fmt.Errorf("tree.NodeBase.%s: %w", op, ErrNotInitialized)
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	cur := n.AsTree()
	for cur.parent != nil {
		cur = cur.parent.AsTree()
	}
	return cur.this
}

// IsRoot returns whether the given node has no parent.
func IsRoot(n Node) bool {
	return n.AsTree().parent == nil
}
