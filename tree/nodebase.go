// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/scene/base/keylist"
	"cogentcore.org/scene/signal"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the scene tree. You must use NodeBase as an embedded struct in all
// higher-level node types.
//
// All nodes must be initialized by using one of [New], [NewNodeBase],
// [InitNode], or [NodeBase.Clone]. This assigns the node its id and
// sets up its signals.
//
// The state of a NodeBase is only reachable through its methods, so
// the exported fields of higher-level types are exactly their
// properties (see [PropertyNames]).
type NodeBase struct {

	// this is the value of this Node as its true underlying type. This allows
	// methods defined on base types to call methods defined on higher-level types.
	this Node

	// id is the process-unique id of the node, assigned by [InitNode].
	id uint64

	// name is the non-unique display name of the node.
	name string

	// classTag is the registered class of the node; see [Register].
	classTag string

	// parent is the parent of this node, or nil for a root.
	// It does not own the parent.
	parent Node

	// childrenByName maps names to children. When two children have the
	// same name, the one most recently added or renamed wins.
	childrenByName map[string]Node

	// childrenByID is the authoritative set of children, keyed by id,
	// in the order they were added.
	childrenByID keylist.List[uint64, Node]

	// tags is the set of tags on the node.
	tags map[string]struct{}

	// archivable is whether [NodeBase.Clone] copies the node.
	archivable bool

	// attributes are the open-ended named values of the node, in the
	// order they were first set.
	attributes keylist.List[string, any]

	// propertySignals are the memoized per-property change signals.
	propertySignals keylist.List[string, *signal.Signal[signal.Void]]

	// attributeSignals are the memoized per-attribute change signals.
	attributeSignals keylist.List[string, *signal.Signal[signal.Void]]

	changed          *signal.Signal[string]
	childAdded       *signal.Signal[Node]
	childRemoved     *signal.Signal[Node]
	descendantAdded  *signal.Signal[Node]
	ancestryChanged  *signal.Signal[AncestryChange]
	attributeChanged *signal.Signal[string]
	destroying       *signal.Signal[signal.Void]

	// isDestroying is set for the duration of [NodeBase.Destroy].
	isDestroying bool

	// destroyed is set once [NodeBase.Destroy] has completed.
	destroyed bool
}

// String implements the [fmt.Stringer] interface by returning the
// full name of the node.
func (n *NodeBase) String() string {
	if n == nil || n.this == nil {
		return "nil"
	}
	return n.GetFullName()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// This returns the node as its true underlying type.
// It is nil if the node has not been initialized.
func (n *NodeBase) This() Node {
	return n.this
}

// ID returns the process-unique id of the node.
func (n *NodeBase) ID() uint64 {
	return n.id
}

// ClassName returns the class tag of the node.
func (n *NodeBase) ClassName() string {
	return n.classTag
}

// IsA returns whether the class of the node is the given class
// or inherits from it; see [Inherits].
func (n *NodeBase) IsA(class string) bool {
	return Inherits(n.classTag, class)
}

// Name returns the name of the node.
func (n *NodeBase) Name() string {
	return n.name
}

// SetName sets the name of the node. If the node has a parent, the
// parent's name index is updated so that this node is the one found
// by the new name.
func (n *NodeBase) SetName(name string) {
	if n.name == name {
		return
	}
	old := n.name
	n.name = name
	if n.parent != nil {
		p := n.parent.AsTree()
		p.unbindName(old, n)
		p.childrenByName[name] = n.this
	}
	n.PropertyChanged("Name")
}

// Archivable returns whether the node is copied by [NodeBase.Clone].
func (n *NodeBase) Archivable() bool {
	return n.archivable
}

// SetArchivable sets whether the node is copied by [NodeBase.Clone].
func (n *NodeBase) SetArchivable(archivable bool) {
	SetProperty(n, "Archivable", &n.archivable, archivable)
}

// IsDestroyed returns whether the node has been destroyed.
func (n *NodeBase) IsDestroyed() bool {
	return n.destroyed
}

// Parents:

// Parent returns the parent of the node, or nil if it has none.
func (n *NodeBase) Parent() Node {
	return n.parent
}

// SetParent makes the given node the parent of this node, removing it
// from its current parent. A nil parent removes the node from its parent.
// It does nothing if the given parent is already the parent.
//
// Both hierarchy indexes of the old and new parents are updated before
// any signal fires. Signals then fire in this order: ChildRemoved on the
// old parent, ChildAdded on the new parent, DescendantAdded on the new
// parent and each of its ancestors up to the root, AncestryChanged on this
// node and then on each of its descendants, and finally the "Parent"
// property signal and Changed on this node.
//
// It returns [ErrCycle] if the parent is this node or one of its
// descendants, and [ErrDestroyed] if either node has been destroyed.
// Nothing changes when an error is returned.
func (n *NodeBase) SetParent(parent Node) error {
	if err := checkThis(n, "SetParent"); err != nil {
		return err
	}
	if sameNode(n.parent, parent) {
		return nil
	}
	if parent != nil {
		pb := parent.AsTree()
		if err := checkThis(pb, "SetParent"); err != nil {
			return err
		}
		if n.destroyed || n.isDestroying {
			return fmt.Errorf("tree.NodeBase.SetParent: %w: %v", ErrDestroyed, n)
		}
		if pb.destroyed || pb.isDestroying {
			return fmt.Errorf("tree.NodeBase.SetParent: %w: parent %v", ErrDestroyed, pb)
		}
		if pb == n || n.IsAncestorOf(pb.this) {
			return fmt.Errorf("tree.NodeBase.SetParent: %w: %v under %v", ErrCycle, n, pb)
		}
		parent = pb.this
	}
	n.setParent(parent)
	return nil
}

// setParent is the unchecked implementation of [NodeBase.SetParent].
func (n *NodeBase) setParent(parent Node) {
	old := n.parent
	if old != nil {
		old.AsTree().removeChild(n)
	}
	n.parent = parent
	if parent != nil {
		parent.AsTree().addChild(n)
	}
	if pc, ok := n.this.(ParentChanger); ok {
		pc.OnParentChanged(old, parent)
	}

	if old != nil {
		old.AsTree().childRemoved.Fire(n.this)
	}
	if parent != nil {
		parent.AsTree().childAdded.Fire(n.this)
		for a := parent; a != nil; a = a.AsTree().parent {
			a.AsTree().descendantAdded.Fire(n.this)
		}
	}
	change := AncestryChange{Child: n.this, Parent: parent}
	n.ancestryChanged.Fire(change)
	for _, d := range n.GetDescendants() {
		d.AsTree().ancestryChanged.Fire(change)
	}
	n.PropertyChanged("Parent")
}

// AddChild makes this node the parent of the given node.
// It is equivalent to calling [NodeBase.SetParent] on the child.
func (n *NodeBase) AddChild(kid Node) error {
	return kid.AsTree().SetParent(n.this)
}

// addChild adds the given node to both hierarchy indexes.
func (n *NodeBase) addChild(kid *NodeBase) {
	n.childrenByID.Set(kid.id, kid.this)
	n.childrenByName[kid.name] = kid.this
}

// removeChild removes the given node from both hierarchy indexes.
func (n *NodeBase) removeChild(kid *NodeBase) {
	n.childrenByID.DeleteByKey(kid.id)
	n.unbindName(kid.name, kid)
}

// unbindName removes the name index entry for the given child under
// the given name, if the child holds it. The name is then bound to the
// most recently added remaining child with that name, if any.
func (n *NodeBase) unbindName(name string, kid *NodeBase) {
	cur, ok := n.childrenByName[name]
	if !ok || cur.AsTree() != kid {
		return
	}
	delete(n.childrenByName, name)
	kids := n.childrenByID.Values
	for i := len(kids) - 1; i >= 0; i-- {
		k := kids[i].AsTree()
		if k != kid && k.name == name {
			n.childrenByName[name] = k.this
			return
		}
	}
}

// IsAncestorOf returns whether this node is an ancestor of the given node,
// determined by walking up the parents of the given node.
func (n *NodeBase) IsAncestorOf(descendant Node) bool {
	if descendant == nil {
		return false
	}
	for a := descendant.AsTree().parent; a != nil; a = a.AsTree().parent {
		if a.AsTree() == n {
			return true
		}
	}
	return false
}

// IsDescendantOf returns whether this node is a descendant of the given node,
// determined by walking up the parents of this node.
func (n *NodeBase) IsDescendantOf(ancestor Node) bool {
	if ancestor == nil {
		return false
	}
	at := ancestor.AsTree()
	for a := n.parent; a != nil; a = a.AsTree().parent {
		if a.AsTree() == at {
			return true
		}
	}
	return false
}

// FindFirstAncestor returns the first ancestor of the node with the
// given name, walking up to and including the root. It returns nil
// if there is no such ancestor.
func (n *NodeBase) FindFirstAncestor(name string) Node {
	return n.findAncestor(func(a *NodeBase) bool { return a.name == name })
}

// FindFirstAncestorOfClass returns the first ancestor of the node
// whose class is exactly the given class, or nil if there is none.
func (n *NodeBase) FindFirstAncestorOfClass(class string) Node {
	return n.findAncestor(func(a *NodeBase) bool { return a.classTag == class })
}

// FindFirstAncestorWhichIsA returns the first ancestor of the node for
// which [NodeBase.IsA] returns true for the given class, or nil if there is none.
func (n *NodeBase) FindFirstAncestorWhichIsA(class string) Node {
	return n.findAncestor(func(a *NodeBase) bool { return a.IsA(class) })
}

func (n *NodeBase) findAncestor(match func(a *NodeBase) bool) Node {
	for a := n.parent; a != nil; a = a.AsTree().parent {
		if match(a.AsTree()) {
			return a
		}
	}
	return nil
}

// GetFullName returns the names of the node and its ancestors
// from the root down, separated by periods.
func (n *NodeBase) GetFullName() string {
	names := []string{n.name}
	for a := n.parent; a != nil; a = a.AsTree().parent {
		names = append(names, a.AsTree().name)
	}
	slices.Reverse(names)
	return strings.Join(names, ".")
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return n.childrenByID.Len() > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return n.childrenByID.Len()
}

// GetChildren returns a snapshot of the children of the node, in the
// order they were added. Later changes to the tree are not reflected
// in the returned slice.
func (n *NodeBase) GetChildren() []Node {
	return n.childrenByID.Snapshot()
}

// GetDescendants returns all of the descendants of the node in
// pre-order: each child, followed by its descendants, followed
// by the next child.
func (n *NodeBase) GetDescendants() []Node {
	var res []Node
	n.appendDescendants(&res)
	return res
}

func (n *NodeBase) appendDescendants(res *[]Node) {
	for _, kid := range n.childrenByID.Values {
		*res = append(*res, kid)
		kid.AsTree().appendDescendants(res)
	}
}

// FindFirstChild returns the child with the given name, or nil if there
// is none. When several children share the name, it is the one most
// recently added or renamed. If recursive is true and there is no such
// child, the subtrees of the children are searched in order, depth-first.
func (n *NodeBase) FindFirstChild(name string, recursive ...bool) Node {
	if kid, ok := n.childrenByName[name]; ok {
		return kid
	}
	if !isRecursive(recursive) {
		return nil
	}
	for _, kid := range n.GetChildren() {
		if d := kid.AsTree().FindFirstChild(name, true); d != nil {
			return d
		}
	}
	return nil
}

// FindFirstChildByID returns the child with the given id, or nil if there
// is none. If recursive is true and there is no such child, the subtrees of
// the children are searched in order, depth-first.
func (n *NodeBase) FindFirstChildByID(id uint64, recursive ...bool) Node {
	if kid, ok := n.childrenByID.AtTry(id); ok {
		return kid
	}
	if !isRecursive(recursive) {
		return nil
	}
	for _, kid := range n.GetChildren() {
		if d := kid.AsTree().FindFirstChildByID(id, true); d != nil {
			return d
		}
	}
	return nil
}

// FindFirstChildOfClass returns the first child whose class is exactly
// the given class, or nil if there is none. See [NodeBase.FindFirstChild]
// for the meaning of recursive.
func (n *NodeBase) FindFirstChildOfClass(class string, recursive ...bool) Node {
	return n.findChild(func(k *NodeBase) bool { return k.classTag == class }, isRecursive(recursive))
}

// FindFirstChildWhichIsA returns the first child for which [NodeBase.IsA]
// returns true for the given class, or nil if there is none.
// See [NodeBase.FindFirstChild] for the meaning of recursive.
func (n *NodeBase) FindFirstChildWhichIsA(class string, recursive ...bool) Node {
	return n.findChild(func(k *NodeBase) bool { return k.IsA(class) }, isRecursive(recursive))
}

// FindFirstDescendant returns the first descendant in pre-order
// with the given name, or nil if there is none.
func (n *NodeBase) FindFirstDescendant(name string) Node {
	var found Node
	n.WalkDown(func(k Node) bool {
		if found != nil {
			return Break
		}
		if k.AsTree() != n && k.AsTree().name == name {
			found = k
			return Break
		}
		return Continue
	})
	return found
}

// findChild returns the first direct child that matches, and then, if
// recursive, the first match in the subtrees of the children in order.
func (n *NodeBase) findChild(match func(k *NodeBase) bool, recursive bool) Node {
	kids := n.GetChildren()
	for _, kid := range kids {
		if match(kid.AsTree()) {
			return kid
		}
	}
	if !recursive {
		return nil
	}
	for _, kid := range kids {
		if d := kid.AsTree().findChild(match, true); d != nil {
			return d
		}
	}
	return nil
}

func isRecursive(recursive []bool) bool {
	return len(recursive) > 0 && recursive[0]
}

// ClearAllChildren destroys all of the children of the node.
func (n *NodeBase) ClearAllChildren() {
	for _, kid := range n.GetChildren() {
		kid.Destroy()
	}
}
