// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	if !fun(n.this) {
		return false
	}
	return n.WalkUpParent(fun)
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself), sequentially in the current goroutine. It stops walking if
// the function returns [Break] and keeps walking if it returns [Continue]. It
// returns whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	for cur := n.parent; cur != nil; cur = cur.AsTree().parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// WalkDown calls the given function on the node and all of its descendants
// in pre-order, sequentially in the current goroutine. It stops walking the
// current branch of the tree if the function returns [Break] and keeps walking
// if it returns [Continue]. Each node's children are snapshotted before they
// are visited, and destroyed nodes are skipped, so the function may safely
// destroy or move nodes.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.this == nil || n.destroyed {
		return
	}
	if !fun(n.this) {
		return
	}
	for _, kid := range n.GetChildren() {
		kid.AsTree().WalkDown(fun)
	}
}

// WalkDownPost calls shouldContinue on each node in pre-order to test if
// processing should proceed into its children (if it returns [Break] then
// that branch of the tree is not further processed), and then calls the
// given function after all of a node's children have been visited, so
// the function is called for deeper nodes first.
func (n *NodeBase) WalkDownPost(shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n.this == nil || n.destroyed {
		return
	}
	if !shouldContinue(n.this) {
		return
	}
	for _, kid := range n.GetChildren() {
		kid.AsTree().WalkDownPost(shouldContinue, fun)
	}
	fun(n.this)
}

// Last returns the last node in the tree under the given node in
// pre-order, or the node itself if it has no children.
func Last(n Node) Node {
	nb := n.AsTree()
	for nb.HasChildren() {
		nb = nb.childrenByID.Values[nb.NumChildren()-1].AsTree()
	}
	return nb.this
}

// NextSibling returns the next sibling of this node in its parent's
// children, or nil if it has none.
func NextSibling(n Node) Node {
	nb := n.AsTree()
	if nb.parent == nil {
		return nil
	}
	sibs := &nb.parent.AsTree().childrenByID
	idx := sibs.IndexByKey(nb.id)
	if idx < 0 || idx >= sibs.Len()-1 {
		return nil
	}
	return sibs.Values[idx+1]
}
