// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/signal"
	. "cogentcore.org/scene/tree"
	"cogentcore.org/scene/tree/testdata"
)

// lockedNode vetoes destruction.
type lockedNode struct {
	NodeBase
}

func (l *lockedNode) Destroy() {}

func newLocked(name string) *lockedNode {
	l := &lockedNode{}
	InitNode(l, InstanceClass, name)
	return l
}

func TestNodeSetParent(t *testing.T) {
	a := NewNodeBase("a")
	b := NewNodeBase("b")
	require.NoError(t, b.SetParent(a))

	assert.Equal(t, []Node{b}, a.GetChildren())
	assert.Equal(t, Node(a), b.Parent())
	assert.True(t, a.IsAncestorOf(b))
	assert.True(t, b.IsDescendantOf(a))
	assert.False(t, b.IsAncestorOf(a))

	// setting the same parent again does nothing
	require.NoError(t, b.SetParent(a))
	assert.Len(t, a.GetChildren(), 1)
}

func TestNodeReparent(t *testing.T) {
	a1 := NewNodeBase("a1")
	a2 := NewNodeBase("a2")
	b := NewNodeBase("b")
	require.NoError(t, b.SetParent(a1))
	require.NoError(t, b.SetParent(a2))

	assert.Empty(t, a1.GetChildren())
	assert.Nil(t, a1.FindFirstChild("b"))
	assert.Equal(t, []Node{b}, a2.GetChildren())
	assert.Equal(t, Node(b), a2.FindFirstChild("b"))

	require.NoError(t, b.SetParent(nil))
	assert.Nil(t, b.Parent())
	assert.Empty(t, a2.GetChildren())
	assert.True(t, IsRoot(b))
}

func TestNodeAddChild(t *testing.T) {
	parent := testdata.NewPart("parent")
	child := testdata.NewPart("child")
	require.NoError(t, parent.AddChild(child))
	assert.Equal(t, 1, parent.NumChildren())
	assert.Equal(t, Node(parent), child.Parent())
	assert.Equal(t, "parent.child", child.GetFullName())
	assert.Equal(t, "parent.child", child.String())
	assert.Equal(t, []Node{parent}, child.ParentChanges)
}

func TestNodeSetParentErrors(t *testing.T) {
	a := NewNodeBase("a")
	b := NewNodeBase("b")
	c := NewNodeBase("c")
	require.NoError(t, b.SetParent(a))
	require.NoError(t, c.SetParent(b))

	assert.ErrorIs(t, a.SetParent(a), ErrCycle)
	assert.ErrorIs(t, a.SetParent(c), ErrCycle)
	assert.Nil(t, a.Parent())
	assert.Equal(t, Node(b), c.Parent())

	d := NewNodeBase("d")
	d.Destroy()
	assert.ErrorIs(t, d.SetParent(a), ErrDestroyed)
	assert.ErrorIs(t, NewNodeBase("e").SetParent(d), ErrDestroyed)

	raw := &NodeBase{}
	assert.ErrorIs(t, raw.SetParent(a), ErrNotInitialized)
	assert.ErrorIs(t, a.AddChild(raw), ErrNotInitialized)
	assert.Equal(t, 1, a.NumChildren())
}

func TestNodeIDs(t *testing.T) {
	a := NewNodeBase("a")
	b := NewNodeBase("b")
	assert.Less(t, a.ID(), b.ID())
	assert.Equal(t, InstanceClass, a.ClassName())
}

func TestNodeNameCollision(t *testing.T) {
	parent := NewNodeBase("parent")
	foo1 := NewNodeBase("Foo")
	foo2 := NewNodeBase("Foo")
	require.NoError(t, foo1.SetParent(parent))
	require.NoError(t, foo2.SetParent(parent))

	assert.Equal(t, Node(foo2), parent.FindFirstChild("Foo"))
	assert.Equal(t, []Node{foo1, foo2}, parent.GetChildren())

	// renaming makes the renamed child win
	foo1.SetName("Bar")
	assert.Equal(t, Node(foo2), parent.FindFirstChild("Foo"))
	foo1.SetName("Foo")
	assert.Equal(t, Node(foo1), parent.FindFirstChild("Foo"))

	// removing the winner rebinds the name to the remaining child
	require.NoError(t, foo1.SetParent(nil))
	assert.Equal(t, Node(foo2), parent.FindFirstChild("Foo"))
	foo2.SetName("Baz")
	assert.Nil(t, parent.FindFirstChild("Foo"))
	assert.Equal(t, Node(foo2), parent.FindFirstChild("Baz"))
}

func TestNodeScenario(t *testing.T) {
	r := NewNodeBase("R")
	c1 := NewNodeBase("Panel")
	require.NoError(t, c1.SetParent(r))
	c2 := NewNodeBase("Panel")
	require.NoError(t, c2.SetParent(r))
	c1.AddTag("ui")
	c2.AddTag("ui")

	assert.Equal(t, r.ID()+1, c1.ID())
	assert.Equal(t, r.ID()+2, c2.ID())
	assert.Equal(t, []Node{c1, c2}, r.GetChildren())
	assert.Equal(t, Node(c2), r.FindFirstChild("Panel"))
	assert.Equal(t, Node(c1), r.FindFirstChildByID(c1.ID()))

	r.Destroy()
	assert.Empty(t, c1.GetChildren())
	assert.Empty(t, c2.GetChildren())
	assert.Empty(t, c1.GetTags())
	assert.Empty(t, c2.GetTags())
	assert.Empty(t, r.GetChildren())
	assert.True(t, c1.IsDestroyed())
	assert.True(t, c2.IsDestroyed())
}

func TestNodeSignalOrder(t *testing.T) {
	g := NewNodeBase("g")
	a := NewNodeBase("a")
	b := NewNodeBase("b")
	n := NewNodeBase("n")
	k := NewNodeBase("k")
	require.NoError(t, a.SetParent(g))
	require.NoError(t, b.SetParent(g))
	require.NoError(t, n.SetParent(a))
	require.NoError(t, k.SetParent(n))

	var events []string
	a.ChildRemoved().Connect(func(c Node) {
		// both indexes are committed before any signal fires
		assert.Nil(t, a.FindFirstChildByID(n.ID()))
		assert.Equal(t, Node(n), b.FindFirstChildByID(n.ID()))
		events = append(events, "a.ChildRemoved")
	})
	b.ChildAdded().Connect(func(c Node) { events = append(events, "b.ChildAdded") })
	b.DescendantAdded().Connect(func(c Node) { events = append(events, "b.DescendantAdded") })
	g.DescendantAdded().Connect(func(c Node) {
		assert.Equal(t, Node(n), c)
		events = append(events, "g.DescendantAdded")
	})
	g.ChildAdded().Connect(func(c Node) { events = append(events, "g.ChildAdded") })
	n.AncestryChanged().Connect(func(ac AncestryChange) {
		assert.Equal(t, Node(n), ac.Child)
		assert.Equal(t, Node(b), ac.Parent)
		events = append(events, "n.AncestryChanged")
	})
	k.AncestryChanged().Connect(func(ac AncestryChange) {
		assert.Equal(t, Node(n), ac.Child)
		events = append(events, "k.AncestryChanged")
	})
	n.GetPropertyChangedSignal("Parent").Connect(func(signal.Void) { events = append(events, "n.Parent") })
	n.Changed().Connect(func(name string) { events = append(events, "n.Changed:"+name) })

	require.NoError(t, n.SetParent(b))
	assert.Equal(t, []string{
		"a.ChildRemoved",
		"b.ChildAdded",
		"b.DescendantAdded",
		"g.DescendantAdded",
		"n.AncestryChanged",
		"k.AncestryChanged",
		"n.Parent",
		"n.Changed:Parent",
	}, events)
}

func TestNodeFind(t *testing.T) {
	root := NewNodeBase("root")
	a := testdata.NewPart("a")
	b := NewNodeBase("b")
	c := testdata.NewPart("c")
	require.NoError(t, a.SetParent(root))
	require.NoError(t, b.SetParent(root))
	require.NoError(t, c.SetParent(b))

	assert.Nil(t, root.FindFirstChild("c"))
	assert.Equal(t, Node(c), root.FindFirstChild("c", true))
	assert.Nil(t, root.FindFirstChildByID(c.ID()))
	assert.Equal(t, Node(c), root.FindFirstChildByID(c.ID(), true))
	assert.Equal(t, Node(c), root.FindFirstDescendant("c"))
	assert.Nil(t, root.FindFirstDescendant("root"))

	assert.Equal(t, Node(a), root.FindFirstChildOfClass(testdata.PartClass))
	assert.Nil(t, root.FindFirstChildOfClass(testdata.BasePartClass))
	assert.Equal(t, Node(a), root.FindFirstChildWhichIsA(testdata.BasePartClass))
	assert.Equal(t, Node(c), b.FindFirstChildWhichIsA(InstanceClass))

	assert.Equal(t, Node(b), c.FindFirstAncestor("b"))
	assert.Equal(t, Node(root), c.FindFirstAncestor("root"))
	assert.Nil(t, c.FindFirstAncestor("a"))
	assert.Equal(t, Node(b), c.FindFirstAncestorOfClass(InstanceClass))
	assert.Nil(t, c.FindFirstAncestorWhichIsA(testdata.PartClass))

	assert.Equal(t, "root.b.c", c.GetFullName())
	assert.Equal(t, []Node{a, b, c}, root.GetDescendants())
	assert.Equal(t, Node(root), Root(c))
}

func TestNodeChildrenSnapshot(t *testing.T) {
	root := NewNodeBase("root")
	a := NewNodeBase("a")
	require.NoError(t, a.SetParent(root))
	kids := root.GetChildren()
	require.NoError(t, NewNodeBase("b").SetParent(root))
	assert.Len(t, kids, 1)
	assert.Equal(t, 2, root.NumChildren())
	assert.Empty(t, NewNodeBase("leaf").GetChildren())
}

func TestNodeDestroy(t *testing.T) {
	root := NewNodeBase("root")
	a := NewNodeBase("a")
	b := NewNodeBase("b")
	c := NewNodeBase("c")
	require.NoError(t, a.SetParent(root))
	require.NoError(t, b.SetParent(a))
	require.NoError(t, c.SetParent(root))
	a.AddTag("x")
	a.SetAttribute("k", 1)

	var removed []Node
	root.ChildRemoved().Connect(func(kid Node) { removed = append(removed, kid) })
	destroying := 0
	a.Destroying().Connect(func(signal.Void) {
		destroying++
		a.Destroy() // re-entry is ignored
	})
	changed := 0
	a.Changed().Connect(func(string) { changed++ })

	a.Destroy()
	a.Destroy()
	assert.Equal(t, 1, destroying)
	assert.True(t, a.IsDestroyed())
	assert.True(t, b.IsDestroyed())
	assert.False(t, c.IsDestroyed())
	assert.Nil(t, a.Parent())
	assert.Equal(t, []Node{a}, removed)
	assert.Equal(t, []Node{c}, root.GetChildren())
	assert.Empty(t, a.GetChildren())
	assert.Empty(t, a.GetTags())
	assert.Nil(t, a.Attribute("k"))
	assert.Equal(t, 0, a.Changed().Len())
	assert.True(t, a.Changed().Destroyed())

	// signals of destroyed nodes are inert
	a.SetName("renamed")
	assert.Equal(t, 1, changed)
	s := a.GetPropertyChangedSignal("Name")
	assert.True(t, s.Destroyed())
	assert.Same(t, s, a.GetPropertyChangedSignal("Name"))
	as := a.GetAttributeChangedSignal("k")
	assert.True(t, as.Destroyed())
	assert.Same(t, as, a.GetAttributeChangedSignal("k"))
}

func TestSignalMemoizedAcrossDestroy(t *testing.T) {
	n := NewNodeBase("n")
	ps := n.GetPropertyChangedSignal("Name")
	as := n.GetAttributeChangedSignal("hp")
	n.Destroy()
	assert.Same(t, ps, n.GetPropertyChangedSignal("Name"))
	assert.Same(t, as, n.GetAttributeChangedSignal("hp"))
	assert.True(t, ps.Destroyed())
	assert.True(t, as.Destroyed())
}

func TestNodeDestroyCascade(t *testing.T) {
	root := NewNodeBase("root")
	var all []*NodeBase
	parent := root
	for range 4 {
		kid := NewNodeBase("kid")
		require.NoError(t, kid.SetParent(parent))
		sib := NewNodeBase("sib")
		require.NoError(t, sib.SetParent(parent))
		all = append(all, kid, sib)
		parent = kid
	}
	root.Destroy()
	assert.Empty(t, root.GetChildren())
	for _, n := range all {
		assert.True(t, n.IsDestroyed())
		assert.Empty(t, n.GetChildren())
		assert.Nil(t, n.Parent())
	}
}

func TestNodeDestroyVeto(t *testing.T) {
	root := NewNodeBase("root")
	locked := newLocked("locked")
	plain := NewNodeBase("plain")
	require.NoError(t, locked.SetParent(root))
	require.NoError(t, plain.SetParent(root))

	locked.Destroy()
	assert.False(t, locked.IsDestroyed())
	assert.Equal(t, Node(root), locked.Parent())

	root.Destroy()
	assert.True(t, root.IsDestroyed())
	assert.True(t, plain.IsDestroyed())
	assert.False(t, locked.IsDestroyed())
	assert.Nil(t, locked.Parent())
	assert.Empty(t, root.GetChildren())
}

func TestNodeClearAllChildren(t *testing.T) {
	root := NewNodeBase("root")
	a := NewNodeBase("a")
	require.NoError(t, a.SetParent(root))
	require.NoError(t, NewNodeBase("b").SetParent(root))
	root.ClearAllChildren()
	assert.False(t, root.HasChildren())
	assert.True(t, a.IsDestroyed())
	assert.False(t, root.IsDestroyed())
}

func TestNodeSignalMemoization(t *testing.T) {
	n := testdata.NewPart("p")
	s1 := n.GetPropertyChangedSignal("Size")
	s2 := n.GetPropertyChangedSignal("Size")
	assert.Same(t, s1, s2)
	assert.NotSame(t, s1, n.GetAttributeChangedSignal("Size"))

	fired := 0
	s1.Connect(func(signal.Void) { fired++ })
	s2.Fire(signal.Void{})
	assert.Equal(t, 1, fired)

	n.SetSize(5)
	assert.Equal(t, 2, fired)
	n.SetSize(5)
	assert.Equal(t, 2, fired)
}

func TestNodeClone(t *testing.T) {
	p := testdata.NewPart("p")
	p.SetSize(7).SetColor("red")
	p.Cache = "cached"
	p.AddTag("t")
	p.SetAttribute("health", 10)
	kept := testdata.NewPart("kept")
	kept.SetSize(3)
	dropped := NewNodeBase("dropped")
	dropped.SetArchivable(false)
	require.NoError(t, NewNodeBase("under-dropped").SetParent(dropped))
	require.NoError(t, kept.SetParent(p))
	require.NoError(t, dropped.SetParent(p))

	changed := 0
	p.Changed().Connect(func(string) { changed++ })

	c := CloneOf(p)
	require.NotNil(t, c)
	assert.NotEqual(t, p.ID(), c.ID())
	assert.Equal(t, "p", c.Name())
	assert.Equal(t, testdata.PartClass, c.ClassName())
	assert.Equal(t, 7, c.Size)
	assert.Equal(t, "red", c.Color)
	assert.Equal(t, "cached", c.Cache)
	assert.True(t, c.HasTag("t"))
	assert.Equal(t, 10, c.Attribute("health"))
	assert.Nil(t, c.Parent())

	require.Equal(t, 1, c.NumChildren())
	kc, ok := c.GetChildren()[0].(*testdata.Part)
	require.True(t, ok)
	assert.NotSame(t, kept, kc)
	assert.Equal(t, 3, kc.Size)
	assert.Equal(t, Node(c), kc.Parent())

	// the clone has none of the handlers of the original
	c.SetSize(8)
	assert.Equal(t, 0, changed)
	assert.Equal(t, 7, p.Size)

	assert.Nil(t, dropped.Clone())
	p.SetArchivable(false)
	assert.Nil(t, p.Clone())
	assert.Nil(t, CloneOf(p))
}

func TestNodeTags(t *testing.T) {
	n := NewNodeBase("n")
	changed := 0
	n.Changed().Connect(func(string) { changed++ })
	n.AddTag("b")
	n.AddTag("a")
	n.AddTag("a")
	assert.True(t, n.HasTag("a"))
	assert.Equal(t, []string{"a", "b"}, n.GetTags())
	n.RemoveTag("a")
	n.RemoveTag("missing")
	assert.False(t, n.HasTag("a"))
	assert.Equal(t, []string{"b"}, n.GetTags())
	assert.Equal(t, 0, changed)
}

func TestNodeAttributes(t *testing.T) {
	n := NewNodeBase("n")
	var events []string
	n.GetAttributeChangedSignal("hp").Connect(func(signal.Void) { events = append(events, "hp") })
	n.AttributeChanged().Connect(func(name string) { events = append(events, "any:"+name) })

	n.SetAttribute("hp", 10)
	n.SetAttribute("hp", 10)
	n.SetAttribute("team", "red")
	assert.Equal(t, []string{"hp", "any:hp", "any:team"}, events)
	assert.Equal(t, 10, n.Attribute("hp"))
	assert.Equal(t, map[string]any{"hp": 10, "team": "red"}, n.Attributes())
	assert.Equal(t, []string{"hp", "team"}, n.AttributeNames())

	events = nil
	n.SetAttribute("list", []int{1})
	n.SetAttribute("list", []int{1})
	assert.Equal(t, []string{"any:list", "any:list"}, events)

	events = nil
	n.SetAttribute("hp", nil)
	n.SetAttribute("missing", nil)
	assert.Equal(t, []string{"hp", "any:hp"}, events)
	assert.Nil(t, n.Attribute("hp"))
	assert.Equal(t, []string{"team", "list"}, n.AttributeNames())
}

func TestNodeBaseProperties(t *testing.T) {
	n := NewNodeBase("n")
	var names []string
	n.Changed().Connect(func(name string) { names = append(names, name) })
	n.SetName("m")
	n.SetName("m")
	n.SetArchivable(false)
	n.SetArchivable(false)
	assert.Equal(t, []string{"Name", "Archivable"}, names)
	assert.False(t, n.Archivable())
}
