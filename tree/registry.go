// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"maps"
	"slices"
)

// InstanceClass is the class of a plain [NodeBase].
// Every class inherits from it.
const InstanceClass = "Instance"

// Class is a registered class of nodes.
type Class struct {

	// Name is the unique class tag.
	Name string

	// Base is the name of the class this class inherits from.
	// Only [InstanceClass] has no base.
	Base string

	// New returns a new uninitialized node of the class with all of its
	// properties set to their defaults. A class with no New is abstract:
	// it can be inherited from but not constructed.
	New func() Node
}

// classes is the registry of all classes, keyed by name.
// It is only written during package initialization.
var classes = map[string]*Class{}

func init() {
	Register(&Class{Name: InstanceClass, New: func() Node { return &NodeBase{} }})
}

// Register adds the given class to the registry and returns it. It is
// typically called from package init functions. The base defaults to
// [InstanceClass]. It panics if the name is empty or already registered.
func Register(c *Class) *Class {
	if c.Name == "" {
		panic("tree.Register: class name is empty")
	}
	if _, has := classes[c.Name]; has {
		panic(fmt.Sprintf("tree.Register: class %q is already registered", c.Name))
	}
	if c.Base == "" && c.Name != InstanceClass {
		c.Base = InstanceClass
	}
	classes[c.Name] = c
	return c
}

// ClassByName returns the registered class with the given name,
// or nil if there is none.
func ClassByName(name string) *Class {
	return classes[name]
}

// Classes returns the names of all registered classes in sorted order.
func Classes() []string {
	return slices.Sorted(maps.Keys(classes))
}

// Inherits returns whether the given class is the given base class or
// inherits from it, directly or indirectly. Unregistered classes only
// inherit from themselves.
func Inherits(class, base string) bool {
	for cur := class; cur != ""; {
		if cur == base {
			return true
		}
		c := classes[cur]
		if c == nil {
			return false
		}
		cur = c.Base
	}
	return false
}

// New returns a new initialized node of the given class with the given
// name. An empty name defaults to the class name. It returns an error
// wrapping [ErrUnknownClass] or [ErrAbstractClass] if the class can
// not be constructed.
func New(class, name string) (Node, error) {
	c := classes[class]
	if c == nil {
		return nil, fmt.Errorf("tree.New: %w: %q", ErrUnknownClass, class)
	}
	if c.New == nil {
		return nil, fmt.Errorf("tree.New: %w: %q", ErrAbstractClass, class)
	}
	if name == "" {
		name = class
	}
	n := c.New()
	InitNode(n, class, name)
	return n, nil
}

// MustNew is like [New] but panics on error.
func MustNew(class, name string) Node {
	n, err := New(class, name)
	if err != nil {
		panic(err)
	}
	return n
}

// NewAs is like [New] but returns the node as the given type.
// It returns an error if the class makes nodes of another type.
func NewAs[T Node](class, name string) (T, error) {
	var zero T
	n, err := New(class, name)
	if err != nil {
		return zero, err
	}
	t, ok := n.(T)
	if !ok {
		return zero, fmt.Errorf("tree.NewAs: class %q makes %T, not %T", class, n, zero)
	}
	return t, nil
}
