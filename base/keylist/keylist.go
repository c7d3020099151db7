// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist provides an insertion-ordered list of values
// with constant-time lookup by key.
package keylist

import (
	"slices"
)

// List is a list of Values in the order their keys were first set,
// indexed by key. The zero value is an empty list ready to use.
//
// Keys and Values are parallel slices that may be read directly,
// but must only be changed through the methods of the list.
type List[K comparable, V any] struct {
	Values []V
	Keys   []K

	// indexes maps each key to its position in Keys and Values.
	indexes map[K]int
}

// New returns a new empty [List].
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// Len returns the number of values in the list.
// A nil list has no values.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// Set sets the value for the given key. A new key is appended at the
// end; an existing key keeps its position and gets the new value.
func (kl *List[K, V]) Set(key K, val V) {
	if i, ok := kl.indexes[key]; ok {
		kl.Values[i] = val
		return
	}
	if kl.indexes == nil {
		kl.indexes = map[K]int{}
	}
	kl.indexes[key] = len(kl.Keys)
	kl.Keys = append(kl.Keys, key)
	kl.Values = append(kl.Values, val)
}

// At returns the value for the given key, or the zero value.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value for the given key and whether it is present.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if i, ok := kl.indexes[key]; ok {
		return kl.Values[i], true
	}
	var zero V
	return zero, false
}

// IndexByKey returns the position of the given key, or -1.
func (kl *List[K, V]) IndexByKey(key K) int {
	if i, ok := kl.indexes[key]; ok {
		return i
	}
	return -1
}

// DeleteByKey removes the given key and its value, keeping the order
// of the rest. It returns whether the key was present.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	i, ok := kl.indexes[key]
	if !ok {
		return false
	}
	delete(kl.indexes, key)
	kl.Keys = slices.Delete(kl.Keys, i, i+1)
	kl.Values = slices.Delete(kl.Values, i, i+1)
	for j := i; j < len(kl.Keys); j++ {
		kl.indexes[kl.Keys[j]] = j
	}
	return true
}

// Snapshot returns a copy of the values in order, or nil if there are none.
func (kl *List[K, V]) Snapshot() []V {
	if kl.Len() == 0 {
		return nil
	}
	return slices.Clone(kl.Values)
}

// Copy sets every entry of the given list on this list, in order.
// Entries only in this list are kept; call [List.Reset] first for an
// exact copy.
func (kl *List[K, V]) Copy(from *List[K, V]) {
	for i, k := range from.Keys {
		kl.Set(k, from.Values[i])
	}
}

// Reset removes every entry.
func (kl *List[K, V]) Reset() {
	kl.Keys = nil
	kl.Values = nil
	kl.indexes = nil
}
