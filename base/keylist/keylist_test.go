// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	kl := New[uint64, string]()
	kl.Set(3, "c")
	kl.Set(1, "a")
	kl.Set(2, "b")
	assert.Equal(t, 3, kl.Len())
	assert.Equal(t, []string{"c", "a", "b"}, kl.Values)
	assert.Equal(t, "a", kl.At(1))

	kl.Set(1, "A")
	assert.Equal(t, []string{"c", "A", "b"}, kl.Values)

	assert.True(t, kl.DeleteByKey(3))
	assert.False(t, kl.DeleteByKey(3))
	assert.Equal(t, []uint64{1, 2}, kl.Keys)
	assert.Equal(t, 1, kl.IndexByKey(2))
	assert.Equal(t, -1, kl.IndexByKey(3))
	assert.Equal(t, "b", kl.At(2))

	_, ok := kl.AtTry(3)
	assert.False(t, ok)
	assert.Equal(t, "", kl.At(3))
}

func TestZeroValue(t *testing.T) {
	var kl List[string, int]
	assert.Equal(t, 0, kl.Len())
	assert.Nil(t, kl.Snapshot())
	_, ok := kl.AtTry("x")
	assert.False(t, ok)
	kl.Set("x", 1)
	assert.Equal(t, 1, kl.At("x"))
}

func TestSnapshot(t *testing.T) {
	kl := New[string, int]()
	kl.Set("a", 1)
	kl.Set("b", 2)
	snap := kl.Snapshot()
	kl.DeleteByKey("a")
	assert.Equal(t, []int{1, 2}, snap)
	assert.Equal(t, []int{2}, kl.Values)

	kl.Reset()
	assert.Equal(t, 0, kl.Len())
}

func TestCopy(t *testing.T) {
	a := New[string, int]()
	a.Set("x", 1)
	a.Set("y", 2)
	b := New[string, int]()
	b.Set("y", 20)
	b.Set("z", 30)
	b.Copy(a)
	assert.Equal(t, []string{"y", "z", "x"}, b.Keys)
	assert.Equal(t, []int{2, 30, 1}, b.Values)
}
