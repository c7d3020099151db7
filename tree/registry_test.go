// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/scene/tree"
	"cogentcore.org/scene/tree/testdata"
)

func TestNew(t *testing.T) {
	n, err := New(testdata.PartClass, "wheel")
	require.NoError(t, err)
	p, ok := n.(*testdata.Part)
	require.True(t, ok)
	assert.Equal(t, "wheel", p.Name())
	assert.Equal(t, testdata.PartClass, p.ClassName())
	assert.Equal(t, 1, p.Size)

	n, err = New(InstanceClass, "")
	require.NoError(t, err)
	assert.Equal(t, InstanceClass, n.AsTree().Name())

	_, err = New("NoSuchClass", "x")
	assert.ErrorIs(t, err, ErrUnknownClass)
	_, err = New(testdata.BasePartClass, "x")
	assert.ErrorIs(t, err, ErrAbstractClass)
	assert.Panics(t, func() { MustNew("NoSuchClass", "x") })

	_, err = NewAs[*lockedNode](testdata.PartClass, "x")
	assert.Error(t, err)
}

func TestInherits(t *testing.T) {
	assert.True(t, Inherits(testdata.PartClass, testdata.PartClass))
	assert.True(t, Inherits(testdata.PartClass, testdata.BasePartClass))
	assert.True(t, Inherits(testdata.PartClass, InstanceClass))
	assert.False(t, Inherits(testdata.BasePartClass, testdata.PartClass))
	assert.False(t, Inherits("NoSuchClass", InstanceClass))

	p := testdata.NewPart("p")
	assert.True(t, p.IsA(testdata.BasePartClass))
	assert.False(t, NewNodeBase("n").IsA(testdata.PartClass))
}

func TestRegister(t *testing.T) {
	assert.Contains(t, Classes(), testdata.PartClass)
	assert.Contains(t, Classes(), InstanceClass)
	c := ClassByName(testdata.BasePartClass)
	require.NotNil(t, c)
	assert.Equal(t, InstanceClass, c.Base)
	assert.Nil(t, c.New)
	assert.Nil(t, ClassByName("NoSuchClass"))

	assert.Panics(t, func() { Register(&Class{Name: testdata.PartClass}) })
	assert.Panics(t, func() { Register(&Class{}) })
}
