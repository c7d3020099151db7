// Copyright (c) 2024, Cogent Core. All rights reserved.
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

func TestPropertyNames(t *testing.T) {
	p := testdata.NewPart("p")
	assert.Equal(t, []string{"Name", "Archivable", "Size", "Color", "Weight"}, PropertyNames(p))
	assert.Equal(t, []string{"Name", "Archivable"}, NewNodeBase("n").PropertyNames())
}

func TestPropertyValue(t *testing.T) {
	parent := NewNodeBase("parent")
	p := testdata.NewPart("p")
	require.NoError(t, p.SetParent(parent))

	v, err := PropertyValue(p, "Size")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = p.PropertyValue("Name")
	require.NoError(t, err)
	assert.Equal(t, "p", v)
	v, err = p.PropertyValue("Parent")
	require.NoError(t, err)
	assert.Equal(t, Node(parent), v)
	v, err = p.PropertyValue("ClassName")
	require.NoError(t, err)
	assert.Equal(t, testdata.PartClass, v)

	_, err = p.PropertyValue("Cache")
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestSetPropertyValue(t *testing.T) {
	p := testdata.NewPart("p")
	var names []string
	p.Changed().Connect(func(name string) { names = append(names, name) })
	sizeChanged := 0
	p.GetPropertyChangedSignal("Size").Connect(func(signal.Void) { sizeChanged++ })

	require.NoError(t, SetPropertyValue(p, "Size", 3.0))
	assert.Equal(t, 3, p.Size)
	require.NoError(t, SetPropertyValue(p, "Size", int64(3)))
	require.NoError(t, p.SetPropertyValue("Weight", 2))
	assert.Equal(t, float32(2), p.Weight)
	require.NoError(t, p.SetPropertyValue("Name", "q"))
	require.NoError(t, p.SetPropertyValue("Archivable", false))
	assert.Equal(t, []string{"Size", "Weight", "Name", "Archivable"}, names)
	assert.Equal(t, 1, sizeChanged)

	assert.Error(t, p.SetPropertyValue("Size", "big"))
	assert.Error(t, p.SetPropertyValue("Size", 1.5))
	assert.Error(t, p.SetPropertyValue("Weight", 1e300))
	assert.Equal(t, 3, p.Size)
	assert.Equal(t, float32(2), p.Weight)
	assert.Error(t, p.SetPropertyValue("Name", 1))
	assert.Error(t, p.SetPropertyValue("ClassName", "Other"))
	assert.ErrorIs(t, p.SetPropertyValue("Cache", "x"), ErrUnknownProperty)
	assert.ErrorIs(t, p.SetPropertyValue("Missing", 1), ErrUnknownProperty)

	parent := NewNodeBase("parent")
	require.NoError(t, p.SetPropertyValue("Parent", parent))
	assert.Equal(t, Node(parent), p.Parent())
	require.NoError(t, p.SetPropertyValue("Parent", nil))
	assert.Nil(t, p.Parent())
}

func TestPropertyDefaults(t *testing.T) {
	p := testdata.NewPart("")
	assert.Equal(t, testdata.PartClass, p.Name())
	for _, name := range PropertyNames(p) {
		assert.False(t, IsPropertyModified(p, name), name)
	}

	p.SetSize(4).SetColor("blue")
	p.SetName("renamed")
	p.SetArchivable(false)
	assert.True(t, p.IsPropertyModified("Size"))
	assert.True(t, p.IsPropertyModified("Color"))
	assert.True(t, p.IsPropertyModified("Name"))
	assert.True(t, p.IsPropertyModified("Archivable"))
	assert.False(t, p.IsPropertyModified("Weight"))
	assert.False(t, p.IsPropertyModified("Missing"))

	for _, name := range PropertyNames(p) {
		require.NoError(t, p.ResetPropertyToDefault(name))
	}
	assert.Equal(t, 1, p.Size)
	assert.Equal(t, "gray", p.Color)
	assert.Equal(t, testdata.PartClass, p.Name())
	assert.True(t, p.Archivable())
	assert.ErrorIs(t, p.ResetPropertyToDefault("Missing"), ErrUnknownProperty)
}
