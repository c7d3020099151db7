// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	assert.Equal(t, Vector2{4, 9}, v.Add(Vec2(5, 2)))
	assert.Equal(t, Vector2{-6, 5}, v.Sub(Vec2(5, 2)))
	assert.Equal(t, Vector2{-5, 14}, v.Mul(Vec2(5, 2)))
	assert.Equal(t, Vector2{-2, 14}, v.MulScalar(2))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, "(-1, 7)", v.String())
}

func TestVector2Rotate(t *testing.T) {
	assert.True(t, Vec2(1, 0).Rotate(90).IsEqualTol(Vec2(0, 1), 1e-6))
	assert.True(t, Vec2(1, 0).Rotate(180).IsEqualTol(Vec2(-1, 0), 1e-6))
	assert.True(t, Vec2(2, 1).RotateAround(Vec2(1, 1), 90).IsEqualTol(Vec2(1, 2), 1e-6))
	assert.Equal(t, Vec2(3, 4), Vec2(3, 4).Rotate(0))
}

func TestBox2(t *testing.T) {
	b := Box2FromPosSize(Vec2(10, 20), Vec2(30, 40))
	assert.Equal(t, B2(10, 20, 40, 60), b)
	assert.Equal(t, Vec2(30, 40), b.Size())
	assert.Equal(t, "[(10, 20) - (40, 60)]", b.String())
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
	assert.Equal(t, 1, Clamp(3, 0, 1))
}
