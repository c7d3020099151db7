// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Box2 is an axis-aligned rectangle in pixels, from its top-left
// corner Min to its bottom-right corner Max.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vector2{x0, y0}, Vector2{x1, y1}}
}

// Box2FromPosSize returns a new [Box2] with the given position and size.
func Box2FromPosSize(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// Size returns the size of the box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}
