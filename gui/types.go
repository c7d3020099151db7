// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"cogentcore.org/scene/math32"
)

// UDim is a one-dimensional value with a scale relative to the
// parent's size and a fixed pixel offset.
type UDim struct {
	Scale float32
	Pixel float32
}

// Resolve returns the value in pixels for the given parent size.
func (u UDim) Resolve(parent float32) float32 {
	return u.Scale*parent + u.Pixel
}

// UDim2 is a two-dimensional [UDim], used for the relative
// position and size of a [GuiObject].
type UDim2 struct {
	X UDim
	Y UDim
}

// NewUDim2 returns a new [UDim2] with the given scales and pixel offsets.
func NewUDim2(scaleX, pixelX, scaleY, pixelY float32) UDim2 {
	return UDim2{UDim{scaleX, pixelX}, UDim{scaleY, pixelY}}
}

// FromScale returns a new [UDim2] with the given scales and no pixel offsets.
func FromScale(x, y float32) UDim2 {
	return NewUDim2(x, 0, y, 0)
}

// FromPixel returns a new [UDim2] with the given pixel offsets and no scales.
func FromPixel(x, y float32) UDim2 {
	return NewUDim2(0, x, 0, y)
}

// Resolve returns the value in pixels for the given parent size.
func (u UDim2) Resolve(parent math32.Vector2) math32.Vector2 {
	return math32.Vec2(u.X.Resolve(parent.X), u.Y.Resolve(parent.Y))
}

func (u UDim2) String() string {
	return fmt.Sprintf("{%g, %g}, {%g, %g}", u.X.Scale, u.X.Pixel, u.Y.Scale, u.Y.Pixel)
}

// Color3 is an RGB color with components from 0 to 1. It is written as
// a hex string like "#ff8000" when marshaled as text.
type Color3 struct {
	R float32
	G float32
	B float32
}

// Color3FromRGB returns a new [Color3] from 0 to 255 components.
func Color3FromRGB(r, g, b uint8) Color3 {
	return Color3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// Color3FromHSV returns a new [Color3] from the given hue in degrees
// and saturation and value from 0 to 1.
func Color3FromHSV(h, s, v float32) Color3 {
	return fromColorful(colorful.Hsv(float64(h), float64(s), float64(v)))
}

// Color3FromHex returns a new [Color3] from the given hex string,
// which must be in the "#rrggbb" or "#rgb" format.
func Color3FromHex(hex string) (Color3, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color3{}, fmt.Errorf("gui.Color3FromHex: %w", err)
	}
	return fromColorful(c), nil
}

func fromColorful(c colorful.Color) Color3 {
	return Color3{float32(c.R), float32(c.G), float32(c.B)}
}

func (c Color3) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color3) Hex() string {
	return c.colorful().Clamped().Hex()
}

// RGB255 returns the components of the color from 0 to 255.
func (c Color3) RGB255() (r, g, b uint8) {
	return c.colorful().Clamped().RGB255()
}

// Lerp returns the color linearly interpolated in RGB between
// this color and the other color by t from 0 to 1.
func (c Color3) Lerp(other Color3, t float32) Color3 {
	return fromColorful(c.colorful().BlendRgb(other.colorful(), float64(t)))
}

func (c Color3) String() string {
	return c.Hex()
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color3) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color3) UnmarshalText(text []byte) error {
	nc, err := Color3FromHex(string(text))
	if err != nil {
		return err
	}
	*c = nc
	return nil
}

// BorderMode is how the border of a [GuiObject] is laid out
// relative to its bounds.
type BorderMode string

const (
	// BorderOutline draws the border outside of the bounds.
	BorderOutline BorderMode = "Outline"

	// BorderMiddle centers the border on the edge of the bounds.
	BorderMiddle BorderMode = "Middle"

	// BorderInset draws the border inside of the bounds.
	BorderInset BorderMode = "Inset"
)

// rect returns the rectangle that a border of the given width
// is stroked along for the given bounds.
func (m BorderMode) rect(bounds math32.Box2, width float32) math32.Box2 {
	var d float32
	switch m {
	case BorderOutline:
		d = width / 2
	case BorderInset:
		d = -width / 2
	}
	return math32.Box2{
		Min: bounds.Min.Sub(math32.Vector2Scalar(d)),
		Max: bounds.Max.Add(math32.Vector2Scalar(d)),
	}
}

// AutomaticSize is the axes along which a [GuiObject] is meant to be
// resized to fit its content.
type AutomaticSize string

const (
	AutomaticSizeNone AutomaticSize = "None"
	AutomaticSizeX    AutomaticSize = "X"
	AutomaticSizeY    AutomaticSize = "Y"
	AutomaticSizeXY   AutomaticSize = "XY"
)

// SizeConstraint is which axes of the parent the scale components
// of the Size of a [GuiObject] are relative to.
type SizeConstraint string

const (
	// RelativeXY scales the width by the parent width
	// and the height by the parent height.
	RelativeXY SizeConstraint = "RelativeXY"

	// RelativeXX scales both by the parent width.
	RelativeXX SizeConstraint = "RelativeXX"

	// RelativeYY scales both by the parent height.
	RelativeYY SizeConstraint = "RelativeYY"
)

// basis returns the sizes that the scale components of a size
// are multiplied by, for the given parent size.
func (c SizeConstraint) basis(parent math32.Vector2) math32.Vector2 {
	switch c {
	case RelativeXX:
		return math32.Vec2(parent.X, parent.X)
	case RelativeYY:
		return math32.Vec2(parent.Y, parent.Y)
	}
	return parent
}
