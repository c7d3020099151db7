// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"cogentcore.org/scene/gui"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/tree"
)

// Build constructs the tree described by the given document using the
// class registry. Properties are decoded into the types of the node's
// property fields: colors may be given as hex strings, and [gui.UDim2]
// and [math32.Vector2] values as lists of numbers in addition to maps.
func Build(d *Document) (tree.Node, error) {
	n, err := tree.New(d.Class, d.Name)
	if err != nil {
		return nil, fmt.Errorf("scene.Build: %w", err)
	}
	if err := apply(n, d); err != nil {
		n.Destroy()
		return nil, err
	}
	return n, nil
}

func apply(n tree.Node, d *Document) error {
	nb := n.AsTree()
	if d.Archivable != nil {
		nb.SetArchivable(*d.Archivable)
	}
	for _, tag := range d.Tags {
		nb.AddTag(tag)
	}
	for name, v := range d.Attributes {
		nb.SetAttribute(name, v)
	}
	for _, name := range d.PropertyNames() {
		if err := setProperty(n, name, d.Properties[name]); err != nil {
			return fmt.Errorf("scene.Build: %v: %w", d, err)
		}
	}
	for _, kd := range d.Children {
		kid, err := Build(kd)
		if err != nil {
			return err
		}
		if err := kid.AsTree().SetParent(n); err != nil {
			return fmt.Errorf("scene.Build: %w", err)
		}
	}
	return nil
}

// setProperty decodes the given raw value into the type of the given
// property and sets it.
func setProperty(n tree.Node, name string, raw any) error {
	if name == "Parent" || name == "ClassName" {
		return fmt.Errorf("%s can not be set in a document", name)
	}
	cur, err := tree.PropertyValue(n, name)
	if err != nil {
		return err
	}
	typ := reflect.TypeOf(cur)
	if isNumber(typ) && raw != nil && isNumber(reflect.TypeOf(raw)) {
		// tree converts numbers with range and fraction checks
		return tree.SetPropertyValue(n, name, raw)
	}
	target := reflect.New(typ)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			listHook,
		),
		WeaklyTypedInput: true,
		Result:           target.Interface(),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("property %s: %w", name, err)
	}
	return tree.SetPropertyValue(n, name, target.Elem().Interface())
}

func isNumber(typ reflect.Type) bool {
	k := typ.Kind()
	return k >= reflect.Int && k <= reflect.Float64
}

var (
	udim2Type   = reflect.TypeFor[gui.UDim2]()
	vector2Type = reflect.TypeFor[math32.Vector2]()
)

// listHook decodes lists of numbers into [gui.UDim2] values
// (scaleX, pixelX, scaleY, pixelY) and [math32.Vector2] values (x, y).
func listHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Slice || (to != udim2Type && to != vector2Type) {
		return data, nil
	}
	var nums []float32
	if err := mapstructure.WeakDecode(data, &nums); err != nil {
		return nil, err
	}
	switch {
	case to == udim2Type && len(nums) == 4:
		return gui.NewUDim2(nums[0], nums[1], nums[2], nums[3]), nil
	case to == vector2Type && len(nums) == 2:
		return math32.Vec2(nums[0], nums[1]), nil
	}
	return nil, fmt.Errorf("can not use a list of %d numbers as %v", len(nums), to)
}
