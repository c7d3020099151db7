// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"math"
	"reflect"
)

// SetProperty sets the given property field of the given node to the given
// value. If the value is equal to the current value, it does nothing and
// returns false. Otherwise, it commits the value, fires the change signal for
// the property (if it has been requested) followed by [NodeBase.Changed], and
// returns true. A nil node only sets the field. It is the standard way for
// node types to implement setters:
//
//	func (f *Frame) SetZIndex(z int) *Frame {
//		tree.SetProperty(f, "ZIndex", &f.ZIndex, z)
//		return f
//	}
func SetProperty[T comparable](n Node, name string, field *T, value T) bool {
	if *field == value {
		return false
	}
	*field = value
	if n != nil {
		n.AsTree().PropertyChanged(name)
	}
	return true
}

// PropertyNames returns the names of the properties of the given node:
// Name and Archivable, followed by the exported fields of its type
// (including those promoted from embedded structs) in declaration order.
// Fields with the struct tag `property:"-"` are not properties.
func PropertyNames(n Node) []string {
	names := []string{"Name", "Archivable"}
	for _, f := range propertyFields(reflect.TypeOf(n)) {
		names = append(names, f.Name)
	}
	return names
}

// propertyFields returns the property fields of the given node pointer type.
func propertyFields(typ reflect.Type) []reflect.StructField {
	if typ == nil || typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		return nil
	}
	var res []reflect.StructField
	for _, f := range reflect.VisibleFields(typ.Elem()) {
		if f.Anonymous || !f.IsExported() || f.Tag.Get("property") == "-" {
			continue
		}
		res = append(res, f)
	}
	return res
}

// propertyField returns the settable value of the property field
// with the given name.
func propertyField(n Node, name string) (reflect.Value, bool) {
	for _, f := range propertyFields(reflect.TypeOf(n)) {
		if f.Name == name {
			return reflect.ValueOf(n).Elem().FieldByIndex(f.Index), true
		}
	}
	return reflect.Value{}, false
}

// PropertyValue returns the current value of the given property of the
// given node. In addition to the names from [PropertyNames], it accepts the
// read-only properties Parent and ClassName.
func PropertyValue(n Node, name string) (any, error) {
	nb := n.AsTree()
	switch name {
	case "Name":
		return nb.name, nil
	case "Archivable":
		return nb.archivable, nil
	case "Parent":
		return nb.parent, nil
	case "ClassName":
		return nb.classTag, nil
	}
	fv, ok := propertyField(n, name)
	if !ok {
		return nil, fmt.Errorf("tree.PropertyValue: %w: %s.%s", ErrUnknownProperty, nb.classTag, name)
	}
	return fv.Interface(), nil
}

// SetPropertyValue sets the given property of the given node to the given
// value, with the same notification semantics as [SetProperty]. The value
// must be assignable to the property type; numeric values are converted
// between numeric types, and strings between string types. A nil value sets
// the zero value. Setting Parent calls [NodeBase.SetParent].
func SetPropertyValue(n Node, name string, value any) error {
	nb := n.AsTree()
	switch name {
	case "Name":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("tree.SetPropertyValue: Name must be a string, not %T", value)
		}
		nb.SetName(s)
		return nil
	case "Archivable":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("tree.SetPropertyValue: Archivable must be a bool, not %T", value)
		}
		nb.SetArchivable(b)
		return nil
	case "Parent":
		if value == nil {
			return nb.SetParent(nil)
		}
		p, ok := value.(Node)
		if !ok {
			return fmt.Errorf("tree.SetPropertyValue: Parent must be a tree.Node, not %T", value)
		}
		return nb.SetParent(p)
	case "ClassName":
		return fmt.Errorf("tree.SetPropertyValue: ClassName is read-only")
	}
	fv, ok := propertyField(n, name)
	if !ok {
		return fmt.Errorf("tree.SetPropertyValue: %w: %s.%s", ErrUnknownProperty, nb.classTag, name)
	}
	nv, err := convertValue(value, fv.Type())
	if err != nil {
		return fmt.Errorf("tree.SetPropertyValue: %s.%s: %w", nb.classTag, name, err)
	}
	if equalValues(fv.Interface(), nv.Interface()) {
		return nil
	}
	fv.Set(nv)
	nb.PropertyChanged(name)
	return nil
}

// convertValue returns the given value as a value of the given type.
func convertValue(value any, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(typ), nil
	}
	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(typ) {
		return rv, nil
	}
	if isNumeric(rv.Kind()) && isNumeric(typ.Kind()) {
		return convertNumber(rv, typ)
	}
	if rv.Kind() == reflect.String && typ.Kind() == reflect.String {
		return rv.Convert(typ), nil
	}
	return reflect.Value{}, fmt.Errorf("can not use %T as %v", value, typ)
}

// convertNumber converts the given number to the given numeric type.
// It returns an error instead of truncating a fraction or wrapping a
// value that does not fit.
func convertNumber(rv reflect.Value, typ reflect.Type) (reflect.Value, error) {
	out := reflect.New(typ).Elem()
	bad := func() (reflect.Value, error) {
		return reflect.Value{}, fmt.Errorf("%v does not fit in %v", rv.Interface(), typ)
	}
	switch {
	case rv.CanInt():
		i := rv.Int()
		switch {
		case out.CanInt() && out.OverflowInt(i):
			return bad()
		case out.CanUint() && (i < 0 || out.OverflowUint(uint64(i))):
			return bad()
		}
	case rv.CanUint():
		u := rv.Uint()
		switch {
		case out.CanInt() && (u > math.MaxInt64 || out.OverflowInt(int64(u))):
			return bad()
		case out.CanUint() && out.OverflowUint(u):
			return bad()
		}
	case rv.CanFloat():
		f := rv.Float()
		switch {
		case out.CanFloat():
			if out.OverflowFloat(f) {
				return bad()
			}
		case f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f):
			return reflect.Value{}, fmt.Errorf("%v is not a whole number for %v", f, typ)
		case out.CanInt() && (f < math.MinInt64 || f >= math.MaxInt64 || out.OverflowInt(int64(f))):
			return bad()
		case out.CanUint() && (f < 0 || f >= math.MaxUint64 || out.OverflowUint(uint64(f))):
			return bad()
		}
	}
	out.Set(rv.Convert(typ))
	return out, nil
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

// defaultInstance returns an uninitialized node of the same type as
// the given node with the default values of its class.
func defaultInstance(n Node) Node {
	return n.AsTree().NewInstance()
}

// IsPropertyModified returns whether the given property of the given node
// differs from its default value. The default Name is the class name of the
// node, and the default of every other property is its value in a new node
// of the same class. It returns false for unknown properties.
func IsPropertyModified(n Node, name string) bool {
	nb := n.AsTree()
	switch name {
	case "Name":
		return nb.name != nb.classTag
	case "Archivable":
		return !nb.archivable
	}
	fv, ok := propertyField(n, name)
	if !ok {
		return false
	}
	dv, _ := propertyField(defaultInstance(n), name)
	return !reflect.DeepEqual(fv.Interface(), dv.Interface())
}

// ResetPropertyToDefault sets the given property of the given node to its
// default value; see [IsPropertyModified].
func ResetPropertyToDefault(n Node, name string) error {
	nb := n.AsTree()
	switch name {
	case "Name":
		nb.SetName(nb.classTag)
		return nil
	case "Archivable":
		nb.SetArchivable(true)
		return nil
	}
	if _, ok := propertyField(n, name); !ok {
		return fmt.Errorf("tree.ResetPropertyToDefault: %w: %s.%s", ErrUnknownProperty, nb.classTag, name)
	}
	dv, _ := propertyField(defaultInstance(n), name)
	return SetPropertyValue(n, name, dv.Interface())
}

// PropertyNames returns the names of the properties of the node; see [PropertyNames].
func (n *NodeBase) PropertyNames() []string {
	return PropertyNames(n.this)
}

// PropertyValue returns the value of the given property; see [PropertyValue].
func (n *NodeBase) PropertyValue(name string) (any, error) {
	return PropertyValue(n.this, name)
}

// SetPropertyValue sets the given property; see [SetPropertyValue].
func (n *NodeBase) SetPropertyValue(name string, value any) error {
	return SetPropertyValue(n.this, name, value)
}

// IsPropertyModified returns whether the given property differs from its
// default; see [IsPropertyModified].
func (n *NodeBase) IsPropertyModified(name string) bool {
	return IsPropertyModified(n.this, name)
}

// ResetPropertyToDefault resets the given property; see [ResetPropertyToDefault].
func (n *NodeBase) ResetPropertyToDefault(name string) error {
	return ResetPropertyToDefault(n.this, name)
}
