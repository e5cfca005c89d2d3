// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/yconf/yconf/pkg/yamldoc"
)

// Type converts a document node into a typed value. Coerce is total: it never
// panics on document input, and any failure comes back as a soft
// CoercionError for the materializer to turn into the field's default.
// Encode is the inverse, from a typed value back to a document value.
type Type interface {
	Coerce(val interface{}, ctx *Context) (interface{}, error)
	Encode(v interface{}) interface{}
}

var _ = []Type{BoolType{}, IntType{}, FloatType{}, StringType{},
	TupleType{}, ListType{}, OptionalType{}, StructType{}, EnumType{}}

type BoolType struct{}

func (t BoolType) Coerce(val interface{}, _ *Context) (interface{}, error) {
	if typedVal, ok := val.(bool); ok {
		return typedVal, nil
	}
	return nil, NewCoercionError("boolean", val)
}

func (t BoolType) Encode(v interface{}) interface{} { return v }

type IntType struct{}

func (t IntType) Coerce(val interface{}, _ *Context) (interface{}, error) {
	if typedVal, ok := val.(int64); ok {
		return typedVal, nil
	}
	return nil, NewCoercionError("integer", val)
}

func (t IntType) Encode(v interface{}) interface{} { return v }

type FloatType struct{}

func (t FloatType) Coerce(val interface{}, _ *Context) (interface{}, error) {
	switch typedVal := val.(type) {
	case float64:
		return typedVal, nil
	case int64:
		// a document "1" is an acceptable spelling of the float 1.0
		return float64(typedVal), nil
	}
	return nil, NewCoercionError("float", val)
}

func (t FloatType) Encode(v interface{}) interface{} { return v }

type StringType struct{}

func (t StringType) Coerce(val interface{}, _ *Context) (interface{}, error) {
	if typedVal, ok := val.(string); ok {
		return typedVal, nil
	}
	return nil, NewCoercionError("string", val)
}

func (t StringType) Encode(v interface{}) interface{} { return v }

// TupleType decodes a sequence of exactly Len elements. A length mismatch or
// any element failure fails the whole field.
type TupleType struct {
	Elem Type
	Len  int
}

func (t TupleType) Coerce(val interface{}, ctx *Context) (interface{}, error) {
	array, ok := val.(*yamldoc.Array)
	if !ok {
		return nil, NewCoercionError(fmt.Sprintf("sequence of %d", t.Len), val)
	}
	if len(array.Items) != t.Len {
		return nil, NewCoercionError(fmt.Sprintf("sequence of %d", t.Len), val)
	}
	return coerceItems(t.Elem, array, ctx)
}

func (t TupleType) Encode(v interface{}) interface{} { return encodeItems(t.Elem, v) }

// ListType decodes a sequence of any length.
type ListType struct {
	Elem Type
}

func (t ListType) Coerce(val interface{}, ctx *Context) (interface{}, error) {
	array, ok := val.(*yamldoc.Array)
	if !ok {
		return nil, NewCoercionError("sequence", val)
	}
	return coerceItems(t.Elem, array, ctx)
}

func (t ListType) Encode(v interface{}) interface{} { return encodeItems(t.Elem, v) }

func coerceItems(elem Type, array *yamldoc.Array, ctx *Context) (interface{}, error) {
	result := make([]interface{}, 0, len(array.Items))
	for _, item := range array.Items {
		itemVal, err := elem.Coerce(item.Value, ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, itemVal)
	}
	return result, nil
}

func encodeItems(elem Type, v interface{}) interface{} {
	items, ok := v.([]interface{})
	if !ok {
		panic(fmt.Sprintf("Internal inconsistency: expected []interface{} for sequence encoding, but was %T", v))
	}
	result := &yamldoc.Array{}
	for _, item := range items {
		result.Items = append(result.Items, &yamldoc.ArrayItem{Value: elem.Encode(item)})
	}
	return result
}

// OptionalType decodes null as absence (nil) and otherwise defers to Elem.
type OptionalType struct {
	Elem Type
}

func (t OptionalType) Coerce(val interface{}, ctx *Context) (interface{}, error) {
	if val == nil {
		return nil, nil
	}
	return t.Elem.Coerce(val, ctx)
}

func (t OptionalType) Encode(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	return t.Elem.Encode(v)
}

// StructType decodes a mapping through a nested schema.
type StructType struct {
	Schema *StructSchema
}

func (t StructType) Coerce(val interface{}, ctx *Context) (interface{}, error) {
	m, ok := val.(*yamldoc.Map)
	if !ok {
		return nil, NewCoercionError("map", val)
	}
	if ctx == nil {
		ctx = newContext(ResolveOpts{})
	}
	return t.Schema.materializeMap(m, ctx), nil
}

func (t StructType) Encode(v interface{}) interface{} {
	return t.Schema.encodeValue(v, nil)
}

// EnumType decodes a scalar string against the enum's allowed label set.
type EnumType struct {
	Schema *EnumSchema
}

func (t EnumType) Coerce(val interface{}, _ *Context) (interface{}, error) {
	if label, ok := val.(string); ok && t.Schema.hasVariant(label) {
		return label, nil
	}
	return nil, NewCoercionError(fmt.Sprintf("one of %v", t.Schema.Variants()), val)
}

func (t EnumType) Encode(v interface{}) interface{} { return v }
