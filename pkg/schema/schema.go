// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
)

// FieldDescriptor declares one named, typed field of a configuration schema.
// Descriptors are immutable once the schema is built.
type FieldDescriptor struct {
	Name    string
	Doc     string
	Default interface{}
	Type    Type
}

// StructSchema is an ordered list of field descriptors plus the pair of
// functions that move between the positional field values and the host value.
// Field order affects documentation and serialization only, not resolution.
type StructSchema struct {
	name        string
	fields      []FieldDescriptor
	construct   func(vals []interface{}) interface{}
	deconstruct func(v interface{}) []interface{}
}

// NewStructSchema builds a schema from its descriptors. Declaration mistakes
// (duplicate field names, missing construct/deconstruct) are programmer
// errors, caught at schema build time, and panic.
func NewStructSchema(name string, fields []FieldDescriptor,
	construct func(vals []interface{}) interface{},
	deconstruct func(v interface{}) []interface{}) *StructSchema {

	if construct == nil || deconstruct == nil {
		panic(fmt.Sprintf("Schema '%s' must provide construct and deconstruct functions", name))
	}

	seen := map[string]struct{}{}
	for _, field := range fields {
		if field.Type == nil {
			panic(fmt.Sprintf("Schema '%s' field '%s' has no type", name, field.Name))
		}
		if _, found := seen[field.Name]; found {
			panic(fmt.Sprintf("Schema '%s' declares field '%s' more than once", name, field.Name))
		}
		seen[field.Name] = struct{}{}
	}

	return &StructSchema{name, fields, construct, deconstruct}
}

func (s *StructSchema) Name() string { return s.name }

func (s *StructSchema) Fields() []FieldDescriptor { return s.fields }

// Field returns the descriptor for the named field. Asking for an undeclared
// field is a programmatic schema error, distinct from data errors.
func (s *StructSchema) Field(name string) (FieldDescriptor, error) {
	for _, field := range s.fields {
		if field.Name == name {
			return field, nil
		}
	}
	return FieldDescriptor{}, NewMissingFieldError(s.name, name)
}

// DefaultValue constructs the value every field of which carries its default.
func (s *StructSchema) DefaultValue() interface{} {
	vals := make([]interface{}, 0, len(s.fields))
	for _, field := range s.fields {
		vals = append(vals, field.defaultValue())
	}
	return s.construct(vals)
}

func (s *StructSchema) hasField(name string) bool {
	_, err := s.Field(name)
	return err == nil
}

func (s *StructSchema) fieldNames() []string {
	var names []string
	for _, field := range s.fields {
		names = append(names, field.Name)
	}
	return names
}

func (d FieldDescriptor) defaultValue() interface{} {
	return copyDefault(d.Default)
}

func copyDefault(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case []interface{}:
		result := make([]interface{}, len(typedVal))
		for i, item := range typedVal {
			result[i] = copyDefault(item)
		}
		return result
	default:
		return typedVal
	}
}

// EnumSchema is a pure label set with a default variant. Data-carrying
// variants are not supported.
type EnumSchema struct {
	name           string
	variants       []string
	defaultVariant string
}

func NewEnumSchema(name string, variants []string, defaultVariant string) *EnumSchema {
	if len(variants) == 0 {
		panic(fmt.Sprintf("Enum '%s' must declare at least one variant", name))
	}
	found := false
	for _, variant := range variants {
		if variant == defaultVariant {
			found = true
			break
		}
	}
	if !found {
		panic(fmt.Sprintf("Enum '%s' default variant '%s' is not among its variants", name, defaultVariant))
	}
	return &EnumSchema{name, variants, defaultVariant}
}

func (e *EnumSchema) Name() string           { return e.name }
func (e *EnumSchema) Variants() []string     { return e.variants }
func (e *EnumSchema) DefaultVariant() string { return e.defaultVariant }

func (e *EnumSchema) hasVariant(label string) bool {
	for _, variant := range e.variants {
		if variant == label {
			return true
		}
	}
	return false
}
