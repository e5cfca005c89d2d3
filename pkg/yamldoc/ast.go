// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package yamldoc

import (
	"github.com/yconf/yconf/pkg/filepos"
)

// Node is implemented by the container shapes of the document tree. Scalar
// values are held directly as nil, bool, int64, float64 or string.
type Node interface {
	GetPosition() *filepos.Position

	GetValues() []interface{} // ie children
	DeepCopyAsNode() Node

	sealed() // limit the concrete types of Node to the shapes allowed in the document model
}

var _ = []Node{&Document{}, &Map{}, &Array{}}

// Document is the root of one parsed configuration file.
type Document struct {
	Value    interface{}
	Position *filepos.Position
}

type Map struct {
	Items    []*MapItem
	Position *filepos.Position
}

type MapItem struct {
	Key      string
	Value    interface{}
	Position *filepos.Position
}

type Array struct {
	Items    []*ArrayItem
	Position *filepos.Position
}

type ArrayItem struct {
	Value    interface{}
	Position *filepos.Position
}

func (d *Document) GetPosition() *filepos.Position { return d.Position }
func (m *Map) GetPosition() *filepos.Position      { return m.Position }
func (a *Array) GetPosition() *filepos.Position    { return a.Position }

func (d *Document) GetValues() []interface{} { return []interface{}{d.Value} }

func (m *Map) GetValues() []interface{} {
	var result []interface{}
	for _, item := range m.Items {
		result = append(result, item.Value)
	}
	return result
}

func (a *Array) GetValues() []interface{} {
	var result []interface{}
	for _, item := range a.Items {
		result = append(result, item.Value)
	}
	return result
}

// Lookup returns the value of the item keyed by "key", if present.
func (m *Map) Lookup(key string) (interface{}, bool) {
	if m == nil {
		return nil, false
	}
	for _, item := range m.Items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

func (d *Document) sealed() {}
func (m *Map) sealed()      {}
func (a *Array) sealed()    {}

// TypeName returns a user-facing name of the kind of the given document value.
func TypeName(val interface{}) string {
	switch val.(type) {
	case *Document:
		return "document"
	case *Map:
		return "map"
	case *Array:
		return "array"
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case float64:
		return "float"
	case string:
		return "string"
	default:
		return "unknown"
	}
}
