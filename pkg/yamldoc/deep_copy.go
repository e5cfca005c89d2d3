// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package yamldoc

// DeepCopy copies the document and all nodes below it. The engine never
// mutates a parsed tree; substitutions (eg extern replacement) always operate
// on fresh copies.
func (d *Document) DeepCopy() *Document {
	return &Document{Value: copyValue(d.Value), Position: d.Position.DeepCopy()}
}

func (m *Map) DeepCopy() *Map {
	newMap := &Map{Position: m.Position.DeepCopy()}
	for _, item := range m.Items {
		newMap.Items = append(newMap.Items, item.DeepCopy())
	}
	return newMap
}

func (mi *MapItem) DeepCopy() *MapItem {
	return &MapItem{Key: mi.Key, Value: copyValue(mi.Value), Position: mi.Position.DeepCopy()}
}

func (a *Array) DeepCopy() *Array {
	newArray := &Array{Position: a.Position.DeepCopy()}
	for _, item := range a.Items {
		newArray.Items = append(newArray.Items, item.DeepCopy())
	}
	return newArray
}

func (ai *ArrayItem) DeepCopy() *ArrayItem {
	return &ArrayItem{Value: copyValue(ai.Value), Position: ai.Position.DeepCopy()}
}

func (d *Document) DeepCopyAsNode() Node { return d.DeepCopy() }
func (m *Map) DeepCopyAsNode() Node      { return m.DeepCopy() }
func (a *Array) DeepCopyAsNode() Node    { return a.DeepCopy() }

func copyValue(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case *Document:
		return typedVal.DeepCopy()
	case *Map:
		return typedVal.DeepCopy()
	case *Array:
		return typedVal.DeepCopy()
	default:
		// scalars are copied by value
		return typedVal
	}
}
