// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package yamldoc

import (
	"fmt"

	"github.com/yconf/yconf/pkg/orderedmap"
)

// AsInterface returns the plain Go representation of the document: scalars
// stay as they are, arrays become []interface{}, maps become *orderedmap.Map.
func (d *Document) AsInterface() interface{} {
	return plainValue(d.Value)
}

func (m *Map) AsInterface() interface{} {
	return plainValue(m)
}

func (a *Array) AsInterface() interface{} {
	return plainValue(a)
}

func plainValue(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case *Document:
		return plainValue(typedVal.Value)

	case *Map:
		result := orderedmap.NewMap()
		for _, item := range typedVal.Items {
			result.Set(item.Key, plainValue(item.Value))
		}
		return result

	case *Array:
		result := []interface{}{}
		for _, item := range typedVal.Items {
			result = append(result, plainValue(item.Value))
		}
		return result

	default:
		return typedVal
	}
}

// FromInterface builds a document tree value (with unknown positions) out of
// the plain Go representation produced by AsInterface.
func FromInterface(val interface{}) (interface{}, error) {
	switch typedVal := val.(type) {
	case *orderedmap.Map:
		result := &Map{}
		var err error
		typedVal.Iterate(func(k string, v interface{}) {
			if err != nil {
				return
			}
			var itemVal interface{}
			itemVal, err = FromInterface(v)
			result.Items = append(result.Items, &MapItem{Key: k, Value: itemVal})
		})
		if err != nil {
			return nil, err
		}
		return result, nil

	case []interface{}:
		result := &Array{}
		for _, item := range typedVal {
			itemVal, err := FromInterface(item)
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, &ArrayItem{Value: itemVal})
		}
		return result, nil

	case nil, bool, int64, float64, string:
		return typedVal, nil

	case int:
		return int64(typedVal), nil

	default:
		return nil, fmt.Errorf("Unexpected value type %T in document tree", val)
	}
}
