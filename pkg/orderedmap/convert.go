// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"sort"
)

type Conversion struct {
	Object interface{}
}

// AsUnorderedStringMaps converts nested *Map values into native Go maps keyed
// by string. Key order is lost; callers that need stable output must keep the
// ordered form.
func (c Conversion) AsUnorderedStringMaps() interface{} {
	return c.asUnorderedStringMaps(c.Object)
}

func (c Conversion) asUnorderedStringMaps(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case map[string]interface{}:
		panic("Expected *orderedmap.Map instead of map[string]interface{} in asUnorderedStringMaps")

	case *Map:
		result := map[string]interface{}{}
		typedObj.Iterate(func(k string, v interface{}) {
			result[k] = c.asUnorderedStringMaps(v)
		})
		return result

	case []interface{}:
		for i, item := range typedObj {
			typedObj[i] = c.asUnorderedStringMaps(item)
		}
		return typedObj

	default:
		return typedObj
	}
}

// FromUnorderedMaps converts native Go maps into *Map values, ordering keys
// lexically since the native form carries no order.
func (c Conversion) FromUnorderedMaps() interface{} {
	return c.fromUnorderedMaps(c.Object)
}

func (c Conversion) fromUnorderedMaps(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(typedObj))
		for key := range typedObj {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		result := NewMap()
		for _, key := range keys {
			result.Set(key, c.fromUnorderedMaps(typedObj[key]))
		}
		return result

	case []interface{}:
		for i, item := range typedObj {
			typedObj[i] = c.fromUnorderedMaps(item)
		}
		return typedObj

	default:
		return typedObj
	}
}
