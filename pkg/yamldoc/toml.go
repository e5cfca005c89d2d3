// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package yamldoc

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/yconf/yconf/pkg/orderedmap"
)

// AsTOMLBytes renders the document as TOML. The document root must be a
// mapping. TOML has no null, so null-valued keys are omitted.
func (d *Document) AsTOMLBytes() ([]byte, error) {
	if _, ok := d.Value.(*Map); !ok {
		return nil, fmt.Errorf("Expected document root to be a map for TOML output, but was %s", TypeName(d.Value))
	}

	plain := orderedmap.Conversion{Object: d.AsInterface()}.AsUnorderedStringMaps()

	buf := new(bytes.Buffer)

	err := toml.NewEncoder(buf).Encode(dropNulls(plain))
	if err != nil {
		return nil, fmt.Errorf("Encoding TOML: %s", err)
	}

	return buf.Bytes(), nil
}

func dropNulls(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case map[string]interface{}:
		result := map[string]interface{}{}
		for k, v := range typedVal {
			if v == nil {
				continue
			}
			result[k] = dropNulls(v)
		}
		return result

	case []interface{}:
		result := []interface{}{}
		for _, item := range typedVal {
			if item == nil {
				continue
			}
			result = append(result, dropNulls(item))
		}
		return result

	default:
		return typedVal
	}
}
