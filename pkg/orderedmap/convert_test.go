// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yconf/yconf/pkg/orderedmap"
)

func TestAsUnorderedStringMaps(t *testing.T) {
	ordered := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "b", Value: int64(1)},
		{Key: "a", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "nested", Value: []interface{}{int64(2)}},
		})},
	})

	result := orderedmap.Conversion{Object: ordered}.AsUnorderedStringMaps()

	require.Equal(t, map[string]interface{}{
		"b": int64(1),
		"a": map[string]interface{}{"nested": []interface{}{int64(2)}},
	}, result)
}

func TestFromUnorderedMapsSortsKeys(t *testing.T) {
	result := orderedmap.Conversion{Object: map[string]interface{}{
		"b": int64(1),
		"a": int64(2),
	}}.FromUnorderedMaps()

	require.Equal(t, orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "a", Value: int64(2)},
		{Key: "b", Value: int64(1)},
	}), result)
}

func TestMapSetOverwritesExistingKey(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)

	val, found := m.Get("a")
	require.True(t, found)
	require.Equal(t, 3, val)
	require.Equal(t, []string{"a", "b"}, m.Keys())
	require.Equal(t, 2, m.Len())

	require.True(t, m.Delete("a"))
	require.False(t, m.Delete("a"))
	require.Equal(t, []string{"b"}, m.Keys())
}
