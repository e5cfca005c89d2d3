// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package yamldoc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yconf/yconf/pkg/yamldoc"
)

func TestParserScalars(t *testing.T) {
	data := []byte(`
title: Skyward
brightness: 0.5
fullscreen: false
multisampling: 4
min_dimensions: null
hex: 0x10
`)

	doc, err := yamldoc.NewParser().ParseBytes(data, "config.yml")
	require.NoError(t, err)

	m, ok := doc.Value.(*yamldoc.Map)
	require.True(t, ok, "expected root to be a map, was %s", yamldoc.TypeName(doc.Value))

	expected := map[string]interface{}{
		"title":          "Skyward",
		"brightness":     0.5,
		"fullscreen":     false,
		"multisampling":  int64(4),
		"min_dimensions": nil,
		"hex":            int64(16),
	}

	for key, expectedVal := range expected {
		val, found := m.Lookup(key)
		require.True(t, found, "key %s", key)
		require.Equal(t, expectedVal, val, "key %s", key)
	}
}

func TestParserPreservesMappingOrder(t *testing.T) {
	data := []byte("b: 1\na: 2\nc: 3\n")

	doc, err := yamldoc.NewParser().ParseBytes(data, "")
	require.NoError(t, err)

	m := doc.Value.(*yamldoc.Map)

	var keys []string
	for _, item := range m.Items {
		keys = append(keys, item.Key)
	}
	require.Equal(t, []string{"b", "a", "c"}, keys)
}

func TestParserPositions(t *testing.T) {
	data := []byte("display:\n  brightness: 0.5\n")

	doc, err := yamldoc.NewParser().ParseBytes(data, "config.yml")
	require.NoError(t, err)

	m := doc.Value.(*yamldoc.Map)
	require.Equal(t, 1, m.Items[0].Position.LineNum())
	require.Equal(t, "config.yml", m.Items[0].Position.GetFile())

	nested := m.Items[0].Value.(*yamldoc.Map)
	require.Equal(t, 2, nested.Items[0].Position.LineNum())
}

func TestParserSequences(t *testing.T) {
	data := []byte("dimensions: [1024, 768]\n")

	doc, err := yamldoc.NewParser().ParseBytes(data, "")
	require.NoError(t, err)

	m := doc.Value.(*yamldoc.Map)
	array, ok := m.Items[0].Value.(*yamldoc.Array)
	require.True(t, ok)
	require.Len(t, array.Items, 2)
	require.Equal(t, int64(1024), array.Items[0].Value)
	require.Equal(t, int64(768), array.Items[1].Value)
}

func TestParserAnchorsAndAliases(t *testing.T) {
	data := []byte("defaults: &defaults\n  vsync: true\ncurrent: *defaults\n")

	doc, err := yamldoc.NewParser().ParseBytes(data, "")
	require.NoError(t, err)

	m := doc.Value.(*yamldoc.Map)
	current, found := m.Lookup("current")
	require.True(t, found)

	val, found := current.(*yamldoc.Map).Lookup("vsync")
	require.True(t, found)
	require.Equal(t, true, val)
}

func TestParserEmptyInput(t *testing.T) {
	doc, err := yamldoc.NewParser().ParseBytes([]byte(""), "config.yml")
	require.NoError(t, err)
	require.Nil(t, doc.Value)
}

func TestParserRejectsMultipleDocuments(t *testing.T) {
	_, err := yamldoc.NewParser().ParseBytes([]byte("a: 1\n---\nb: 2\n"), "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one YAML document")
}

func TestParserMalformedInput(t *testing.T) {
	_, err := yamldoc.NewParser().ParseBytes([]byte("a: [1, 2\n"), "")
	require.Error(t, err)
}
