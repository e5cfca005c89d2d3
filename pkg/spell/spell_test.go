// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package spell_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yconf/yconf/pkg/spell"
)

func TestNearestFindsCloseMisspelling(t *testing.T) {
	fields := []string{"title", "brightness", "fullscreen", "dimensions"}

	suggestion, found := spell.Nearest("brightnes", fields)
	require.True(t, found)
	require.Equal(t, "brightness", suggestion)

	suggestion, found = spell.Nearest("Fullscren", fields)
	require.True(t, found)
	require.Equal(t, "fullscreen", suggestion)
}

func TestNearestIgnoresDistantWords(t *testing.T) {
	_, found := spell.Nearest("zzzzzzzz", []string{"title", "brightness"})
	require.False(t, found)
}
