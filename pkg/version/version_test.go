// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckConstraint(t *testing.T) {
	require.NoError(t, CheckConstraint(""))
	require.NoError(t, CheckConstraint(">= 0.1.0"))
	require.NoError(t, CheckConstraint(">= 0.1.0, < 1.0.0"))

	err := CheckConstraint(">= 2.0.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not meet the version requirement")

	err = CheckConstraint("not-a-constraint")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Parsing version constraint")
}
