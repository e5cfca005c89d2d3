// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yconf/yconf/pkg/files"
)

func TestLocalResolverPrefersDirectoryForm(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "display", "config.yml"), "from: dir")
	writeFile(t, filepath.Join(dir, "display.yml"), "from: flat")

	src, found := files.NewLocalResolver().Locate(dir, "display")
	require.True(t, found)

	data, err := src.Bytes()
	require.NoError(t, err)
	require.Equal(t, "from: dir", string(data))
}

func TestLocalResolverFallsBackToFlatForm(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "display.yaml"), "from: flat")

	src, found := files.NewLocalResolver().Locate(dir, "display")
	require.True(t, found)
	require.Equal(t, filepath.Join(dir, "display.yaml"), src.RelativePath())
}

func TestLocalResolverReportsMissing(t *testing.T) {
	_, found := files.NewLocalResolver().Locate(t.TempDir(), "display")
	require.False(t, found)
}

func TestInMemoryResolverSearchOrder(t *testing.T) {
	resolver := files.NewInMemoryResolver(map[string][]byte{
		"display/config.yml": []byte("from: dir"),
		"display.yml":        []byte("from: flat"),
	})

	src, found := resolver.Locate("", "display")
	require.True(t, found)
	require.Equal(t, "display/config.yml", src.RelativePath())

	_, found = resolver.Locate("", "logging")
	require.False(t, found)
}

func TestCachedSourceReadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	writeFile(t, path, "a: 1")

	src := files.NewCachedSource(files.NewLocalSource(path))

	first, err := src.Bytes()
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	second, err := src.Bytes()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}
