// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yconf/yconf/pkg/cmd"
	"github.com/yconf/yconf/pkg/cmd/ui"
)

func TestResolveCmd(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yml", `
display:
  title: Skyward
  brightness: bright
`)

	stdout, stderr := runResolve(t, &cmd.ResolveOptions{File: path, SchemaName: "config", Output: "yaml"})

	require.Contains(t, stdout, "title: Skyward")
	require.Contains(t, stdout, "brightness: 1.0")
	require.Contains(t, stdout, "file_path: new_project.log")
	require.Empty(t, stderr)
}

func TestResolveCmdWarnsOnUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yml", `
display:
  fulscreen: true
`)

	_, stderr := runResolve(t, &cmd.ResolveOptions{File: path, SchemaName: "config", Output: "yaml"})

	require.Contains(t, stderr, "Unknown key 'fulscreen' in 'display' (did you mean 'fullscreen'?)")
}

func TestResolveCmdKeepsExternReference(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yml", `display: "extern"`)
	writeConfig(t, dir, "display.yml", "title: Skyward")

	stdout, _ := runResolve(t, &cmd.ResolveOptions{File: path, SchemaName: "config", Output: "yaml"})
	require.Contains(t, stdout, "display: extern")

	stdout, _ = runResolve(t, &cmd.ResolveOptions{File: path, SchemaName: "config", Output: "yaml", Inline: true})
	require.Contains(t, stdout, "title: Skyward")
	require.NotContains(t, stdout, "extern")
}

func TestResolveCmdTOMLOutput(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "display.yml", `
title: Skyward
dimensions: [1920, 1080]
`)

	stdout, _ := runResolve(t, &cmd.ResolveOptions{File: path, SchemaName: "display", Output: "toml"})

	require.Contains(t, stdout, `title = "Skyward"`)
	require.Contains(t, stdout, "vsync = true")
}

func TestResolveCmdOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yml", `logging: "extern"`)
	writeConfig(t, dir, "logging.yml", "file_path: skyward.log")

	outDir := t.TempDir()
	outPath := filepath.Join(outDir, "resolved.yml")

	runResolve(t, &cmd.ResolveOptions{File: path, SchemaName: "config", Output: "yaml", OutputFile: outPath})

	primary, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(primary), "logging: extern")

	companion, err := os.ReadFile(filepath.Join(outDir, "logging.yml"))
	require.NoError(t, err)
	require.Contains(t, string(companion), "file_path: skyward.log")
}

func TestResolveCmdErrors(t *testing.T) {
	err := (&cmd.ResolveOptions{Output: "yaml", SchemaName: "config"}).Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected exactly one config file")

	path := writeConfig(t, t.TempDir(), "config.yml", "")

	err = (&cmd.ResolveOptions{File: path, SchemaName: "nope", Output: "yaml"}).Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unknown schema 'nope'")

	err = (&cmd.ResolveOptions{File: path, SchemaName: "config", Output: "ini"}).RunWithUI(
		ui.NewCustomWriterTTY(false, &bytes.Buffer{}, &bytes.Buffer{}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected output format")
}

func runResolve(t *testing.T, opts *cmd.ResolveOptions) (string, string) {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := opts.RunWithUI(ui.NewCustomWriterTTY(false, stdout, stderr))
	require.NoError(t, err)

	return stdout.String(), stderr.String()
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
