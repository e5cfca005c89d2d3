// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package gameconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yconf/yconf/pkg/gameconfig"
	"github.com/yconf/yconf/pkg/schema"
	"github.com/yconf/yconf/pkg/yamldoc"
)

func TestLoadFileEmptyDocumentYieldsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yml", "")

	cfg, res, err := gameconfig.LoadFile(path, nil)
	require.NoError(t, err)
	require.Empty(t, res.Warnings)

	require.Equal(t, gameconfig.DefaultConfig(), cfg)
	require.Equal(t, "New project", cfg.Display.Title)
	require.Equal(t, 1.0, cfg.Display.Brightness)
	require.Equal(t, [2]int64{1024, 768}, cfg.Display.Dimensions)
	require.Nil(t, cfg.Display.MinDimensions)
	require.Equal(t, "new_project.log", cfg.Logging.FilePath)
}

func TestLoadFileMismatchedFieldFallsBack(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yml", `
display:
  title: Skyward
  brightness: bright
  fullscreen: true
`)

	cfg, _, err := gameconfig.LoadFile(path, nil)
	require.NoError(t, err)

	require.Equal(t, "Skyward", cfg.Display.Title)
	require.Equal(t, 1.0, cfg.Display.Brightness)
	require.Equal(t, true, cfg.Display.Fullscreen)
}

func TestLoadFileDisplayExtern(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yml", `display: "extern"`)
	writeConfig(t, dir, "display.yml", `
title: Skyward
dimensions: [1920, 1080]
`)

	cfg, res, err := gameconfig.LoadFile(path, nil)
	require.NoError(t, err)

	require.Equal(t, "Skyward", cfg.Display.Title)
	require.Equal(t, [2]int64{1920, 1080}, cfg.Display.Dimensions)
	require.Equal(t, gameconfig.DefaultLoggingConfig(), cfg.Logging)

	displayMeta := res.Meta.Child("display")
	require.True(t, displayMeta.FromExtern())
	require.Equal(t, "display.yml", displayMeta.Path())
}

func TestLoadFileVersionConstraint(t *testing.T) {
	dir := t.TempDir()

	okPath := writeConfig(t, dir, "ok.yml", `requires_version: ">= 0.1.0"`)
	_, _, err := gameconfig.LoadFile(okPath, nil)
	require.NoError(t, err)

	badPath := writeConfig(t, dir, "bad.yml", `requires_version: ">= 99.0.0"`)
	_, _, err = gameconfig.LoadFile(badPath, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not meet the version requirement")
}

func TestLoadFileMissing(t *testing.T) {
	_, _, err := gameconfig.LoadFile(filepath.Join(t.TempDir(), "config.yml"), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Loading config")
}

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yml", `
display:
  title: Skyward
  brightness: 0.5
  max_dimensions: [3840, 2160]
logging: "extern"
`)
	writeConfig(t, dir, "logging.yml", "file_path: skyward.log")

	cfg, res, err := gameconfig.LoadFile(path, nil)
	require.NoError(t, err)
	require.Equal(t, "skyward.log", cfg.Logging.FilePath)

	outDir := t.TempDir()
	outPath := filepath.Join(outDir, "config.yml")
	err = schema.WriteFile(gameconfig.Schema(), cfg, res.Meta, outPath)
	require.NoError(t, err)

	reCfg, _, err := gameconfig.LoadFile(outPath, nil)
	require.NoError(t, err)
	require.Equal(t, cfg, reCfg)

	// the logging section keeps living in its own file
	data, err := os.ReadFile(filepath.Join(outDir, "logging.yml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "file_path: skyward.log")
}

func TestSerializeDefaultsParses(t *testing.T) {
	out, err := yamldoc.PrintStr(schema.SerializeInline(gameconfig.Schema(), gameconfig.DefaultConfig()))
	require.NoError(t, err)

	_, err = yamldoc.NewParser().ParseBytes([]byte(out), "defaults.yml")
	require.NoError(t, err)
	require.Contains(t, out, "brightness: 1.0")
	require.Contains(t, out, "title: New project")
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
