// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
	"github.com/yconf/yconf/pkg/version"
)

type YconfOptions struct{}

func NewDefaultYconfOptions() *YconfOptions {
	return &YconfOptions{}
}

func NewDefaultYconfCmd() *cobra.Command {
	return NewYconfCmd(NewDefaultYconfOptions())
}

func NewYconfCmd(o *YconfOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "yconf",
		Version: version.Version,
		Short:   "yconf loads schema-backed YAML configuration",
		Long: `yconf loads schema-backed YAML configuration.

Missing or mistyped fields fall back to their schema defaults; fields set to
the literal string "extern" are loaded from companion files.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewResolveCmd(NewResolveOptions()))
	cmd.AddCommand(NewFmtCmd(NewFmtOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
