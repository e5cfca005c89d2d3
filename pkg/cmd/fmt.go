// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yconf/yconf/pkg/cmd/ui"
	"github.com/yconf/yconf/pkg/files"
	"github.com/yconf/yconf/pkg/yamldoc"
)

type FmtOptions struct {
	Files []string
	Debug bool
}

func NewFmtOptions() *FmtOptions {
	return &FmtOptions{}
}

func NewFmtCmd(o *FmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Reformat config files (parse and reprint)",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File (ie local path, -) (can be specified multiple times)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *FmtOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug))
}

func (o *FmtOptions) RunWithUI(ui ui.UI) error {
	for _, path := range o.Files {
		var src files.Source
		if path == "-" {
			src = files.NewStdinSource()
		} else {
			src = files.NewLocalSource(path)
		}

		data, err := src.Bytes()
		if err != nil {
			return err
		}

		doc, err := yamldoc.NewParser().ParseBytes(data, src.RelativePath())
		if err != nil {
			return err
		}

		text, err := yamldoc.PrintStr(doc)
		if err != nil {
			return err
		}

		ui.Printf("%s", text)
	}

	return nil
}
