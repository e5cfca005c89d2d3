// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yconf/yconf/pkg/cmd/ui"
	"github.com/yconf/yconf/pkg/files"
	"github.com/yconf/yconf/pkg/gameconfig"
	"github.com/yconf/yconf/pkg/schema"
	"github.com/yconf/yconf/pkg/yamldoc"
)

type ResolveOptions struct {
	File       string
	SchemaName string
	Output     string
	Inline     bool
	OutputFile string
	Debug      bool
}

func NewResolveOptions() *ResolveOptions {
	return &ResolveOptions{}
}

func NewResolveCmd(o *ResolveOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a config file against a schema and print it fully populated",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Config file (ie local path, -)")
	cmd.Flags().StringVar(&o.SchemaName, "schema", "config", "Schema to resolve against (config, display, logging)")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "yaml", "Output format (yaml, toml)")
	cmd.Flags().BoolVar(&o.Inline, "inline", false, "Inline extern-sourced fields instead of keeping references")
	cmd.Flags().StringVar(&o.OutputFile, "output-file", "", "Write result to given file (plus extern companion files)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ResolveOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug))
}

func (o *ResolveOptions) RunWithUI(ui ui.UI) error {
	if o.File == "" {
		return fmt.Errorf("Expected exactly one config file, specified via -f")
	}

	resolveSchema, err := namedSchema(o.SchemaName)
	if err != nil {
		return err
	}

	res, err := o.load(resolveSchema)
	if err != nil {
		return err
	}

	for _, warning := range res.Warnings {
		ui.Warnf("Warning: %s (%s)\n", warning.Message, warning.Position.AsCompactString())
	}

	meta := res.Meta
	if o.Inline {
		meta = nil
	}

	doc := schema.Serialize(resolveSchema, res.Value, meta)

	switch o.Output {
	case "yaml":
		text, err := yamldoc.PrintStr(doc)
		if err != nil {
			return err
		}
		ui.Printf("%s", text)

	case "toml":
		data, err := doc.AsTOMLBytes()
		if err != nil {
			return err
		}
		ui.Printf("%s", data)

	default:
		return fmt.Errorf("Expected output format to be one of 'yaml', 'toml', but was '%s'", o.Output)
	}

	if o.OutputFile != "" {
		ui.Debugf("writing: %s\n", o.OutputFile)
		return schema.WriteFile(resolveSchema, res.Value, meta, o.OutputFile)
	}

	return nil
}

func (o *ResolveOptions) load(resolveSchema *schema.StructSchema) (*schema.Resolution, error) {
	if o.File == "-" {
		src := files.NewStdinSource()
		data, err := src.Bytes()
		if err != nil {
			return nil, err
		}
		return schema.Load(resolveSchema, data, src.RelativePath(),
			schema.ResolveOpts{Resolver: files.NewLocalResolver()})
	}

	if o.SchemaName == "config" {
		_, res, err := gameconfig.LoadFile(o.File, nil)
		return res, err
	}

	return schema.LoadFile(resolveSchema, o.File, nil)
}

func namedSchema(name string) (*schema.StructSchema, error) {
	switch name {
	case "config":
		return gameconfig.Schema(), nil
	case "display":
		return gameconfig.DisplaySchema(), nil
	case "logging":
		return gameconfig.LoggingSchema(), nil
	default:
		return nil, fmt.Errorf("Unknown schema '%s' (expected one of 'config', 'display', 'logging')", name)
	}
}
