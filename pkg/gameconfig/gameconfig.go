// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package gameconfig

import (
	"github.com/yconf/yconf/pkg/files"
	"github.com/yconf/yconf/pkg/schema"
	"github.com/yconf/yconf/pkg/version"
)

// Config is the root configuration: display and logging sections, either of
// which may live in its own file via the extern convention.
type Config struct {
	RequiresVersion string
	Display         DisplayConfig
	Logging         LoggingConfig
}

var configSchema = schema.NewStructSchema("config",
	[]schema.FieldDescriptor{
		{Name: "requires_version", Doc: "Version constraint the running yconf must satisfy, eg \">= 0.1.0\". Empty means any.",
			Default: "", Type: schema.StringType{}},
		{Name: "display", Default: displaySchema.DefaultValue(), Type: schema.StructType{Schema: displaySchema}},
		{Name: "logging", Default: loggingSchema.DefaultValue(), Type: schema.StructType{Schema: loggingSchema}},
	},
	constructConfig, deconstructConfig)

// Schema returns the root config schema.
func Schema() *schema.StructSchema { return configSchema }

// DefaultConfig returns a Config with every field defaulted.
func DefaultConfig() Config {
	return configSchema.DefaultValue().(Config)
}

func constructConfig(vals []interface{}) interface{} {
	return Config{
		RequiresVersion: vals[0].(string),
		Display:         vals[1].(DisplayConfig),
		Logging:         vals[2].(LoggingConfig),
	}
}

func deconstructConfig(v interface{}) []interface{} {
	cfg := v.(Config)
	return []interface{}{cfg.RequiresVersion, cfg.Display, cfg.Logging}
}

// LoadFile loads the root config from path, resolving extern references
// relative to its directory, and enforces the file's requires_version
// constraint. Constraint violations are hard errors: a config written for a
// newer yconf must not silently load with defaults.
func LoadFile(path string, resolver files.Resolver) (Config, *schema.Resolution, error) {
	res, err := schema.LoadFile(configSchema, path, resolver)
	if err != nil {
		return Config{}, nil, err
	}

	cfg := res.Value.(Config)

	err = version.CheckConstraint(cfg.RequiresVersion)
	if err != nil {
		return Config{}, nil, schema.NewConfigError(path, err)
	}

	return cfg, res, nil
}
