// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package gameconfig

import (
	"github.com/yconf/yconf/pkg/schema"
)

// LoggingConfig carries log destinations and levels.
type LoggingConfig struct {
	FilePath     string
	OutputLevel  string
	LoggingLevel string
}

var loggingSchema = schema.NewStructSchema("logging",
	[]schema.FieldDescriptor{
		{Name: "file_path", Doc: "Destination file for the log.", Default: "new_project.log", Type: schema.StringType{}},
		{Name: "output_level", Doc: "Level at which log lines are echoed to the terminal.", Default: "warn", Type: schema.StringType{}},
		{Name: "logging_level", Doc: "Level at which log lines are written to the file.", Default: "debug", Type: schema.StringType{}},
	},
	constructLogging, deconstructLogging)

// LoggingSchema returns the schema backing LoggingConfig.
func LoggingSchema() *schema.StructSchema { return loggingSchema }

// DefaultLoggingConfig returns a LoggingConfig with every field defaulted.
func DefaultLoggingConfig() LoggingConfig {
	return loggingSchema.DefaultValue().(LoggingConfig)
}

func constructLogging(vals []interface{}) interface{} {
	return LoggingConfig{
		FilePath:     vals[0].(string),
		OutputLevel:  vals[1].(string),
		LoggingLevel: vals[2].(string),
	}
}

func deconstructLogging(v interface{}) []interface{} {
	cfg := v.(LoggingConfig)
	return []interface{}{cfg.FilePath, cfg.OutputLevel, cfg.LoggingLevel}
}
