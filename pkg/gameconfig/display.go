// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package gameconfig

import (
	"github.com/yconf/yconf/pkg/schema"
)

// DisplayConfig carries the window/rendering settings.
type DisplayConfig struct {
	Title         string
	Brightness    float64
	Fullscreen    bool
	Dimensions    [2]int64
	MinDimensions *[2]int64
	MaxDimensions *[2]int64
	Vsync         bool
	Multisampling int64
	Visibility    bool
}

var displaySchema = schema.NewStructSchema("display",
	[]schema.FieldDescriptor{
		{Name: "title", Doc: "Title of the window.", Default: "New project", Type: schema.StringType{}},
		{Name: "brightness", Doc: "Screen brightness factor. Defaults to 1.0.", Default: 1.0, Type: schema.FloatType{}},
		{Name: "fullscreen", Default: false, Type: schema.BoolType{}},
		{Name: "dimensions", Doc: "Width and height of the window on initialization. Defaults to 1024x768.",
			Default: pairDefault(1024, 768), Type: pairType()},
		{Name: "min_dimensions", Default: nil, Type: schema.OptionalType{Elem: pairType()}},
		{Name: "max_dimensions", Default: nil, Type: schema.OptionalType{Elem: pairType()}},
		{Name: "vsync", Default: true, Type: schema.BoolType{}},
		{Name: "multisampling", Default: int64(0), Type: schema.IntType{}},
		{Name: "visibility", Default: true, Type: schema.BoolType{}},
	},
	constructDisplay, deconstructDisplay)

// DisplaySchema returns the schema backing DisplayConfig.
func DisplaySchema() *schema.StructSchema { return displaySchema }

// DefaultDisplayConfig returns a DisplayConfig with every field defaulted.
func DefaultDisplayConfig() DisplayConfig {
	return displaySchema.DefaultValue().(DisplayConfig)
}

func constructDisplay(vals []interface{}) interface{} {
	return DisplayConfig{
		Title:         vals[0].(string),
		Brightness:    vals[1].(float64),
		Fullscreen:    vals[2].(bool),
		Dimensions:    toPair(vals[3]),
		MinDimensions: toOptionalPair(vals[4]),
		MaxDimensions: toOptionalPair(vals[5]),
		Vsync:         vals[6].(bool),
		Multisampling: vals[7].(int64),
		Visibility:    vals[8].(bool),
	}
}

func deconstructDisplay(v interface{}) []interface{} {
	cfg := v.(DisplayConfig)
	return []interface{}{
		cfg.Title,
		cfg.Brightness,
		cfg.Fullscreen,
		fromPair(cfg.Dimensions),
		fromOptionalPair(cfg.MinDimensions),
		fromOptionalPair(cfg.MaxDimensions),
		cfg.Vsync,
		cfg.Multisampling,
		cfg.Visibility,
	}
}

func pairType() schema.Type {
	return schema.TupleType{Elem: schema.IntType{}, Len: 2}
}

func pairDefault(a, b int64) []interface{} {
	return []interface{}{a, b}
}

func toPair(v interface{}) [2]int64 {
	items := v.([]interface{})
	return [2]int64{items[0].(int64), items[1].(int64)}
}

func toOptionalPair(v interface{}) *[2]int64 {
	if v == nil {
		return nil
	}
	pair := toPair(v)
	return &pair
}

func fromPair(pair [2]int64) []interface{} {
	return []interface{}{pair[0], pair[1]}
}

func fromOptionalPair(pair *[2]int64) interface{} {
	if pair == nil {
		return nil
	}
	return fromPair(*pair)
}
