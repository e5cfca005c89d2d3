// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a
file) and a line number within that source.

Positions are attached to every parsed document node so that diagnostics can
point at the exact spot in the configuration that caused them. Values that are
built in memory (for example schema defaults) carry an unknown Position.
*/
package filepos
