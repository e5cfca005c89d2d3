// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd implements the yconf command line interface: resolving config
files against the shipped schemas, reformatting, and version reporting.
*/
package cmd
