// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package gameconfig ships the schemas yconf is distributed with: a display
section, a logging section and the root config that nests them. It doubles as
the reference example of declaring schemas against pkg/schema by hand (the
declaration surface is a plain builder; code generation is out of scope).
*/
package gameconfig
