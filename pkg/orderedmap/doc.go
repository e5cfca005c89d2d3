// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

Configuration output must be deterministic and follow schema field order, so
every plain representation of a mapping goes through this type.
*/
package orderedmap
