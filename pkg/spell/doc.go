// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package spell provides the ability to suggest an exact spelling of a word.

In the context of yconf, this is useful when a configuration document contains
a key that matches no schema field; the warning can point at the nearest
declared field name.
*/
package spell
