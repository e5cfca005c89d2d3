// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for loading data from file or file-like
Source's, for locating extern configuration files by the documented search
order, and for writing rendered output back to the filesystem.

This keeps the rest of yconf free from filesystem details: the resolution
engine only ever sees a Resolver and Source's, so tests run against in-memory
implementations.
*/
package files
