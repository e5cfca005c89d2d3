// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides the interface through which yconf commands report
progress, warnings and debug detail to the user.
*/
package ui
