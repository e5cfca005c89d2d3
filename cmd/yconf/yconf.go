// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"github.com/yconf/yconf/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultYconfCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "yconf: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
