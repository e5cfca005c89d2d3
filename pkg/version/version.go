// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the tool version and checks configuration version
// constraints against it.
package version

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Version of the yconf binary/library. Overridable via ldflags.
var Version = "0.1.0"

// CheckConstraint verifies that the running version satisfies the given
// constraint (eg ">= 0.1.0, < 1.0.0"). An empty constraint always passes.
func CheckConstraint(constraint string) error {
	if constraint == "" {
		return nil
	}

	parsedConstraint, err := goversion.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("Parsing version constraint '%s': %s", constraint, err)
	}

	currentVersion, err := goversion.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("Parsing version '%s': %s", Version, err)
	}

	if !parsedConstraint.Check(currentVersion) {
		return fmt.Errorf("yconf version '%s' does not meet the version requirement '%s'", Version, constraint)
	}

	return nil
}
