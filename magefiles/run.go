//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds the binary and runs the property checks once.
func (Run) Check() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run property checks...")
	if _, err := executeCmd("bin/rotor", withArgs(checkArgs()...), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the property checks against rotor.toml and re-runs them on every change.
func (Run) Watch() error {
	mg.Deps(Build.Binary)
	if _, err := executeCmd("bin/rotor", withArgs("-config", "rotor.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
