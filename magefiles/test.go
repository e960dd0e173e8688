package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets (unit, all, cover).
type Test mg.Namespace

// Unit runs the tests with -short, which skips the full-size day 15 and
// day 23 runs.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-short", "./...")
}

// All runs every test, including the full-size puzzle runs.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Race runs the short tests with the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-short", "-race", "./...")
}

// Cover runs the short tests and writes bin/coverage.out.
func (Test) Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, "coverage.out")
	if err := sh.RunV(binGo, "test", "-short", "-coverprofile", profile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func", profile)
}
