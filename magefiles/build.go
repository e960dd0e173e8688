// Package main provides build targets for the advent project using Mage.
//
// Usage:
//
//	mage build       Compile the advent binary to bin/
//	mage install     Install advent to GOPATH/bin
//	mage test:unit   Run tests, skipping the long-running puzzle sizes
//	mage test:all    Run every test
//	mage test:cover  Run tests with a coverage profile in bin/
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage stats       Print Go lines of code as a JSON record
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo          = "go"
	binaryName     = "advent"
	binaryDir      = "bin"
	cmdDir         = "./cmd/advent"
	versionVar     = "github.com/mesh-intelligence/advent/internal/cli.Version"
	envVersion     = "ADVENT_VERSION"
	defaultVersion = "0.1.0"
)

// ldflags stamps the version from ADVENT_VERSION into the binary.
func ldflags() string {
	v := os.Getenv(envVersion)
	if v == "" {
		v = defaultVersion
	}
	return "-X " + versionVar + "=" + v
}

// Build compiles the advent binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
