//go:build mage

// Package main provides build targets for partgen using Mage.
//
// Usage:
//
//	mage build      Compile partgen binary to bin/
//	mage test       Run all tests
//	mage bench      Run cross-section and meshing benchmarks
//	mage catalog    Export every catalog profile to out/ as STL
//	mage clean      Remove build artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/soypat/sdfparts/form3/obj3/extrusion"
)

const (
	binGo      = "go"
	binaryName = "partgen"
	binaryDir  = "bin"
	outputDir  = "out"
	cmdDir     = "./cmd/partgen"

	catalogLength  = "100"
	catalogQuality = "200"
)

// Build compiles the partgen binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Bench runs the benchmarks of the extrusion and render packages.
func Bench() error {
	return sh.RunV(binGo, "test", "-run=^$", "-bench=.", "./form3/obj3/extrusion/", "./render/")
}

// Catalog exports every built-in profile to out/.
func Catalog() error {
	mg.Deps(Build)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	bin := filepath.Join(binaryDir, binaryName)
	for _, name := range extrusion.Names() {
		output := filepath.Join(outputDir, name+".stl")
		err := sh.RunV(bin, "build", name, "--length", catalogLength, "--quality", catalogQuality, "-o", output)
		if err != nil {
			return fmt.Errorf("export %s: %w", name, err)
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	for _, dir := range []string{binaryDir, outputDir} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return sh.RunV(binGo, "clean")
}
