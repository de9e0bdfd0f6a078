//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the meshmerge binary into bin/.
func (Build) All() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/meshmerge", "./cmd/meshmerge"), withStream())
	return err
}

// Runs go vet over every package.
func (Build) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

type Test mg.Namespace

// Runs the unit tests.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the unit tests with the race detector and a coverage profile.
func (Test) Race() error {
	mg.Deps(Build.Vet)
	_, err := executeCmd("go", withArgs("test", "-race", "-coverprofile=coverage.out", "./..."), withStream())
	return err
}

// Runs go mod tidy.
func Tidy() error {
	_, err := executeCmd("go", withArgs("mod", "tidy"))
	return err
}
