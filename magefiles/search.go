//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Serve builds the CLI and runs the resource API in the foreground.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "serve")
}

// Search builds the CLI and searches the running API for topic.
// Usage: mage search "linear algebra"
func Search(topic string) error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "search", "--details", "--topic", topic)
}

func binPath() string {
	return filepath.Join(binDir, binName)
}
