package main

import (
	"os"

	"github.com/birdayz/morse/pkg/cmd"
)

// Set by goreleaser via ldflags.
var (
	commit  = "HEAD"
	version = "latest"
)

func main() {
	if err := cmd.Execute(version, commit); err != nil {
		os.Exit(1)
	}
}
