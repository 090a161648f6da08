package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/unbrew/cmd/unbrew"
	"github.com/arthur-debert/unbrew/internal/version"
)

func main() {
	rootCmd := unbrew.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "UNBREW",
		Section: "1",
		Source:  "unbrew " + version.Version,
		Manual:  "unbrew manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
