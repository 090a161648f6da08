package main

import (
	"os"

	"github.com/arthur-debert/unbrew/cmd/unbrew"
)

func main() {
	os.Exit(unbrew.Run(os.Args[1:], os.Stdout, os.Stderr))
}
