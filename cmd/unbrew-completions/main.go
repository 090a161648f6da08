// Command unbrew-completions writes shell completion scripts for unbrew.
//
//	unbrew-completions <shell>          script on stdout
//	unbrew-completions <shell|all> DIR  scripts under DIR, named as each shell expects
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/unbrew/cmd/unbrew"
)

type generator struct {
	// file is the conventional script name for the shell.
	file string
	gen  func(root *cobra.Command, w io.Writer) error
}

var generators = map[string]generator{
	"bash": {
		file: "unbrew",
		gen:  func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	},
	"zsh": {
		file: "_unbrew",
		gen:  (*cobra.Command).GenZshCompletion,
	},
	"fish": {
		file: "unbrew.fish",
		gen:  func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
	"powershell": {
		file: "unbrew.ps1",
		gen:  (*cobra.Command).GenPowerShellCompletionWithDesc,
	},
}

func shells() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintf(stderr, "Usage: unbrew-completions <%s|all> [DIR]\n", joinShells())
		return 1
	}

	targets := []string{args[0]}
	if args[0] == "all" {
		if len(args) == 1 {
			fmt.Fprintln(stderr, "all requires an output directory")
			return 1
		}
		targets = shells()
	}
	for _, shell := range targets {
		if _, ok := generators[shell]; !ok {
			fmt.Fprintf(stderr, "Unknown shell: %s\n", shell)
			fmt.Fprintf(stderr, "Supported shells: %s\n", joinShells())
			return 1
		}
	}

	root := unbrew.NewRootCmd()

	if len(args) == 1 {
		if err := generators[args[0]].gen(root, stdout); err != nil {
			fmt.Fprintf(stderr, "Error generating %s completion: %v\n", args[0], err)
			return 1
		}
		return 0
	}

	dir := args[1]
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(stderr, "Error creating %s: %v\n", dir, err)
		return 1
	}
	for _, shell := range targets {
		path := filepath.Join(dir, generators[shell].file)
		if err := writeScript(root, shell, path); err != nil {
			fmt.Fprintf(stderr, "Error generating %s completion: %v\n", shell, err)
			return 1
		}
		fmt.Fprintln(stdout, path)
	}
	return 0
}

func writeScript(root *cobra.Command, shell, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := generators[shell].gen(root, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func joinShells() string {
	return strings.Join(shells(), "|")
}
