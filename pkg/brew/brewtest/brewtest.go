// Package brewtest provides an in-memory Homebrew for tests.
//
// FakeBrew implements brew.Runner and answers the same three invocation
// shapes the real executable does, backed by a formula table that rm
// mutates. Tests can wire it into a brew.Client and exercise everything
// above the process boundary.
package brewtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/unbrew/pkg/brew"
)

// FakeBrew is a scripted brew executable.
type FakeBrew struct {
	formulas  map[string]brew.Formula
	installed []string
	removed   []string

	// Calls records the arguments of every invocation, in order.
	Calls [][]string
	// FailList, FailInfo make the corresponding call exit 1 with the value
	// as stderr.
	FailList string
	FailInfo string
	// FailRemove maps a formula name to the stderr of a failing rm.
	FailRemove map[string]string
	// ListOutput, when set, replaces the stdout of list.
	ListOutput []byte
	// InfoOutput, when set, replaces the stdout of info.
	InfoOutput []byte
	// KeepOnRemove names formulas that rm reports as removed but leaves
	// installed.
	KeepOnRemove map[string]bool
}

// New creates a fake with formulas installed in the given order.
func New(formulas ...brew.Formula) *FakeBrew {
	f := &FakeBrew{
		formulas:     make(map[string]brew.Formula),
		FailRemove:   make(map[string]string),
		KeepOnRemove: make(map[string]bool),
	}
	for _, formula := range formulas {
		f.Install(formula)
	}
	return f
}

// Install adds a formula to the installed set.
func (f *FakeBrew) Install(formula brew.Formula) {
	if _, ok := f.formulas[formula.FullName]; !ok {
		f.installed = append(f.installed, formula.FullName)
	}
	f.formulas[formula.FullName] = formula
}

// Installed returns installed formula names in install order.
func (f *FakeBrew) Installed() []string {
	return append([]string(nil), f.installed...)
}

// Removed returns the names passed to successful rm calls, in order.
func (f *FakeBrew) Removed() []string {
	return append([]string(nil), f.removed...)
}

// CallCount returns how many invocations used the given subcommand.
func (f *FakeBrew) CallCount(subcommand string) int {
	n := 0
	for _, call := range f.Calls {
		if len(call) > 0 && call[0] == subcommand {
			n++
		}
	}
	return n
}

// Run implements brew.Runner.
func (f *FakeBrew) Run(_ context.Context, _ string, args ...string) (brew.Output, error) {
	f.Calls = append(f.Calls, append([]string(nil), args...))
	if len(args) == 0 {
		return failure("Example usage:\n  brew search TEXT|/REGEX/\n"), nil
	}

	switch args[0] {
	case "list":
		return f.list()
	case "info":
		return f.info(args[1:])
	case "rm":
		return f.remove(args[1:])
	default:
		return failure(fmt.Sprintf("Error: Unknown command: brew %s\n", args[0])), nil
	}
}

func (f *FakeBrew) list() (brew.Output, error) {
	if f.FailList != "" {
		return failure(f.FailList), nil
	}
	if f.ListOutput != nil {
		return brew.Output{Stdout: f.ListOutput}, nil
	}
	var b strings.Builder
	for _, name := range f.installed {
		b.WriteString(name)
		b.WriteString("\n")
	}
	return brew.Output{Stdout: []byte(b.String())}, nil
}

func (f *FakeBrew) info(args []string) (brew.Output, error) {
	if f.FailInfo != "" {
		return failure(f.FailInfo), nil
	}
	if f.InfoOutput != nil {
		return brew.Output{Stdout: f.InfoOutput}, nil
	}
	if len(args) == 0 || args[0] != "--json" {
		return failure("Error: this fake only answers brew info --json\n"), nil
	}

	var batch []brew.Formula
	for _, name := range args[1:] {
		formula, ok := f.formulas[name]
		if !ok || !f.isInstalled(name) {
			return failure(fmt.Sprintf("Error: No available formula with the name %q.\n", name)), nil
		}
		batch = append(batch, formula)
	}

	data, err := MarshalFormulae(batch)
	if err != nil {
		return brew.Output{}, err
	}
	return brew.Output{Stdout: data}, nil
}

func (f *FakeBrew) remove(args []string) (brew.Output, error) {
	if len(args) != 1 {
		return failure("Error: This command requires a keg argument.\n"), nil
	}
	name := args[0]
	if stderr, ok := f.FailRemove[name]; ok {
		return failure(stderr), nil
	}
	if !f.isInstalled(name) {
		return failure(fmt.Sprintf("Error: No such keg: /opt/homebrew/Cellar/%s\n", name)), nil
	}
	f.removed = append(f.removed, name)
	if f.KeepOnRemove[name] {
		return brew.Output{Stdout: []byte("Uninstalling " + name + "...\n")}, nil
	}

	kept := f.installed[:0]
	for _, n := range f.installed {
		if n != name {
			kept = append(kept, n)
		}
	}
	f.installed = kept
	return brew.Output{Stdout: []byte("Uninstalling /opt/homebrew/Cellar/" + name + "...\n")}, nil
}

func (f *FakeBrew) isInstalled(name string) bool {
	for _, n := range f.installed {
		if n == name {
			return true
		}
	}
	return false
}

func failure(stderr string) brew.Output {
	return brew.Output{Stderr: []byte(stderr), ExitCode: 1}
}

// MarshalFormulae renders formulas the way `brew info --json` does, including
// a few fields unbrew ignores.
func MarshalFormulae(formulas []brew.Formula) ([]byte, error) {
	docs := make([]map[string]interface{}, 0, len(formulas))
	for _, f := range formulas {
		installed := make([]map[string]interface{}, 0, len(f.Installed))
		for _, inst := range f.Installed {
			deps := make([]map[string]interface{}, 0, len(inst.RuntimeDependencies))
			for _, dep := range inst.RuntimeDependencies {
				deps = append(deps, map[string]interface{}{
					"full_name":         dep,
					"version":           "1.0",
					"declared_directly": true,
				})
			}
			installed = append(installed, map[string]interface{}{
				"version":              "1.0",
				"runtime_dependencies": deps,
				"installed_on_request": true,
			})
		}

		short := f.FullName
		if i := strings.LastIndex(short, "/"); i >= 0 {
			short = short[i+1:]
		}

		docs = append(docs, map[string]interface{}{
			"name":               short,
			"full_name":          f.FullName,
			"oldnames":           nonNil(f.OldNames),
			"aliases":            []string{},
			"desc":               "fake formula " + short,
			"dependencies":       nonNil(f.Dependencies),
			"build_dependencies": nonNil(f.BuildDependencies),
			"versions": map[string]interface{}{
				"stable": "1.0",
				"head":   nil,
				"bottle": f.Bottle,
			},
			"installed": installed,
		})
	}
	return json.Marshal(docs)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
