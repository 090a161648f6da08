package brew

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/arthur-debert/unbrew/pkg/errors"
)

// Formula holds the parts of `brew info --json` output unbrew consumes.
type Formula struct {
	// FullName is the canonical name, including the tap prefix for
	// formulas outside homebrew/core.
	FullName string
	// OldNames are names the formula was previously known by.
	OldNames []string
	// Dependencies are the declared runtime dependencies.
	Dependencies []string
	// BuildDependencies are only needed to build from source.
	BuildDependencies []string
	// Bottle reports whether a precompiled binary exists.
	Bottle bool
	// Installed has one record per installed version.
	Installed []InstalledVersion
}

// InstalledVersion describes one installed keg.
type InstalledVersion struct {
	// RuntimeDependencies are the full names linked at install time.
	RuntimeDependencies []string
}

// Wire types. Pointers tell a missing or null field apart from an empty one;
// any missing field rejects the whole document.
type formulaJSON struct {
	FullName          *string          `json:"full_name"`
	OldNames          *[]string        `json:"oldnames"`
	Dependencies      *[]string        `json:"dependencies"`
	BuildDependencies *[]string        `json:"build_dependencies"`
	Versions          *versionsJSON    `json:"versions"`
	Installed         *[]installedJSON `json:"installed"`
}

type versionsJSON struct {
	Bottle *bool `json:"bottle"`
}

type installedJSON struct {
	RuntimeDependencies *[]runtimeDependencyJSON `json:"runtime_dependencies"`
}

type runtimeDependencyJSON struct {
	FullName *string `json:"full_name"`
}

// ParseFormulae decodes the JSON array printed by `brew info --json`.
func ParseFormulae(data []byte) ([]Formula, error) {
	if !utf8.Valid(data) {
		return nil, errors.New(errors.ErrBrewDecode, "unable to parse brew info result: output is not valid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var raw []formulaJSON
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrBrewDecode, "unable to parse brew info result")
	}
	if raw == nil {
		return nil, errors.New(errors.ErrBrewDecode, "unable to parse brew info result: expected a JSON array")
	}

	formulae := make([]Formula, 0, len(raw))
	for i, r := range raw {
		f, err := r.toFormula()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrBrewDecode, "unable to parse brew info result at index %d", i)
		}
		formulae = append(formulae, f)
	}
	return formulae, nil
}

func (r formulaJSON) toFormula() (Formula, error) {
	switch {
	case r.FullName == nil:
		return Formula{}, missing("full_name")
	case r.OldNames == nil:
		return Formula{}, missing("oldnames")
	case r.Dependencies == nil:
		return Formula{}, missing("dependencies")
	case r.BuildDependencies == nil:
		return Formula{}, missing("build_dependencies")
	case r.Versions == nil:
		return Formula{}, missing("versions")
	case r.Versions.Bottle == nil:
		return Formula{}, missing("versions.bottle")
	case r.Installed == nil:
		return Formula{}, missing("installed")
	}

	f := Formula{
		FullName:          *r.FullName,
		OldNames:          *r.OldNames,
		Dependencies:      *r.Dependencies,
		BuildDependencies: *r.BuildDependencies,
		Bottle:            *r.Versions.Bottle,
		Installed:         make([]InstalledVersion, 0, len(*r.Installed)),
	}

	for _, inst := range *r.Installed {
		if inst.RuntimeDependencies == nil {
			return Formula{}, missing("installed.runtime_dependencies")
		}
		deps := make([]string, 0, len(*inst.RuntimeDependencies))
		for _, dep := range *inst.RuntimeDependencies {
			if dep.FullName == nil {
				return Formula{}, missing("installed.runtime_dependencies.full_name")
			}
			deps = append(deps, *dep.FullName)
		}
		f.Installed = append(f.Installed, InstalledVersion{RuntimeDependencies: deps})
	}

	return f, nil
}

func missing(field string) error {
	return fmt.Errorf("field %q is missing", field)
}
