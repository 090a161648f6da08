package deps

import (
	"context"

	"github.com/arthur-debert/unbrew/pkg/brew"
	"github.com/arthur-debert/unbrew/pkg/logging"
)

// MetadataSource fetches formula metadata in one batch.
type MetadataSource interface {
	Info(ctx context.Context, names []string) ([]brew.Formula, error)
}

// Gateway is the read-only part of brew the orphan scan needs.
type Gateway interface {
	MetadataSource
	ListInstalled(ctx context.Context) ([]string, error)
}

// BuildSet computes the Dependency Set of formulas.
func BuildSet(formulas []brew.Formula) Set {
	renames := make(map[string]string)
	used := make(Set)

	for _, f := range formulas {
		for _, old := range f.OldNames {
			renames[old] = f.FullName
		}
		for _, dep := range f.Dependencies {
			used.Add(dep)
		}
		for _, inst := range f.Installed {
			for _, dep := range inst.RuntimeDependencies {
				used.Add(dep)
			}
		}
		if f.Bottle {
			continue
		}
		for _, dep := range f.BuildDependencies {
			used.Add(dep)
		}
	}

	for old, current := range renames {
		if used.Contains(current) {
			used.Add(old)
		}
	}

	return used
}

// DependencySet fetches metadata for names and builds their Dependency Set.
func DependencySet(ctx context.Context, src MetadataSource, names []string) (Set, error) {
	formulas, err := src.Info(ctx, names)
	if err != nil {
		return nil, err
	}
	return BuildSet(formulas), nil
}

// Subtract returns the names in installed that are not in used, keeping
// their order.
func Subtract(installed []string, used Set) []string {
	orphans := make([]string, 0, len(installed))
	for _, name := range installed {
		if !used.Contains(name) {
			orphans = append(orphans, name)
		}
	}
	return orphans
}

// Orphans lists installed formulas that no installed formula depends on, in
// the order brew lists them.
func Orphans(ctx context.Context, gw Gateway) ([]string, error) {
	logger := logging.GetLogger("deps.orphans")

	installed, err := gw.ListInstalled(ctx)
	if err != nil {
		return nil, err
	}

	used, err := DependencySet(ctx, gw, installed)
	if err != nil {
		return nil, err
	}

	orphans := Subtract(installed, used)
	logger.Debug().
		Int("installed", len(installed)).
		Int("used", used.Len()).
		Int("orphans", len(orphans)).
		Msg("Computed orphan set")
	return orphans, nil
}
