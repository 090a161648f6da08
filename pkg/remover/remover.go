// Package remover removes a formula together with every dependency that
// becomes unused because of it.
//
// The cascade never walks a dependency graph. It fixes a baseline orphan set
// before touching anything, removes, and then asks brew again: any orphan
// that was not in the baseline was freed by this run and is removed next.
// The loop ends when a rescan turns up nothing new.
package remover

import (
	"context"

	"github.com/arthur-debert/unbrew/pkg/deps"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/rs/zerolog"
)

// Gateway is the part of brew a cascade needs.
type Gateway interface {
	deps.Gateway
	Remove(ctx context.Context, name string) error
}

// Reporter receives progress as the cascade runs.
type Reporter interface {
	// Removing is called right before name is removed.
	Removing(name string)
	// FoundUnused is called for each newly orphaned formula.
	FoundUnused(name string)
	// IsDependency is called when the target is still needed by something.
	IsDependency(name string)
}

// Result summarises a cascade.
type Result struct {
	Target string
	// Dependency is true when the target was refused because another
	// installed formula needs it. Nothing was removed in that case.
	Dependency bool
	// Removed lists formulas in the order they were removed.
	Removed []string
	// Discovered lists newly orphaned formulas in the order they were found.
	Discovered []string
	// Iterations counts drain-and-rescan rounds.
	Iterations int
}

// Remover runs cascade removals against a Gateway.
type Remover struct {
	gw       Gateway
	reporter Reporter
	logger   zerolog.Logger
	state    State
}

// New creates a Remover.
func New(gw Gateway, reporter Reporter) *Remover {
	return &Remover{
		gw:       gw,
		reporter: reporter,
		logger:   logging.GetLogger("remover"),
		state:    StateIdle,
	}
}

// State returns the phase the last call reached.
func (r *Remover) State() State {
	return r.state
}

func (r *Remover) transition(s State) {
	r.logger.Debug().Str("from", r.state.String()).Str("to", s.String()).Msg("State change")
	r.state = s
}

// RemoveWithDependencies removes target, then keeps removing formulas that
// become orphaned, until a rescan finds no new ones.
//
// The target must itself be an orphan; otherwise the reporter is told and
// nothing is removed. The first failing brew call aborts the cascade.
// Formulas already removed stay removed.
func (r *Remover) RemoveWithDependencies(ctx context.Context, target string) (*Result, error) {
	r.state = StateIdle
	result := &Result{Target: target}

	initial, err := deps.Orphans(ctx, r.gw)
	if err != nil {
		return result, err
	}
	baseline := deps.NewSet(initial...)
	r.transition(StateBaselineComputed)
	r.logger.Info().Str("target", target).Strs("baseline", initial).Msg("Baseline orphans computed")

	if !baseline.Contains(target) {
		r.reporter.IsDependency(target)
		result.Dependency = true
		r.transition(StateDone)
		return result, nil
	}

	removed := make(deps.Set)
	stack := []string{target}
	for {
		result.Iterations++

		r.transition(StateRemoving)
		for len(stack) > 0 {
			name := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			r.reporter.Removing(name)
			if err := r.gw.Remove(ctx, name); err != nil {
				return result, err
			}
			removed.Add(name)
			result.Removed = append(result.Removed, name)
		}

		r.transition(StateRescanning)
		current, err := deps.Orphans(ctx, r.gw)
		if err != nil {
			return result, err
		}
		for _, name := range current {
			if baseline.Contains(name) {
				continue
			}
			if removed.Contains(name) {
				r.logger.Warn().Str("formula", name).Msg("Formula still listed after removal, not removing again")
				continue
			}
			r.reporter.FoundUnused(name)
			result.Discovered = append(result.Discovered, name)
			stack = append(stack, name)
		}

		if len(stack) == 0 {
			break
		}
	}

	r.transition(StateDone)
	r.logger.Info().
		Str("target", target).
		Strs("removed", result.Removed).
		Int("iterations", result.Iterations).
		Msg("Cascade removal finished")
	return result, nil
}
