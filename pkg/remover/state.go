package remover

// State is the phase of a cascade removal.
type State int

const (
	// StateIdle is the state before RemoveWithDependencies starts.
	StateIdle State = iota
	// StateBaselineComputed means the initial orphan set is known.
	StateBaselineComputed
	// StateRemoving means the work stack is being drained.
	StateRemoving
	// StateRescanning means the orphan set is being recomputed.
	StateRescanning
	// StateDone means a rescan found nothing new, or the target was refused.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBaselineComputed:
		return "baseline-computed"
	case StateRemoving:
		return "removing"
	case StateRescanning:
		return "rescanning"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
