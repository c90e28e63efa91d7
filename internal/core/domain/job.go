package domain

import "go.trai.ch/zerr"

// JobState is the lifecycle state of one platform pipeline job.
type JobState string

const (
	// JobUnprovisioned is the initial state before dependencies exist.
	JobUnprovisioned JobState = "unprovisioned"
	// JobProvisioned means the dependency set is fully satisfied.
	JobProvisioned JobState = "provisioned"
	// JobFrozen means the freeze recipe produced its bundles.
	JobFrozen JobState = "frozen"
	// JobPackaged is the terminal success state: artifacts collected.
	JobPackaged JobState = "packaged"
	// JobFailed is the terminal failure state, scoped to this platform only.
	JobFailed JobState = "failed"
)

// IsTerminal reports whether the state ends the job.
func (s JobState) IsTerminal() bool {
	return s == JobPackaged || s == JobFailed
}

// allowedTransitions encodes UNPROVISIONED → PROVISIONED → FROZEN →
// (PACKAGED | FAILED). Any state may fail; terminal states transition nowhere.
func allowedTransition(from, to JobState) bool {
	if to == JobFailed {
		return !from.IsTerminal()
	}
	switch from {
	case JobUnprovisioned:
		return to == JobProvisioned
	case JobProvisioned:
		return to == JobFrozen
	case JobFrozen:
		return to == JobPackaged
	default:
		return false
	}
}

// Transition validates and applies a state change, returning the new state.
// A disallowed transition is a programming error in the pipeline, not a build
// failure, and is surfaced as ErrInvalidTransition.
func Transition(from, to JobState) (JobState, error) {
	if !allowedTransition(from, to) {
		err := zerr.With(ErrInvalidTransition, "from", string(from))
		return from, zerr.With(err, "to", string(to))
	}
	return to, nil
}
