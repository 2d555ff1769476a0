package workflows

// Decision is the outcome of reconciling generated material with what is on disk.
type Decision int

const (
	DecisionSkipDryRun Decision = iota
	DecisionNotFound
	DecisionCreated
	DecisionExistsBlocked
	DecisionOverwritten
)

func (d Decision) String() string {
	switch d {
	case DecisionSkipDryRun:
		return "skip-dry-run"
	case DecisionNotFound:
		return "not-found"
	case DecisionCreated:
		return "created"
	case DecisionExistsBlocked:
		return "exists-blocked"
	case DecisionOverwritten:
		return "overwritten"
	default:
		return "unknown"
	}
}

// Persisted reports whether the decision wrote material to disk.
func (d Decision) Persisted() bool {
	return d == DecisionCreated || d == DecisionOverwritten
}

// ExitCode is the process exit code a command reports for the decision.
func (d Decision) ExitCode() int {
	switch d {
	case DecisionSkipDryRun, DecisionCreated, DecisionOverwritten:
		return 0
	default:
		return 1
	}
}
