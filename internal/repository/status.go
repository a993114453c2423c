package repository

// Ledger lifecycle states. RECONCILING is a sub-state of PENDING used when a
// submission timed out and the outcome is unknown; it is resolved by the
// confirmation source or an operator, never by a blind retry.
const (
	StatusPending     = "pending"
	StatusReconciling = "reconciling"
	StatusConfirmed   = "confirmed"
	StatusFailed      = "failed"
)

var statusTransitions = map[string]map[string]struct{}{
	StatusPending: {
		StatusReconciling: {},
		StatusConfirmed:   {},
		StatusFailed:      {},
	},
	StatusReconciling: {
		StatusConfirmed: {},
		StatusFailed:    {},
	},
	StatusConfirmed: {},
	StatusFailed:    {},
}

func isTerminal(status string) bool {
	next, ok := statusTransitions[status]
	return ok && len(next) == 0
}

func canTransition(current, next string) bool {
	allowed, ok := statusTransitions[current]
	if !ok {
		return false
	}
	_, ok = allowed[next]
	return ok
}
