package submission

// Statuses lists every reachable submission state. submitted is the initial
// one; approved and rejected are terminal in practice but not enforced.
var Statuses = []Status{StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected}

func ValidStatus(s string) bool {
	for _, st := range Statuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

// CanTransition is the single choke point for status edges. Every edge
// between known statuses is currently allowed, including moving back to
// submitted; tighten the rule here if review flow ever becomes strict.
func CanTransition(from, to Status) bool {
	return ValidStatus(string(from)) && ValidStatus(string(to))
}
