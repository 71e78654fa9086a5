package shift

// VerdictReason tags the outcome of an assignment validation. Verdicts are
// plain values, never errors: an ineligible assignment is a normal result.
type VerdictReason string

const (
	ReasonEligible                 VerdictReason = "eligible"
	ReasonEmployeeNotFound         VerdictReason = "employee_not_found"
	ReasonEmployeeInactive         VerdictReason = "employee_inactive"
	ReasonConflictingShifts        VerdictReason = "conflicting_shifts"
	ReasonEmployeeUnavailableOnDay VerdictReason = "employee_unavailable_on_day"
	ReasonInsufficientSkills       VerdictReason = "insufficient_skills"
	ReasonTimeOffConflict          VerdictReason = "time_off_conflict"
)

// AssignmentVerdict is the result of validating a proposed employee
// assignment. Conflicts is populated only for ReasonConflictingShifts.
type AssignmentVerdict struct {
	Eligible  bool          `json:"eligible"`
	Reason    VerdictReason `json:"reason"`
	Conflicts []Shift       `json:"conflicts,omitempty"`
}

// EligibleVerdict is the verdict for a valid assignment.
func EligibleVerdict() AssignmentVerdict {
	return AssignmentVerdict{Eligible: true, Reason: ReasonEligible}
}

// IneligibleVerdict builds a failed verdict with the given reason.
func IneligibleVerdict(reason VerdictReason) AssignmentVerdict {
	return AssignmentVerdict{Eligible: false, Reason: reason}
}
