package rider

import (
	"fmt"

	"profast/internal/pkg/errs"
)

// Status is the onboarding state of a rider application.
//
//	Pending ──┬──> Active
//	          └──> Rejected
//
// Both outcomes are final.
type Status int

const (
	Unknown Status = iota
	Pending
	Active
	Rejected
)

var statusNames = map[Status]string{
	Pending:  "pending",
	Active:   "active",
	Rejected: "rejected",
}

// ParseStatus accepts "pending", "active" and "rejected".
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid rider status", s))
}

// Validate rejects Unknown.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Decide transitions Pending to the given outcome (Active or Rejected).
func (s Status) Decide(outcome Status) (Status, error) {
	if outcome != Active && outcome != Rejected {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a decision", outcome))
	}
	if s != Pending {
		return Unknown, errs.NewConflictError("rider", fmt.Sprintf("application is already %s", s))
	}
	return outcome, nil
}
