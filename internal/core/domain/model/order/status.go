package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"forwarding/internal/pkg/errs"
)

// ErrIllegalTransition is the sentinel behind IllegalTransitionError.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status is the lifecycle state of a forwarding order.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota
	AssignedToCompanyTruck
	AssignedToCarrier
	OnLoading
	OnTheWayToUnloading
	OnUnloading
	Unloaded
	Cancelled
)

func getStatusNames() map[Status]string {
	return map[Status]string{
		AssignedToCompanyTruck: "ASSIGNED_TO_COMPANY_TRUCK",
		AssignedToCarrier:      "ASSIGNED_TO_CARRIER",
		OnLoading:              "ON_LOADING",
		OnTheWayToUnloading:    "ON_THE_WAY_TO_UNLOADING",
		OnUnloading:            "ON_UNLOADING",
		Unloaded:               "UNLOADED",
		Cancelled:              "CANCELLED",
	}
}

// getForwardSuccessors lists the non-cancelling successor of every status.
// CANCELLED is added for every non-terminal status by Successors.
func getForwardSuccessors() map[Status]Status {
	return map[Status]Status{
		AssignedToCompanyTruck: OnLoading,
		AssignedToCarrier:      OnLoading,
		OnLoading:              OnTheWayToUnloading,
		OnTheWayToUnloading:    OnUnloading,
		OnUnloading:            Unloaded,
	}
}

// StatusFromString parses the wire name of a status.
func StatusFromString(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, statusName := range getStatusNames() {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// InitialStatus is the status of a newly created order: orders handed to an
// external carrier start as ASSIGNED_TO_CARRIER, the rest go to the company's
// own trucks.
func InitialStatus(hasCarrier bool) Status {
	if hasCarrier {
		return AssignedToCarrier
	}
	return AssignedToCompanyTruck
}

func (s Status) Validate() error {
	if _, ok := getStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Unloaded || s == Cancelled
}

// IsInitial reports whether s is one of the creation-time statuses.
func (s Status) IsInitial() bool {
	return s == AssignedToCompanyTruck || s == AssignedToCarrier
}

// Successors returns the statuses directly reachable from s.
func (s Status) Successors() []Status {
	if s.Validate() != nil || s.IsTerminal() {
		return nil
	}
	return []Status{getForwardSuccessors()[s], Cancelled}
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(s.Successors(), next)
}

// ValidateTransition checks the graph only. Staying in the same status is not
// a transition and is rejected here; idempotent retries are handled by the
// workflow before the graph is consulted.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(next) {
		return NewIllegalTransitionError(s, next)
	}
	return nil
}

// ValidateCanHaveCarrier checks that the creation-time statuses agree with
// the carrier assignment. Later statuses accept both, since the carrier
// assignment is frozen at creation.
func (s Status) ValidateCanHaveCarrier(hasCarrier bool) error {
	if s == AssignedToCarrier && !hasCarrier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s requires a carrier", s),
		)
	}
	if s == AssignedToCompanyTruck && hasCarrier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s must not have a carrier", s),
		)
	}
	return nil
}

// IllegalTransitionError reports a requested status that is not a successor
// of the current one.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
