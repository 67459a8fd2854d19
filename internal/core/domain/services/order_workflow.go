package services

import (
	"fmt"

	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/core/domain/model/order"
)

// TransitionForbiddenError reports a legal transition the caller's roles do
// not allow.
type TransitionForbiddenError struct {
	From     order.Status
	To       order.Status
	Required identity.Roles
}

func (e *TransitionForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s -> %s requires one of %v", identity.ErrForbidden, e.From, e.To, e.Required.Strings())
}

func (e *TransitionForbiddenError) Unwrap() error {
	return identity.ErrForbidden
}

// OrderWorkflow is stateless; the zero value is ready to use and safe for
// concurrent use. Callers serialize transitions of one order themselves.
type OrderWorkflow struct{}

func NewOrderWorkflow() OrderWorkflow {
	return OrderWorkflow{}
}

// advancers may move an order forward, cancellers may cancel it.
var (
	advancers  = identity.MustRoles(identity.Forwarder, identity.Admin)
	cancellers = identity.MustRoles(identity.Planner, identity.Admin)
)

// RequiredRoles returns the roles of which the caller needs at least one to
// move an order to next.
func (w OrderWorkflow) RequiredRoles(next order.Status) identity.Roles {
	if next == order.Cancelled {
		return cancellers
	}
	return advancers
}

// Transition moves o to requested on behalf of a caller holding callerRoles
// and returns the resulting status.
//
// Checks run in a fixed order: an invalid status, then a no-op request for
// the current status (accepted for any caller), then the status graph, and
// only then the caller's roles. A caller without the right role therefore
// still learns that a transition is illegal rather than forbidden.
//
// On error o is left unchanged.
func (w OrderWorkflow) Transition(o *order.Order, requested order.Status, callerRoles identity.Roles) (order.Status, error) {
	if err := o.Validate(); err != nil {
		return order.Unknown, err
	}
	if err := requested.Validate(); err != nil {
		return o.Status(), err
	}

	current := o.Status()
	if requested == current {
		return current, nil
	}

	if err := current.ValidateTransition(requested); err != nil {
		return current, err
	}

	required := w.RequiredRoles(requested)
	if !callerRoles.Intersects(required) {
		return current, &TransitionForbiddenError{From: current, To: requested, Required: required}
	}

	if err := o.ApplyStatus(requested); err != nil {
		return current, err
	}
	return o.Status(), nil
}
