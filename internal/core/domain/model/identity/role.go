package identity

import (
	"fmt"
	"strings"

	"forwarding/internal/pkg/errs"
)

// Role is a named permission group of an employee.
type Role int

const (
	// UnknownRole is the zero value and never granted.
	UnknownRole Role = iota
	Admin
	Planner
	Forwarder
)

func getRoleNames() map[Role]string {
	return map[Role]string{
		Admin:     "ADMIN",
		Planner:   "PLANNER",
		Forwarder: "FORWARDER",
	}
}

// RoleFromString parses the wire name of a role. Matching ignores case and
// surrounding whitespace; an optional "ROLE_" prefix is accepted for
// compatibility with role names stored by older tooling.
func RoleFromString(s string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "ROLE_")
	for role, roleName := range getRoleNames() {
		if roleName == name {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if _, ok := getRoleNames()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := getRoleNames()[r]; ok {
		return name
	}
	return "UNKNOWN"
}
