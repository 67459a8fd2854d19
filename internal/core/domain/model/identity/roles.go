package identity

import (
	"errors"
	"slices"
)

// Roles is an ordered set of roles. Order is the order of first appearance,
// which keeps token claims stable across issue/decode round trips.
// The zero value is the empty set.
type Roles struct {
	items []Role
}

// NewRoles builds a set, dropping duplicates. Every role must be valid.
func NewRoles(roles ...Role) (Roles, error) {
	set := Roles{items: make([]Role, 0, len(roles))}
	var errList []error
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if !slices.Contains(set.items, role) {
			set.items = append(set.items, role)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Roles{}, err
	}
	return set, nil
}

// MustRoles is NewRoles for static tables; it panics on an invalid role.
func MustRoles(roles ...Role) Roles {
	set, err := NewRoles(roles...)
	if err != nil {
		panic(err)
	}
	return set
}

// RolesFromStrings parses wire names, e.g. from token claims or a database row.
func RolesFromStrings(names []string) (Roles, error) {
	roles := make([]Role, 0, len(names))
	var errList []error
	for _, name := range names {
		role, err := RoleFromString(name)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		roles = append(roles, role)
	}
	if err := errors.Join(errList...); err != nil {
		return Roles{}, err
	}
	return NewRoles(roles...)
}

func (r Roles) Has(role Role) bool {
	return slices.Contains(r.items, role)
}

// Intersects reports whether at least one role is shared.
func (r Roles) Intersects(other Roles) bool {
	for _, role := range r.items {
		if other.Has(role) {
			return true
		}
	}
	return false
}

func (r Roles) IsEmpty() bool {
	return len(r.items) == 0
}

func (r Roles) Len() int {
	return len(r.items)
}

// Slice returns a copy of the roles in set order.
func (r Roles) Slice() []Role {
	return slices.Clone(r.items)
}

// Strings returns the wire names in set order.
func (r Roles) Strings() []string {
	names := make([]string, len(r.items))
	for i, role := range r.items {
		names[i] = role.String()
	}
	return names
}
