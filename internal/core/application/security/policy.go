package security

import (
	"fmt"
	"net/http"
	"strings"

	"forwarding/internal/core/domain/model/identity"
)

// DenyReason tells the transport which rejection to render.
type DenyReason int

const (
	NotDenied DenyReason = iota
	// Unauthorized means no usable identity was presented.
	Unauthorized
	// Forbidden means the identity lacks every permitted role.
	Forbidden
)

func (r DenyReason) String() string {
	switch r {
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "allowed"
	}
}

// Decision is the outcome of AccessPolicy.Authorize.
type Decision struct {
	Reason DenyReason
}

func Allow() Decision {
	return Decision{Reason: NotDenied}
}

func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

func (d Decision) Allowed() bool {
	return d.Reason == NotDenied
}

// Rule maps a method and a route pattern to the roles that may call it.
// A public rule admits anonymous callers; otherwise Roles must be non-empty.
type Rule struct {
	Method string
	Route  string
	Public bool
	Roles  identity.Roles
}

// PublicRule admits everybody.
func PublicRule(method, route string) Rule {
	return Rule{Method: method, Route: route, Public: true}
}

// RoleRule admits callers holding at least one of roles.
func RoleRule(method, route string, roles ...identity.Role) Rule {
	return Rule{Method: method, Route: route, Roles: identity.MustRoles(roles...)}
}

type ruleKey struct {
	method string
	route  string
}

// AccessPolicy is an immutable rule table. Routes without a rule are open to
// any authenticated caller.
type AccessPolicy struct {
	rules map[ruleKey]Rule
}

// NewAccessPolicy rejects duplicate and role-less non-public rules.
func NewAccessPolicy(rules ...Rule) (AccessPolicy, error) {
	table := make(map[ruleKey]Rule, len(rules))
	for _, rule := range rules {
		key := ruleKey{method: strings.ToUpper(rule.Method), route: rule.Route}
		if _, exists := table[key]; exists {
			return AccessPolicy{}, fmt.Errorf("duplicate access rule for %s %s", key.method, key.route)
		}
		if !rule.Public && rule.Roles.IsEmpty() {
			return AccessPolicy{}, fmt.Errorf("access rule for %s %s permits no role", key.method, key.route)
		}
		table[key] = rule
	}
	return AccessPolicy{rules: table}, nil
}

// Authorize decides whether sc may call method on the route pattern, e.g.
// "/orders/:id/status" rather than the concrete path.
func (p AccessPolicy) Authorize(method, route string, sc identity.SecurityContext) Decision {
	rule, ok := p.rules[ruleKey{method: strings.ToUpper(method), route: route}]
	if ok && rule.Public {
		return Allow()
	}
	if !sc.IsAuthenticated() {
		return Deny(Unauthorized)
	}
	if !ok {
		return Allow()
	}
	if !sc.Roles().Intersects(rule.Roles) {
		return Deny(Forbidden)
	}
	return Allow()
}

// Rules returns the table, e.g. for startup logging.
func (p AccessPolicy) Rules() []Rule {
	out := make([]Rule, 0, len(p.rules))
	for _, rule := range p.rules {
		out = append(out, rule)
	}
	return out
}

// DefaultRules is the route table of the HTTP API.
func DefaultRules() []Rule {
	return []Rule{
		PublicRule(http.MethodPost, "/auth/login"),
		PublicRule(http.MethodGet, "/health"),
		PublicRule(http.MethodGet, "/openapi.json"),
		PublicRule(http.MethodGet, "/swagger/*"),

		RoleRule(http.MethodGet, "/warehouses", identity.Admin, identity.Planner, identity.Forwarder),

		RoleRule(http.MethodGet, "/carriers", identity.Admin, identity.Planner),
		RoleRule(http.MethodPost, "/carriers", identity.Admin, identity.Planner),

		RoleRule(http.MethodPost, "/orders", identity.Admin, identity.Planner),
		RoleRule(http.MethodGet, "/orders/active", identity.Admin, identity.Planner, identity.Forwarder),
		RoleRule(http.MethodGet, "/orders/:id", identity.Admin, identity.Planner, identity.Forwarder),
		RoleRule(http.MethodPatch, "/orders/:id/status", identity.Admin, identity.Planner, identity.Forwarder),

		RoleRule(http.MethodPost, "/users", identity.Admin),
	}
}

// NewDefaultAccessPolicy builds the policy from DefaultRules.
func NewDefaultAccessPolicy() AccessPolicy {
	policy, err := NewAccessPolicy(DefaultRules()...)
	if err != nil {
		panic(err)
	}
	return policy
}
