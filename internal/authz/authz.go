// Package authz is the single authorization policy for the dashboard.
// Every protected route consults Allowed instead of comparing roles inline,
// and a wrong role always fails closed.
package authz

import "github.com/ratheesh-12/HostelMS/internal/model"

// Policy decides whether an identity may use a route.
type Policy struct{}

// New returns the dashboard policy.
func New() *Policy {
	return &Policy{}
}

// Allowed reports whether the user satisfies the required role. An empty
// requirement admits any authenticated user.
func (p *Policy) Allowed(user model.User, required model.Role) bool {
	if required == "" {
		return true
	}
	return user.Role == required
}

// AllowedAny reports whether the user holds one of the required roles.
func (p *Policy) AllowedAny(user model.User, required ...model.Role) bool {
	for _, r := range required {
		if user.Role == r {
			return true
		}
	}
	return false
}
