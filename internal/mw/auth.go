package mw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratheesh-12/HostelMS/internal/authz"
	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/session"
)

// UserKey is the gin context key the authenticated identity is stored under.
const UserKey = "currentUser"

// Auth rejects requests when no session identity is present, mirroring the
// dashboard layout's redirect to the login page. On success the identity is
// placed in the request context for handlers.
func Auth(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessions.Current()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// Role fails closed with 403 when the identity does not satisfy the
// required role. Must run after Auth.
func Role(policy *authz.Policy, required ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !policy.AllowedAny(user, required...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity stored by Auth. It returns the zero User
// when called outside an authenticated route.
func CurrentUser(c *gin.Context) model.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return model.User{}
	}
	u, _ := v.(model.User)
	return u
}
