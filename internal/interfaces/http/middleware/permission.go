package middleware

import (
	"github.com/gin-gonic/gin"

	domainpermission "github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/shared/constants"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/utils"
)

// CurrentPermissions returns the permission set cached on the request, or an
// empty set for anonymous requests.
func CurrentPermissions(c *gin.Context) domainpermission.PermissionSet {
	if v, ok := c.Get(constants.ContextKeyPermissions); ok {
		if set, ok := v.(domainpermission.PermissionSet); ok {
			return set
		}
	}
	return domainpermission.NewPermissionSet(nil)
}

// RequirePermission gates a route on one permission token. Runs after
// SessionAuth.Required, which put the set in the context.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentPermissions(c).Has(perm) {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAnyPermission passes when the user holds at least one of the given
// permission tokens.
func RequireAnyPermission(perms ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		set := CurrentPermissions(c)
		for _, perm := range perms {
			if set.Has(perm) {
				c.Next()
				return
			}
		}
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("insufficient permissions"))
		c.Abort()
	}
}
