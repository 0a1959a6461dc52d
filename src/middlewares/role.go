package middlewares

import (
	"net/http"
	"venise/src/types"

	"github.com/gin-gonic/gin"
)

// RequireRoles aborts with 403 unless the authenticated user holds one of
// the listed roles. Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString("role")
		for _, r := range roles {
			if role == r {
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}

// IsStaff reports whether the request carries an admin or superadmin role.
func IsStaff(ctx *gin.Context) bool {
	role := ctx.GetString("role")
	return role == string(types.ROLE_ADMIN) || role == string(types.ROLE_SUPERADMIN)
}
