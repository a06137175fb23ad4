package rbac

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize enforces the policy against the request path and method. It runs
// after AuthMiddleware, which sets is_admin from the token claims.
func Authorize(enforcer Enforcer) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleUser
		if c.GetBool("is_admin") {
			role = RoleAdmin
		}

		allowed, err := enforcer.Enforce(role, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Admin privileges required", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
