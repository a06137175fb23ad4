package user

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

// User administration is admin-only; the RBAC policy denies the user role
// access to /users.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer rbac.Enforcer) {
	users := r.Group("/users")

	users.Use(middleware.AuthMiddleware())
	users.Use(rbac.Authorize(enforcer))

	{
		users.GET("", h.GetAll)
		users.POST("", h.Create)
		users.GET("/:id", h.GetByID)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
