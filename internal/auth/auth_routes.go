package auth

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")

	// Credential endpoints get a tight per-IP budget.
	authGroup.Use(middleware.RateLimitByIP(rate.Limit(5), 10))

	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), h.GetMe)
	}
}
