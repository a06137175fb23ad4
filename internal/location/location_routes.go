package location

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	locations := r.Group("/locations")

	locations.Use(middleware.AuthMiddleware())

	{
		locations.GET("", h.GetAll)
		locations.POST("", h.Create)
		locations.GET("/:id", h.GetByID)
		locations.PUT("/:id", h.Update)
		locations.DELETE("/:id", h.Delete)
	}
}
