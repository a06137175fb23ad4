package country

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	countries := r.Group("/countries")

	countries.Use(middleware.AuthMiddleware())

	{
		countries.GET("", h.GetAll)
		countries.POST("", h.Create)
		countries.GET("/:id", h.GetByID)
		countries.PUT("/:id", h.Update)
		countries.DELETE("/:id", h.Delete)
	}
}
