package region

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	regions := r.Group("/regions")

	regions.Use(middleware.AuthMiddleware())

	{
		regions.GET("", h.GetAll)
		regions.POST("", h.Create)
		regions.GET("/:id", h.GetByID)
		regions.GET("/:id/countries", h.GetCountries)
		regions.PUT("/:id", h.Update)
		regions.DELETE("/:id", h.Delete)
	}
}
