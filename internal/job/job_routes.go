package job

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	jobs := r.Group("/jobs")

	jobs.Use(middleware.AuthMiddleware())

	{
		jobs.GET("", h.GetAll)
		jobs.POST("", h.Create)
		jobs.GET("/:id", h.GetByID)
		jobs.PUT("/:id", h.Update)
		jobs.DELETE("/:id", h.Delete)
	}
}
