package jobgrade

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	grades := r.Group("/job-grades")

	grades.Use(middleware.AuthMiddleware())

	{
		grades.GET("", h.GetAll)
		grades.POST("", h.Create)
		grades.GET("/:level", h.GetByLevel)
		grades.PUT("/:level", h.Update)
		grades.DELETE("/:level", h.Delete)
	}
}
