package department

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/departments")

	departments.Use(middleware.AuthMiddleware())

	{
		departments.GET("", h.GetAll)
		departments.POST("", h.Create)
		departments.GET("/:id", h.GetByID)
		departments.GET("/:id/employees", h.GetEmployees)
		departments.PUT("/:id", h.Update)
		departments.DELETE("/:id", h.Delete)
	}
}
