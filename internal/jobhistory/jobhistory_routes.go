package jobhistory

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	histories := r.Group("/job-history")

	histories.Use(middleware.AuthMiddleware())

	{
		histories.GET("", h.GetAll)
		histories.POST("", h.Create)
		histories.GET("/:employee_id/:start_date", h.GetByKey)
		histories.PUT("/:employee_id/:start_date", h.Update)
		histories.DELETE("/:employee_id/:start_date", h.Delete)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.GET("/:id/history", h.GetByEmployee)
}
