package jobgrade

import (
	"net/http"
	"strings"

	jobgradeerrors "go-hrm/internal/jobgrade/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("jobgrade.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jobgrade.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("job grade request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) pathLevel(c *gin.Context) (string, bool) {
	level := strings.TrimSpace(c.Param("level"))
	if level == "" || len(level) > 3 {
		h.writeServiceError(c, jobgradeerrors.ErrInvalidGradeLevel)
		return "", false
	}
	return level, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateJobGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "job_grade", resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job_grades", resp)
}

func (h *Handler) GetByLevel(c *gin.Context) {
	level, ok := h.pathLevel(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByLevel(c.Request.Context(), level)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job_grade", resp)
}

func (h *Handler) Update(c *gin.Context) {
	level, ok := h.pathLevel(c)
	if !ok {
		return
	}

	var req UpdateJobGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), level, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job_grade", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	level, ok := h.pathLevel(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), level); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Job grade deleted successfully")
}
