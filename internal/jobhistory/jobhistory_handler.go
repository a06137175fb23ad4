package jobhistory

import (
	"net/http"
	"strconv"

	jobhistoryerrors "go-hrm/internal/jobhistory/errors"
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
	l := zap.L().Named("jobhistory.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jobhistory.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("job history request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) pathEmployeeID(c *gin.Context, param string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id <= 0 {
		h.writeServiceError(c, jobhistoryerrors.ErrInvalidEmployeeID)
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateJobHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "job_history", resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job_histories", resp)
}

func (h *Handler) GetByKey(c *gin.Context) {
	employeeID, ok := h.pathEmployeeID(c, "employee_id")
	if !ok {
		return
	}

	resp, err := h.service.GetByKey(c.Request.Context(), employeeID, c.Param("start_date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job_history", resp)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID, ok := h.pathEmployeeID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job_histories", resp)
}

func (h *Handler) Update(c *gin.Context) {
	employeeID, ok := h.pathEmployeeID(c, "employee_id")
	if !ok {
		return
	}

	var req UpdateJobHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), employeeID, c.Param("start_date"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "job_history", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	employeeID, ok := h.pathEmployeeID(c, "employee_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), employeeID, c.Param("start_date")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Job history record deleted successfully")
}
