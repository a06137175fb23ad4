package jobhistory

import (
	"context"
	"errors"
	"strings"
	"time"

	jobhistoryerrors "go-hrm/internal/jobhistory/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=jobhistory_service.go -destination=mock/jobhistory_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobHistoryRequest) (JobHistoryResponse, error)
	GetAll(ctx context.Context) ([]JobHistoryResponse, error)
	GetByKey(ctx context.Context, employeeID int, startDate string) (JobHistoryResponse, error)
	GetByEmployee(ctx context.Context, employeeID int) ([]JobHistoryResponse, error)
	Update(ctx context.Context, employeeID int, startDate string, req UpdateJobHistoryRequest) (JobHistoryResponse, error)
	Delete(ctx context.Context, employeeID int, startDate string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("jobhistory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jobhistory.service")
	}
	return &service{repo: repo, logger: l}
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, jobhistoryerrors.ErrInvalidDate
	}
	return parsed, nil
}

func (s *service) Create(ctx context.Context, req CreateJobHistoryRequest) (JobHistoryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create job history requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
	)

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return JobHistoryResponse{}, err
	}

	jh := JobHistory{
		EmployeeID:   req.EmployeeID,
		StartDate:    startDate,
		JobID:        strings.ToUpper(strings.TrimSpace(req.JobID)),
		DepartmentID: req.DepartmentID,
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return JobHistoryResponse{}, err
		}
		jh.EndDate = &endDate
	}
	if err := validateDateRange(&jh); err != nil {
		return JobHistoryResponse{}, err
	}

	err = s.repo.Tx(ctx, func(qtx Repository) error {
		if _, err := qtx.FindByKey(ctx, jh.EmployeeID, jh.StartDate); err == nil {
			return jobhistoryerrors.ErrHistoryAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ClassifyStorage(err)
		}

		if err := validateReferences(ctx, qtx, &jh); err != nil {
			return err
		}

		if err := qtx.Create(ctx, &jh); err != nil {
			if apperror.IsUniqueViolation(err, "") {
				return jobhistoryerrors.ErrHistoryAlreadyExists
			}
			if apperror.IsForeignKeyViolation(err) {
				return jobhistoryerrors.ErrEmployeeNotFound
			}
			return apperror.ClassifyStorage(err)
		}
		return nil
	})
	if err != nil {
		return JobHistoryResponse{}, err
	}

	return s.GetByKey(ctx, jh.EmployeeID, req.StartDate)
}

func (s *service) GetAll(ctx context.Context) ([]JobHistoryResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByKey(ctx context.Context, employeeID int, startDate string) (JobHistoryResponse, error) {
	parsed, err := parseDate(startDate)
	if err != nil {
		return JobHistoryResponse{}, err
	}

	jh, err := s.repo.FindByKey(ctx, employeeID, parsed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobHistoryResponse{}, jobhistoryerrors.ErrHistoryNotFound
		}
		return JobHistoryResponse{}, apperror.ClassifyStorage(err)
	}
	return mapToResponse(*jh), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID int) ([]JobHistoryResponse, error) {
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	if !exists {
		return nil, jobhistoryerrors.ErrEmployeeNotFound
	}

	records, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	return mapToListResponse(records), nil
}

func (s *service) Update(ctx context.Context, employeeID int, startDate string, req UpdateJobHistoryRequest) (JobHistoryResponse, error) {
	parsed, err := parseDate(startDate)
	if err != nil {
		return JobHistoryResponse{}, err
	}

	err = s.repo.Tx(ctx, func(qtx Repository) error {
		detail, err := qtx.FindByKey(ctx, employeeID, parsed)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jobhistoryerrors.ErrHistoryNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		jh := detail.JobHistory
		// A record with an end date is closed; only the job and department
		// references accept corrections after that.
		if req.EndDate != nil {
			if jh.EndDate != nil {
				return jobhistoryerrors.ErrHistoryClosed
			}
			endDate, err := parseDate(*req.EndDate)
			if err != nil {
				return err
			}
			jh.EndDate = &endDate
		}
		if req.JobID != nil {
			jh.JobID = strings.ToUpper(strings.TrimSpace(*req.JobID))
		}
		if req.DepartmentID != nil {
			jh.DepartmentID = req.DepartmentID
		}

		if err := validateDateRange(&jh); err != nil {
			return err
		}
		if err := validateReferences(ctx, qtx, &jh); err != nil {
			return err
		}

		if err := qtx.Update(ctx, &jh); err != nil {
			if apperror.IsForeignKeyViolation(err) {
				return jobhistoryerrors.ErrJobNotFound
			}
			return apperror.ClassifyStorage(err)
		}
		return nil
	})
	if err != nil {
		return JobHistoryResponse{}, err
	}

	return s.GetByKey(ctx, employeeID, startDate)
}

func (s *service) Delete(ctx context.Context, employeeID int, startDate string) error {
	parsed, err := parseDate(startDate)
	if err != nil {
		return err
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete job history requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", employeeID),
		zap.String("start_date", startDate),
	)

	return s.repo.Tx(ctx, func(qtx Repository) error {
		if _, err := qtx.FindByKey(ctx, employeeID, parsed); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jobhistoryerrors.ErrHistoryNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		if err := qtx.Delete(ctx, employeeID, parsed); err != nil {
			return apperror.ClassifyStorage(err)
		}
		return nil
	})
}

func mapToResponse(jh JobHistoryDetail) JobHistoryResponse {
	resp := JobHistoryResponse{
		EmployeeID:     jh.EmployeeID,
		StartDate:      jh.StartDate.Format(dateLayout),
		JobID:          jh.JobID,
		JobTitle:       jh.JobTitle,
		DepartmentID:   jh.DepartmentID,
		DepartmentName: jh.DepartmentName,
	}
	if jh.EndDate != nil {
		formatted := jh.EndDate.Format(dateLayout)
		resp.EndDate = &formatted
	}
	return resp
}

func mapToListResponse(records []JobHistoryDetail) []JobHistoryResponse {
	res := make([]JobHistoryResponse, len(records))
	for i, jh := range records {
		res[i] = mapToResponse(jh)
	}
	return res
}
