package department

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	departmenterrors "go-hrm/internal/department/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	departmentsCacheKey = "departments:all"
	departmentsCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id int) (DepartmentResponse, error)
	GetEmployees(ctx context.Context, id int) ([]EmployeeOption, error)
	Update(ctx context.Context, id int, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("department_name", req.DepartmentName),
	)

	var created Department
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		if req.DepartmentID != nil {
			if _, err := qtx.FindByID(ctx, *req.DepartmentID); err == nil {
				return departmenterrors.ErrDepartmentAlreadyExists
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ClassifyStorage(err)
			}
		}

		if err := validateRefs(ctx, qtx, req.ManagerID, req.LocationID); err != nil {
			return err
		}

		d := Department{
			DepartmentName: req.DepartmentName,
			ManagerID:      req.ManagerID,
			LocationID:     req.LocationID,
		}
		if req.DepartmentID != nil {
			d.DepartmentID = *req.DepartmentID
		}

		if err := qtx.Create(ctx, &d); err != nil {
			if apperror.IsUniqueViolation(err, "") {
				return departmenterrors.ErrDepartmentAlreadyExists
			}
			if apperror.IsForeignKeyViolation(err) {
				return departmenterrors.ErrManagerNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		created = d
		return nil
	})
	if err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidateCache(ctx)
	return s.GetByID(ctx, created.DepartmentID)
}

// GetAll serves from redis when the cache is warm; writes invalidate.
func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, departmentsCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	departments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}

	resp := mapToListResponse(departments)
	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, departmentsCacheKey, payload, departmentsCacheTTL).Err(); err != nil {
				s.logger.Warn("cache departments failed", zap.Error(err))
			}
		}
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id int) (DepartmentResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		return DepartmentResponse{}, apperror.ClassifyStorage(err)
	}
	return mapToResponse(*d), nil
}

func (s *service) GetEmployees(ctx context.Context, id int) ([]EmployeeOption, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	employees, err := s.repo.FindEmployees(ctx, id)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	return employees, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		detail, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return departmenterrors.ErrDepartmentNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		d := detail.Department
		if req.DepartmentName != nil {
			d.DepartmentName = *req.DepartmentName
		}
		if req.ManagerID != nil {
			d.ManagerID = req.ManagerID
		}
		if req.LocationID != nil {
			d.LocationID = req.LocationID
		}

		if err := validateRefs(ctx, qtx, d.ManagerID, d.LocationID); err != nil {
			return err
		}

		if err := qtx.Update(ctx, &d); err != nil {
			if apperror.IsForeignKeyViolation(err) {
				return departmenterrors.ErrManagerNotFound
			}
			return apperror.ClassifyStorage(err)
		}
		return nil
	})
	if err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidateCache(ctx)
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete department requested",
		zap.String("request_id", rid),
		zap.Int("department_id", id),
	)

	err := s.repo.Tx(ctx, func(qtx Repository) error {
		if _, err := qtx.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return departmenterrors.ErrDepartmentNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		if err := validateDelete(ctx, qtx, id); err != nil {
			return err
		}

		if err := qtx.Delete(ctx, id); err != nil {
			return apperror.ClassifyStorage(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, departmentsCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate departments cache failed", zap.Error(err))
	}
}

func mapToResponse(d DepartmentDetail) DepartmentResponse {
	managerName := strings.TrimSpace(d.ManagerFirstName + " " + d.ManagerLastName)
	return DepartmentResponse{
		DepartmentID:   d.DepartmentID,
		DepartmentName: d.DepartmentName,
		ManagerID:      d.ManagerID,
		ManagerName:    managerName,
		LocationID:     d.LocationID,
		LocationCity:   d.LocationCity,
		EmployeeCount:  d.EmployeeCount,
	}
}

func mapToListResponse(departments []DepartmentDetail) []DepartmentResponse {
	res := make([]DepartmentResponse, len(departments))
	for i, d := range departments {
		res[i] = mapToResponse(d)
	}
	return res
}
