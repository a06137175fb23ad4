package job

import (
	"context"
	"errors"
	"strings"

	joberrors "go-hrm/internal/job/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	GetAll(ctx context.Context) ([]JobResponse, error)
	GetByID(ctx context.Context, id string) (JobResponse, error)
	Update(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateJobRequest) (JobResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req.JobID = strings.ToUpper(strings.TrimSpace(req.JobID))
	s.logger.Debug("create job requested",
		zap.String("request_id", rid),
		zap.String("job_id", req.JobID),
		zap.String("job_title", req.JobTitle),
	)

	var created Job
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		if err := validateCreate(ctx, qtx, req); err != nil {
			return err
		}

		j := Job{
			JobID:     req.JobID,
			JobTitle:  req.JobTitle,
			MinSalary: req.MinSalary,
			MaxSalary: req.MaxSalary,
		}

		if err := qtx.Create(ctx, &j); err != nil {
			if apperror.IsUniqueViolation(err, "") {
				return joberrors.ErrJobAlreadyExists
			}
			return apperror.ClassifyStorage(err)
		}

		created = j
		return nil
	})
	if err != nil {
		return JobResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]JobResponse, error) {
	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	return mapToListResponse(jobs), nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobResponse, error) {
	j, err := s.repo.FindByID(ctx, strings.ToUpper(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobResponse{}, joberrors.ErrJobNotFound
		}
		return JobResponse{}, apperror.ClassifyStorage(err)
	}
	return mapToResponse(*j), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error) {
	id = strings.ToUpper(id)

	var updated Job
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		j, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return joberrors.ErrJobNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		if req.JobTitle != nil {
			j.JobTitle = *req.JobTitle
		}
		if req.MinSalary != nil {
			j.MinSalary = req.MinSalary
		}
		if req.MaxSalary != nil {
			j.MaxSalary = req.MaxSalary
		}

		// The merged row must still satisfy the range invariant.
		if err := validateSalaryRange(j.MinSalary, j.MaxSalary); err != nil {
			return err
		}

		if err := qtx.Update(ctx, j); err != nil {
			return apperror.ClassifyStorage(err)
		}

		updated = *j
		return nil
	})
	if err != nil {
		return JobResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	id = strings.ToUpper(id)
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete job requested",
		zap.String("request_id", rid),
		zap.String("job_id", id),
	)

	return s.repo.Tx(ctx, func(qtx Repository) error {
		if _, err := qtx.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return joberrors.ErrJobNotFound
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
}

func mapToResponse(j Job) JobResponse {
	return JobResponse{
		JobID:     j.JobID,
		JobTitle:  j.JobTitle,
		MinSalary: j.MinSalary,
		MaxSalary: j.MaxSalary,
	}
}

func mapToListResponse(jobs []Job) []JobResponse {
	res := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		res[i] = mapToResponse(j)
	}
	return res
}
