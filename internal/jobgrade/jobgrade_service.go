package jobgrade

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	jobgradeerrors "go-hrm/internal/jobgrade/errors"
	"go-hrm/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	gradesCacheKey = "job_grades:all"
	gradesCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=jobgrade_service.go -destination=mock/jobgrade_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobGradeRequest) (JobGradeResponse, error)
	GetAll(ctx context.Context) ([]JobGradeResponse, error)
	GetByLevel(ctx context.Context, level string) (JobGradeResponse, error)
	Update(ctx context.Context, level string, req UpdateJobGradeRequest) (JobGradeResponse, error)
	Delete(ctx context.Context, level string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("jobgrade.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jobgrade.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateJobGradeRequest) (JobGradeResponse, error) {
	req.GradeLevel = strings.ToUpper(strings.TrimSpace(req.GradeLevel))

	if err := validateSalaryBand(req.LowestSal, req.HighestSal); err != nil {
		return JobGradeResponse{}, err
	}

	var created JobGrade
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		_, err := qtx.FindByLevel(ctx, req.GradeLevel)
		if err == nil {
			return jobgradeerrors.ErrJobGradeAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ClassifyStorage(err)
		}

		g := JobGrade{
			GradeLevel: req.GradeLevel,
			LowestSal:  req.LowestSal,
			HighestSal: req.HighestSal,
		}

		if err := qtx.Create(ctx, &g); err != nil {
			if apperror.IsUniqueViolation(err, "") {
				return jobgradeerrors.ErrJobGradeAlreadyExists
			}
			return apperror.ClassifyStorage(err)
		}

		created = g
		return nil
	})
	if err != nil {
		return JobGradeResponse{}, err
	}

	s.invalidateCache(ctx)
	return mapToResponse(created), nil
}

// GetAll serves the salary-band lookup from redis when possible; cache fills
// are deduplicated through singleflight so a cold cache triggers one query.
func (s *service) GetAll(ctx context.Context) ([]JobGradeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, gradesCacheKey).Result(); err == nil {
			var resp []JobGradeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(gradesCacheKey, func() (any, error) {
		grades, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, apperror.ClassifyStorage(err)
		}

		resp := mapToListResponse(grades)
		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, gradesCacheKey, payload, gradesCacheTTL).Err(); err != nil {
					s.logger.Warn("cache job grades failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]JobGradeResponse), nil
}

func (s *service) GetByLevel(ctx context.Context, level string) (JobGradeResponse, error) {
	g, err := s.repo.FindByLevel(ctx, strings.ToUpper(level))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobGradeResponse{}, jobgradeerrors.ErrJobGradeNotFound
		}
		return JobGradeResponse{}, apperror.ClassifyStorage(err)
	}
	return mapToResponse(*g), nil
}

func (s *service) Update(ctx context.Context, level string, req UpdateJobGradeRequest) (JobGradeResponse, error) {
	level = strings.ToUpper(level)

	var updated JobGrade
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		g, err := qtx.FindByLevel(ctx, level)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jobgradeerrors.ErrJobGradeNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		if req.LowestSal != nil {
			g.LowestSal = req.LowestSal
		}
		if req.HighestSal != nil {
			g.HighestSal = req.HighestSal
		}

		if err := validateSalaryBand(g.LowestSal, g.HighestSal); err != nil {
			return err
		}

		if err := qtx.Update(ctx, g); err != nil {
			return apperror.ClassifyStorage(err)
		}

		updated = *g
		return nil
	})
	if err != nil {
		return JobGradeResponse{}, err
	}

	s.invalidateCache(ctx)
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, level string) error {
	level = strings.ToUpper(level)

	err := s.repo.Tx(ctx, func(qtx Repository) error {
		if _, err := qtx.FindByLevel(ctx, level); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jobgradeerrors.ErrJobGradeNotFound
			}
			return apperror.ClassifyStorage(err)
		}
		if err := qtx.Delete(ctx, level); err != nil {
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
	if err := s.rdb.Del(ctx, gradesCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate job grades cache failed", zap.Error(err))
	}
}

func validateSalaryBand(lowest, highest *int) error {
	if lowest != nil && highest != nil && *lowest > *highest {
		return jobgradeerrors.ErrInvalidSalaryBand
	}
	return nil
}

func mapToResponse(g JobGrade) JobGradeResponse {
	return JobGradeResponse{
		GradeLevel: g.GradeLevel,
		LowestSal:  g.LowestSal,
		HighestSal: g.HighestSal,
	}
}

func mapToListResponse(grades []JobGrade) []JobGradeResponse {
	res := make([]JobGradeResponse, len(grades))
	for i, g := range grades {
		res[i] = mapToResponse(g)
	}
	return res
}
