package region

import (
	"context"
	"errors"

	regionerrors "go-hrm/internal/region/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=region_service.go -destination=mock/region_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRegionRequest) (RegionResponse, error)
	GetAll(ctx context.Context) ([]RegionResponse, error)
	GetByID(ctx context.Context, id int) (RegionResponse, error)
	GetCountries(ctx context.Context, id int) ([]CountryOption, error)
	Update(ctx context.Context, id int, req UpdateRegionRequest) (RegionResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("region.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("region.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateRegionRequest) (RegionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create region requested",
		zap.String("request_id", rid),
		zap.String("region_name", req.RegionName),
	)

	var created Region
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		if err := validateCreate(ctx, qtx, req); err != nil {
			return err
		}

		reg := Region{RegionName: req.RegionName}
		if req.RegionID != nil {
			reg.RegionID = *req.RegionID
		}

		if err := qtx.Create(ctx, &reg); err != nil {
			if apperror.IsUniqueViolation(err, "") {
				return regionerrors.ErrRegionAlreadyExists
			}
			return apperror.ClassifyStorage(err)
		}

		created = reg
		return nil
	})
	if err != nil {
		return RegionResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]RegionResponse, error) {
	regions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	return mapToListResponse(regions), nil
}

func (s *service) GetByID(ctx context.Context, id int) (RegionResponse, error) {
	reg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RegionResponse{}, regionerrors.ErrRegionNotFound
		}
		return RegionResponse{}, apperror.ClassifyStorage(err)
	}
	return mapToResponse(*reg), nil
}

func (s *service) GetCountries(ctx context.Context, id int) ([]CountryOption, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	options, err := s.repo.FindCountries(ctx, id)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	return options, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateRegionRequest) (RegionResponse, error) {
	var updated Region
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		reg, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return regionerrors.ErrRegionNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		// Partial merge: only supplied fields change.
		if req.RegionName != nil {
			reg.RegionName = *req.RegionName
		}

		if err := qtx.Update(ctx, reg); err != nil {
			return apperror.ClassifyStorage(err)
		}

		updated = *reg
		return nil
	})
	if err != nil {
		return RegionResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete region requested",
		zap.String("request_id", rid),
		zap.Int("region_id", id),
	)

	return s.repo.Tx(ctx, func(qtx Repository) error {
		if _, err := qtx.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return regionerrors.ErrRegionNotFound
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

func mapToResponse(reg Region) RegionResponse {
	return RegionResponse{
		RegionID:   reg.RegionID,
		RegionName: reg.RegionName,
	}
}

func mapToListResponse(regions []Region) []RegionResponse {
	res := make([]RegionResponse, len(regions))
	for i, reg := range regions {
		res[i] = mapToResponse(reg)
	}
	return res
}
