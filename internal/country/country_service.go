package country

import (
	"context"
	"errors"
	"strings"

	countryerrors "go-hrm/internal/country/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=country_service.go -destination=mock/country_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCountryRequest) (CountryResponse, error)
	GetAll(ctx context.Context) ([]CountryResponse, error)
	GetByID(ctx context.Context, id string) (CountryResponse, error)
	Update(ctx context.Context, id string, req UpdateCountryRequest) (CountryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("country.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("country.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCountryRequest) (CountryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req.CountryID = strings.ToUpper(req.CountryID)
	s.logger.Debug("create country requested",
		zap.String("request_id", rid),
		zap.String("country_id", req.CountryID),
		zap.Int("region_id", req.RegionID),
	)

	var created Country
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		if err := validateCreate(ctx, qtx, req); err != nil {
			return err
		}

		c := Country{
			CountryID:   req.CountryID,
			CountryName: req.CountryName,
			RegionID:    req.RegionID,
		}

		if err := qtx.Create(ctx, &c); err != nil {
			if apperror.IsUniqueViolation(err, "") {
				return countryerrors.ErrCountryAlreadyExists
			}
			if apperror.IsForeignKeyViolation(err) {
				return countryerrors.ErrRegionNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		created = c
		return nil
	})
	if err != nil {
		return CountryResponse{}, err
	}

	return s.GetByID(ctx, created.CountryID)
}

func (s *service) GetAll(ctx context.Context) ([]CountryResponse, error) {
	countries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	return mapToListResponse(countries), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CountryResponse, error) {
	c, err := s.repo.FindByID(ctx, strings.ToUpper(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CountryResponse{}, countryerrors.ErrCountryNotFound
		}
		return CountryResponse{}, apperror.ClassifyStorage(err)
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCountryRequest) (CountryResponse, error) {
	id = strings.ToUpper(id)

	err := s.repo.Tx(ctx, func(qtx Repository) error {
		detail, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return countryerrors.ErrCountryNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		c := detail.Country
		if req.CountryName != nil {
			c.CountryName = *req.CountryName
		}
		if req.RegionID != nil {
			if err := validateRegionRef(ctx, qtx, *req.RegionID); err != nil {
				return err
			}
			c.RegionID = *req.RegionID
		}

		if err := qtx.Update(ctx, &c); err != nil {
			if apperror.IsForeignKeyViolation(err) {
				return countryerrors.ErrRegionNotFound
			}
			return apperror.ClassifyStorage(err)
		}
		return nil
	})
	if err != nil {
		return CountryResponse{}, err
	}

	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	id = strings.ToUpper(id)
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete country requested",
		zap.String("request_id", rid),
		zap.String("country_id", id),
	)

	return s.repo.Tx(ctx, func(qtx Repository) error {
		if _, err := qtx.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return countryerrors.ErrCountryNotFound
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

func mapToResponse(c CountryDetail) CountryResponse {
	return CountryResponse{
		CountryID:   c.CountryID,
		CountryName: c.CountryName,
		RegionID:    c.RegionID,
		RegionName:  c.RegionName,
	}
}

func mapToListResponse(countries []CountryDetail) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i, c := range countries {
		res[i] = mapToResponse(c)
	}
	return res
}
