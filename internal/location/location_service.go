package location

import (
	"context"
	"errors"
	"strings"

	locationerrors "go-hrm/internal/location/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=location_service.go -destination=mock/location_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	GetAll(ctx context.Context) ([]LocationResponse, error)
	GetByID(ctx context.Context, id int) (LocationResponse, error)
	Update(ctx context.Context, id int, req UpdateLocationRequest) (LocationResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("location.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("location.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req.CountryID = strings.ToUpper(req.CountryID)
	s.logger.Debug("create location requested",
		zap.String("request_id", rid),
		zap.String("city", req.City),
		zap.String("country_id", req.CountryID),
	)

	var created Location
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		if req.LocationID != nil {
			if _, err := qtx.FindByID(ctx, *req.LocationID); err == nil {
				return locationerrors.ErrLocationAlreadyExists
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ClassifyStorage(err)
			}
		}

		if err := validateCountryRef(ctx, qtx, req.CountryID); err != nil {
			return err
		}

		l := Location{
			StreetAddress: req.StreetAddress,
			PostalCode:    req.PostalCode,
			City:          req.City,
			StateProvince: req.StateProvince,
			CountryID:     req.CountryID,
		}
		if req.LocationID != nil {
			l.LocationID = *req.LocationID
		}

		if err := qtx.Create(ctx, &l); err != nil {
			if apperror.IsUniqueViolation(err, "") {
				return locationerrors.ErrLocationAlreadyExists
			}
			if apperror.IsForeignKeyViolation(err) {
				return locationerrors.ErrCountryNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		created = l
		return nil
	})
	if err != nil {
		return LocationResponse{}, err
	}

	return s.GetByID(ctx, created.LocationID)
}

func (s *service) GetAll(ctx context.Context) ([]LocationResponse, error) {
	locations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	return mapToListResponse(locations), nil
}

func (s *service) GetByID(ctx context.Context, id int) (LocationResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LocationResponse{}, locationerrors.ErrLocationNotFound
		}
		return LocationResponse{}, apperror.ClassifyStorage(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateLocationRequest) (LocationResponse, error) {
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		detail, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return locationerrors.ErrLocationNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		l := detail.Location
		if req.StreetAddress != nil {
			l.StreetAddress = *req.StreetAddress
		}
		if req.PostalCode != nil {
			l.PostalCode = *req.PostalCode
		}
		if req.City != nil {
			l.City = *req.City
		}
		if req.StateProvince != nil {
			l.StateProvince = *req.StateProvince
		}
		if req.CountryID != nil {
			countryID := strings.ToUpper(*req.CountryID)
			if err := validateCountryRef(ctx, qtx, countryID); err != nil {
				return err
			}
			l.CountryID = countryID
		}

		if err := qtx.Update(ctx, &l); err != nil {
			if apperror.IsForeignKeyViolation(err) {
				return locationerrors.ErrCountryNotFound
			}
			return apperror.ClassifyStorage(err)
		}
		return nil
	})
	if err != nil {
		return LocationResponse{}, err
	}

	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete location requested",
		zap.String("request_id", rid),
		zap.Int("location_id", id),
	)

	return s.repo.Tx(ctx, func(qtx Repository) error {
		if _, err := qtx.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return locationerrors.ErrLocationNotFound
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

func mapToResponse(l LocationDetail) LocationResponse {
	return LocationResponse{
		LocationID:    l.LocationID,
		StreetAddress: l.StreetAddress,
		PostalCode:    l.PostalCode,
		City:          l.City,
		StateProvince: l.StateProvince,
		CountryID:     l.CountryID,
		CountryName:   l.CountryName,
	}
}

func mapToListResponse(locations []LocationDetail) []LocationResponse {
	res := make([]LocationResponse, len(locations))
	for i, l := range locations {
		res[i] = mapToResponse(l)
	}
	return res
}
