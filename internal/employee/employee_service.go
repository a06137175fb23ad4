package employee

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const hireDateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	hireDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.HireDate != "" {
		parsed, err := time.Parse(hireDateLayout, req.HireDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
		}
		hireDate = parsed
	}

	var created Employee
	err := s.repo.Tx(ctx, func(qtx Repository) error {
		if req.EmployeeID != nil {
			if _, err := qtx.FindByID(ctx, *req.EmployeeID); err == nil {
				return employeeerrors.ErrEmployeeAlreadyExists
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ClassifyStorage(err)
			}
		}

		e := Employee{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			PhoneNumber:   req.PhoneNumber,
			HireDate:      hireDate,
			Salary:        req.Salary,
			CommissionPct: req.CommissionPct,
			ManagerID:     req.ManagerID,
			DepartmentID:  req.DepartmentID,
			JobID:         normalizeJobID(req.JobID),
		}
		if req.EmployeeID != nil {
			e.EmployeeID = *req.EmployeeID
		}

		if err := validateEmailUnique(ctx, qtx, e.Email, e.EmployeeID); err != nil {
			return err
		}
		if err := validateReferences(ctx, qtx, e.EmployeeID, &e); err != nil {
			return err
		}

		if err := qtx.Create(ctx, &e); err != nil {
			return mapStorageError(err)
		}

		created = e
		return s.stageEvent(ctx, qtx, events.EmployeeCreated, e, rid)
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	return s.GetByID(ctx, created.EmployeeID)
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.ClassifyStorage(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, apperror.ClassifyStorage(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	err := s.repo.Tx(ctx, func(qtx Repository) error {
		detail, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrEmployeeNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		e := detail.Employee
		if req.FirstName != nil {
			e.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			e.LastName = *req.LastName
		}
		if req.Email != nil {
			e.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if req.PhoneNumber != nil {
			e.PhoneNumber = *req.PhoneNumber
		}
		if req.HireDate != nil {
			parsed, err := time.Parse(hireDateLayout, *req.HireDate)
			if err != nil {
				return employeeerrors.ErrInvalidHireDate
			}
			e.HireDate = parsed
		}
		if req.Salary != nil {
			e.Salary = req.Salary
		}
		if req.CommissionPct != nil {
			e.CommissionPct = req.CommissionPct
		}
		if req.ManagerID != nil {
			e.ManagerID = req.ManagerID
		}
		if req.DepartmentID != nil {
			e.DepartmentID = req.DepartmentID
		}
		if req.JobID != nil {
			e.JobID = normalizeJobID(req.JobID)
		}

		// The merged row must satisfy every invariant, not just the
		// changed fields.
		if err := validateEmailUnique(ctx, qtx, e.Email, e.EmployeeID); err != nil {
			return err
		}
		if err := validateReferences(ctx, qtx, e.EmployeeID, &e); err != nil {
			return err
		}

		if err := qtx.Update(ctx, &e); err != nil {
			return mapStorageError(err)
		}

		return s.stageEvent(ctx, qtx, events.EmployeeUpdated, e, rid)
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", id),
	)

	return s.repo.Tx(ctx, func(qtx Repository) error {
		detail, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrEmployeeNotFound
			}
			return apperror.ClassifyStorage(err)
		}

		if err := validateDelete(ctx, qtx, id); err != nil {
			return err
		}

		if err := qtx.Delete(ctx, id); err != nil {
			return mapStorageError(err)
		}

		return s.stageEvent(ctx, qtx, events.EmployeeDeleted, detail.Employee, rid)
	})
}

// stageEvent writes a lifecycle event into the outbox inside the current
// transaction. The relay worker ships it to Kafka later.
func (s *service) stageEvent(ctx context.Context, qtx Repository, eventType string, e Employee, requestID string) error {
	payload, err := json.Marshal(events.EmployeeLifecycleEvent{
		EventType:  eventType,
		EmployeeID: e.EmployeeID,
		Email:      e.Email,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return qtx.InsertOutbox(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "employee",
		AggregateID:   strconv.Itoa(e.EmployeeID),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func normalizeJobID(jobID *string) *string {
	if jobID == nil {
		return nil
	}
	normalized := strings.ToUpper(strings.TrimSpace(*jobID))
	if normalized == "" {
		return nil
	}
	return &normalized
}

func mapToResponse(e EmployeeDetail) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:     e.EmployeeID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		PhoneNumber:    e.PhoneNumber,
		HireDate:       e.HireDate.Format(hireDateLayout),
		Salary:         e.Salary,
		CommissionPct:  e.CommissionPct,
		ManagerID:      e.ManagerID,
		ManagerName:    strings.TrimSpace(e.ManagerFirstName + " " + e.ManagerLastName),
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		JobID:          e.JobID,
		JobTitle:       e.JobTitle,
	}
}

func mapToListResponse(employees []EmployeeDetail) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
