package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/elitedriving/institute-api/internal/models"
	"github.com/elitedriving/institute-api/internal/store"
	appErrors "github.com/elitedriving/institute-api/pkg/errors"
)

type registrationStore interface {
	CreateRegistration(ctx context.Context, in store.NewRegistration) (models.Registration, error)
	GetRegistrationDetail(ctx context.Context, id string) (models.RegistrationDetail, error)
	UpdateRegistrationStatus(ctx context.Context, id, status string) (models.Registration, error)
	UpdateRegistrationPaymentStatus(ctx context.Context, id, paymentStatus string) (models.Registration, error)
}

// CreateRegistrationRequest links a student to a course. Statuses default to
// "pending" when absent.
type CreateRegistrationRequest struct {
	StudentID          string  `json:"studentId" validate:"required"`
	CourseID           string  `json:"courseId" validate:"required"`
	PreferredStartDate *string `json:"preferredStartDate"`
	Status             string  `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus      string  `json:"paymentStatus" validate:"omitempty,oneof=pending paid failed"`
}

// RegistrationService handles registration intake and status transitions.
type RegistrationService struct {
	store     registrationStore
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewRegistrationService constructs the registration service.
func NewRegistrationService(st registrationStore, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *RegistrationService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{store: st, validator: validate, logger: logger, metrics: metrics}
}

// Create validates the payload, resolves both foreign keys and enforces the
// course capacity rule, then returns the joined view of the new registration.
func (s *RegistrationService) Create(ctx context.Context, req CreateRegistrationRequest) (models.RegistrationDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.RegistrationDetail{}, validationError(err, "Invalid registration data")
	}

	registration, err := s.store.CreateRegistration(ctx, store.NewRegistration{
		StudentID:          req.StudentID,
		CourseID:           req.CourseID,
		PreferredStartDate: req.PreferredStartDate,
		Status:             req.Status,
		PaymentStatus:      req.PaymentStatus,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrStudentNotFound):
			return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		case errors.Is(err, store.ErrCourseNotFound):
			return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		case errors.Is(err, store.ErrCourseFull):
			return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrCourseFull, "")
		}
		s.logger.Error("registration create failed", zap.Error(err))
		return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrInternal, "Failed to create registration")
	}

	s.metrics.IncRegistrationCreated()

	detail, err := s.store.GetRegistrationDetail(ctx, registration.ID)
	if err != nil {
		s.logger.Error("registration detail fetch failed", zap.String("id", registration.ID), zap.Error(err))
		return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrInternal, "Failed to create registration")
	}
	return detail, nil
}

// Get returns the registration joined with its student, course and payment.
func (s *RegistrationService) Get(ctx context.Context, id string) (models.RegistrationDetail, error) {
	detail, err := s.store.GetRegistrationDetail(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrNotFound, "Registration not found")
		}
		s.logger.Error("registration fetch failed", zap.Error(err))
		return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrInternal, "Failed to fetch registration")
	}
	return detail, nil
}

// UpdateStatus moves the registration to a new lifecycle status and returns
// the refreshed joined view.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id, status string) (models.RegistrationDetail, error) {
	if status == "" {
		return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrValidation, "Status is required")
	}
	if !contains(models.ValidRegistrationStatuses, status) {
		return models.RegistrationDetail{}, appErrors.WithValidValues(
			appErrors.Clone(appErrors.ErrValidation, "Invalid status"),
			models.ValidRegistrationStatuses,
		)
	}

	if _, err := s.store.UpdateRegistrationStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrNotFound, "Registration not found")
		}
		s.logger.Error("registration status update failed", zap.Error(err))
		return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrInternal, "Failed to update registration status")
	}
	return s.Get(ctx, id)
}

// UpdatePaymentStatus moves the payment state tracked on the registration and
// returns the refreshed joined view.
func (s *RegistrationService) UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) (models.RegistrationDetail, error) {
	if paymentStatus == "" {
		return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrValidation, "Payment status is required")
	}
	if !contains(models.ValidRegistrationPaymentStatuses, paymentStatus) {
		return models.RegistrationDetail{}, appErrors.WithValidValues(
			appErrors.Clone(appErrors.ErrValidation, "Invalid payment status"),
			models.ValidRegistrationPaymentStatuses,
		)
	}

	if _, err := s.store.UpdateRegistrationPaymentStatus(ctx, id, paymentStatus); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrNotFound, "Registration not found")
		}
		s.logger.Error("registration payment status update failed", zap.Error(err))
		return models.RegistrationDetail{}, appErrors.Clone(appErrors.ErrInternal, "Failed to update payment status")
	}
	return s.Get(ctx, id)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
