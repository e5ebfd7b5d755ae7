package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/elitedriving/institute-api/internal/models"
	"github.com/elitedriving/institute-api/internal/store"
	appErrors "github.com/elitedriving/institute-api/pkg/errors"
	"github.com/elitedriving/institute-api/pkg/export"
)

type paymentStore interface {
	CreatePayment(ctx context.Context, in store.NewPayment) (models.Payment, error)
	GetPayment(ctx context.Context, id string) (models.Payment, error)
	GetPaymentByRegistration(ctx context.Context, registrationID string) (models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id, status string, stripePaymentIntentID *string) (models.Payment, error)
	GetRegistration(ctx context.Context, id string) (models.Registration, error)
	GetRegistrationDetail(ctx context.Context, id string) (models.RegistrationDetail, error)
}

// CreatePaymentRequest is the payload for recording a charge attempt.
type CreatePaymentRequest struct {
	RegistrationID        string  `json:"registrationId" validate:"required"`
	Amount                string  `json:"amount" validate:"required"`
	Currency              string  `json:"currency" validate:"omitempty,len=3"`
	StripePaymentIntentID *string `json:"stripePaymentIntentId"`
	Status                string  `json:"status" validate:"omitempty,oneof=pending succeeded failed cancelled"`
}

type receiptRenderer interface {
	RenderReceipt(title string, lines []export.ReceiptLine) ([]byte, error)
}

// PaymentService handles payment records and receipt rendering.
type PaymentService struct {
	store     paymentStore
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	receipts  receiptRenderer
}

// NewPaymentService constructs the payment service.
func NewPaymentService(st paymentStore, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, receipts receiptRenderer) *PaymentService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if receipts == nil {
		receipts = export.NewPDFExporter()
	}
	return &PaymentService{store: st, validator: validate, logger: logger, metrics: metrics, receipts: receipts}
}

// Create records a payment after resolving its registration.
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Payment{}, validationError(err, "Invalid payment data")
	}

	if _, err := s.store.GetRegistration(ctx, req.RegistrationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Payment{}, appErrors.Clone(appErrors.ErrNotFound, "Registration not found")
		}
		s.logger.Error("registration lookup failed", zap.Error(err))
		return models.Payment{}, appErrors.Clone(appErrors.ErrInternal, "Failed to create payment")
	}

	payment, err := s.store.CreatePayment(ctx, store.NewPayment{
		RegistrationID:        req.RegistrationID,
		Amount:                req.Amount,
		Currency:              req.Currency,
		StripePaymentIntentID: req.StripePaymentIntentID,
		Status:                req.Status,
	})
	if err != nil {
		s.logger.Error("payment create failed", zap.Error(err))
		return models.Payment{}, appErrors.Clone(appErrors.ErrInternal, "Failed to create payment")
	}

	s.metrics.IncPaymentCreated()
	return payment, nil
}

// GetByRegistration returns the payment recorded for a registration.
func (s *PaymentService) GetByRegistration(ctx context.Context, registrationID string) (models.Payment, error) {
	payment, err := s.store.GetPaymentByRegistration(ctx, registrationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Payment{}, appErrors.Clone(appErrors.ErrNotFound, "Payment not found")
		}
		s.logger.Error("payment fetch failed", zap.Error(err))
		return models.Payment{}, appErrors.Clone(appErrors.ErrInternal, "Failed to fetch payment")
	}
	return payment, nil
}

// UpdateStatus moves the payment to a new status, optionally attaching the
// external payment-intent reference.
func (s *PaymentService) UpdateStatus(ctx context.Context, id, status string, stripePaymentIntentID *string) (models.Payment, error) {
	if status == "" {
		return models.Payment{}, appErrors.Clone(appErrors.ErrValidation, "Status is required")
	}
	if !contains(models.ValidPaymentStatuses, status) {
		return models.Payment{}, appErrors.WithValidValues(
			appErrors.Clone(appErrors.ErrValidation, "Invalid payment status"),
			models.ValidPaymentStatuses,
		)
	}

	payment, err := s.store.UpdatePaymentStatus(ctx, id, status, stripePaymentIntentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Payment{}, appErrors.Clone(appErrors.ErrNotFound, "Payment not found")
		}
		s.logger.Error("payment status update failed", zap.Error(err))
		return models.Payment{}, appErrors.Clone(appErrors.ErrInternal, "Failed to update payment status")
	}
	return payment, nil
}

// Receipt renders a PDF receipt for a payment. Student and course lines are
// included when the registration still resolves.
func (s *PaymentService) Receipt(ctx context.Context, id string) ([]byte, error) {
	payment, err := s.store.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Payment not found")
		}
		s.logger.Error("payment fetch failed", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrInternal, "Failed to render receipt")
	}

	lines := []export.ReceiptLine{
		{Label: "Receipt No", Value: payment.ID},
		{Label: "Date", Value: payment.CreatedAt.Format("2006-01-02 15:04:05 MST")},
		{Label: "Amount", Value: fmt.Sprintf("%s %s", payment.Amount, payment.Currency)},
		{Label: "Status", Value: payment.Status},
		{Label: "Registration", Value: payment.RegistrationID},
	}
	if detail, err := s.store.GetRegistrationDetail(ctx, payment.RegistrationID); err == nil {
		lines = append(lines,
			export.ReceiptLine{Label: "Student", Value: detail.Student.FirstName + " " + detail.Student.LastName},
			export.ReceiptLine{Label: "Course", Value: detail.Course.Title},
		)
	}

	data, err := s.receipts.RenderReceipt("Payment Receipt", lines)
	if err != nil {
		s.logger.Error("receipt render failed", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrInternal, "Failed to render receipt")
	}
	return data, nil
}
