package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitedriving/institute-api/internal/models"
	"github.com/elitedriving/institute-api/internal/store"
	appErrors "github.com/elitedriving/institute-api/pkg/errors"
	"github.com/elitedriving/institute-api/pkg/export"
)

type mockPaymentStore struct {
	registrationErr error
	paymentErr      error
	detailErr       error
	createdWith     *store.NewPayment
	lastStatus      string
	lastIntent      *string
}

func (m *mockPaymentStore) CreatePayment(ctx context.Context, in store.NewPayment) (models.Payment, error) {
	m.createdWith = &in
	return models.Payment{
		ID:             "pay-1",
		RegistrationID: in.RegistrationID,
		Amount:         in.Amount,
		Currency:       models.DefaultCurrency,
		Status:         models.PaymentStatusPending,
		CreatedAt:      time.Now(),
	}, nil
}

func (m *mockPaymentStore) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	if m.paymentErr != nil {
		return models.Payment{}, m.paymentErr
	}
	return models.Payment{
		ID:             id,
		RegistrationID: "reg-1",
		Amount:         "1200.00",
		Currency:       models.DefaultCurrency,
		Status:         models.PaymentStatusSucceeded,
		CreatedAt:      time.Now(),
	}, nil
}

func (m *mockPaymentStore) GetPaymentByRegistration(ctx context.Context, registrationID string) (models.Payment, error) {
	if m.paymentErr != nil {
		return models.Payment{}, m.paymentErr
	}
	return models.Payment{ID: "pay-1", RegistrationID: registrationID}, nil
}

func (m *mockPaymentStore) UpdatePaymentStatus(ctx context.Context, id, status string, stripePaymentIntentID *string) (models.Payment, error) {
	if m.paymentErr != nil {
		return models.Payment{}, m.paymentErr
	}
	m.lastStatus = status
	m.lastIntent = stripePaymentIntentID
	return models.Payment{ID: id, Status: status, StripePaymentIntentID: stripePaymentIntentID}, nil
}

func (m *mockPaymentStore) GetRegistration(ctx context.Context, id string) (models.Registration, error) {
	if m.registrationErr != nil {
		return models.Registration{}, m.registrationErr
	}
	return models.Registration{ID: id}, nil
}

func (m *mockPaymentStore) GetRegistrationDetail(ctx context.Context, id string) (models.RegistrationDetail, error) {
	if m.detailErr != nil {
		return models.RegistrationDetail{}, m.detailErr
	}
	return models.RegistrationDetail{
		Registration: models.Registration{ID: id},
		Student:      models.Student{FirstName: "Jane", LastName: "Doe"},
		Course:       models.Course{Title: "Light Vehicles"},
	}, nil
}

type mockReceiptRenderer struct {
	title string
	lines []export.ReceiptLine
}

func (m *mockReceiptRenderer) RenderReceipt(title string, lines []export.ReceiptLine) ([]byte, error) {
	m.title = title
	m.lines = lines
	return []byte("%PDF-stub"), nil
}

func TestPaymentServiceCreate(t *testing.T) {
	st := &mockPaymentStore{}
	svc := NewPaymentService(st, nil, nil, nil, nil)

	intent := "pi_123"
	payment, err := svc.Create(context.Background(), CreatePaymentRequest{
		RegistrationID:        "reg-1",
		Amount:                "1200.00",
		StripePaymentIntentID: &intent,
	})
	require.NoError(t, err)
	assert.Equal(t, "pay-1", payment.ID)
	require.NotNil(t, st.createdWith)
	require.NotNil(t, st.createdWith.StripePaymentIntentID)
	assert.Equal(t, "pi_123", *st.createdWith.StripePaymentIntentID)
}

func TestPaymentServiceCreateRegistrationMissing(t *testing.T) {
	st := &mockPaymentStore{registrationErr: store.ErrNotFound}
	svc := NewPaymentService(st, nil, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreatePaymentRequest{RegistrationID: "missing", Amount: "10.00"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Registration not found", appErr.Message)
	assert.Nil(t, st.createdWith)
}

func TestPaymentServiceCreateValidation(t *testing.T) {
	svc := NewPaymentService(&mockPaymentStore{}, nil, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreatePaymentRequest{Currency: "DOLLARS", Status: "refunded"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Invalid payment data", appErr.Message)
	assert.Contains(t, appErr.Details, "registrationId: required")
	assert.Contains(t, appErr.Details, "amount: required")
	assert.Contains(t, appErr.Details, "currency: len=3")
	assert.Contains(t, appErr.Details, "status: oneof=pending succeeded failed cancelled")
}

func TestPaymentServiceGetByRegistrationNotFound(t *testing.T) {
	svc := NewPaymentService(&mockPaymentStore{paymentErr: store.ErrNotFound}, nil, nil, nil, nil)

	_, err := svc.GetByRegistration(context.Background(), "reg-1")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Payment not found", appErr.Message)
}

func TestPaymentServiceUpdateStatus(t *testing.T) {
	st := &mockPaymentStore{}
	svc := NewPaymentService(st, nil, nil, nil, nil)

	intent := "pi_456"
	payment, err := svc.UpdateStatus(context.Background(), "pay-1", models.PaymentStatusSucceeded, &intent)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSucceeded, payment.Status)
	require.NotNil(t, st.lastIntent)
	assert.Equal(t, "pi_456", *st.lastIntent)

	_, err = svc.UpdateStatus(context.Background(), "pay-1", "refunded", nil)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid payment status", appErr.Message)
	assert.Equal(t, models.ValidPaymentStatuses, appErr.ValidValues)
}

func TestPaymentServiceReceipt(t *testing.T) {
	renderer := &mockReceiptRenderer{}
	svc := NewPaymentService(&mockPaymentStore{}, nil, nil, nil, renderer)

	data, err := svc.Receipt(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), data)
	assert.Equal(t, "Payment Receipt", renderer.title)

	labels := make([]string, 0, len(renderer.lines))
	values := map[string]string{}
	for _, line := range renderer.lines {
		labels = append(labels, line.Label)
		values[line.Label] = line.Value
	}
	assert.Contains(t, labels, "Receipt No")
	assert.Contains(t, labels, "Amount")
	assert.Equal(t, "Jane Doe", values["Student"])
	assert.Equal(t, "Light Vehicles", values["Course"])
}

func TestPaymentServiceReceiptDanglingRegistration(t *testing.T) {
	renderer := &mockReceiptRenderer{}
	st := &mockPaymentStore{detailErr: store.ErrNotFound}
	svc := NewPaymentService(st, nil, nil, nil, renderer)

	_, err := svc.Receipt(context.Background(), "pay-1")
	require.NoError(t, err)
	for _, line := range renderer.lines {
		assert.NotEqual(t, "Student", line.Label)
		assert.NotEqual(t, "Course", line.Label)
	}
}

func TestPaymentServiceReceiptNotFound(t *testing.T) {
	svc := NewPaymentService(&mockPaymentStore{paymentErr: store.ErrNotFound}, nil, nil, nil, &mockReceiptRenderer{})

	_, err := svc.Receipt(context.Background(), "missing")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Payment not found", appErr.Message)
}
