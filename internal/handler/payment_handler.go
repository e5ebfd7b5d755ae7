package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitedriving/institute-api/internal/service"
	appErrors "github.com/elitedriving/institute-api/pkg/errors"
	"github.com/elitedriving/institute-api/pkg/response"
)

// PaymentHandler exposes payment endpoints.
type PaymentHandler struct {
	payments *service.PaymentService
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type updatePaymentRecordRequest struct {
	Status                string  `json:"status"`
	StripePaymentIntentID *string `json:"stripePaymentIntentId"`
}

// Create godoc
// @Summary Record a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body service.CreatePaymentRequest true "Payment payload"
// @Success 201 {object} models.Payment
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, "", http.StatusBadRequest, "Invalid payment data"))
		return
	}
	payment, err := h.payments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payment)
}

// GetByRegistration godoc
// @Summary Get payment for a registration
// @Tags Payments
// @Produce json
// @Param registrationId path string true "Registration ID"
// @Success 200 {object} models.Payment
// @Router /payments/registration/{registrationId} [get]
func (h *PaymentHandler) GetByRegistration(c *gin.Context) {
	payment, err := h.payments.GetByRegistration(c.Request.Context(), c.Param("registrationId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payment)
}

// UpdateStatus godoc
// @Summary Update payment status
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payload body handler.updatePaymentRecordRequest true "New status with optional intent reference"
// @Success 200 {object} models.Payment
// @Router /payments/{id}/status [patch]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var req updatePaymentRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Status is required"))
		return
	}
	payment, err := h.payments.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.StripePaymentIntentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payment)
}

// Receipt godoc
// @Summary Download a payment receipt as PDF
// @Tags Payments
// @Produce application/pdf
// @Param id path string true "Payment ID"
// @Success 200 {string} string "PDF receipt"
// @Router /payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c *gin.Context) {
	data, err := h.payments.Receipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, "application/pdf", "receipt-"+c.Param("id")+".pdf", data)
}
