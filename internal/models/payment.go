package models

import "time"

// Payment record statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

// DefaultCurrency is applied when a payment omits its currency.
const DefaultCurrency = "USD"

// ValidPaymentStatuses lists the accepted payment record statuses.
var ValidPaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusSucceeded,
	PaymentStatusFailed,
	PaymentStatusCancelled,
}

// Payment records a charge attempt for a registration. Amount is a decimal
// string; StripePaymentIntentID is an opaque external reference.
type Payment struct {
	ID                    string    `json:"id"`
	RegistrationID        string    `json:"registrationId"`
	Amount                string    `json:"amount"`
	Currency              string    `json:"currency"`
	StripePaymentIntentID *string   `json:"stripePaymentIntentId"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"createdAt"`
}
