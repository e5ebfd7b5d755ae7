package models

import "time"

// Registration lifecycle statuses.
const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusCompleted = "completed"
	RegistrationStatusCancelled = "cancelled"
)

// Registration payment statuses.
const (
	RegistrationPaymentPending = "pending"
	RegistrationPaymentPaid    = "paid"
	RegistrationPaymentFailed  = "failed"
)

// ValidRegistrationStatuses lists the accepted registration statuses.
var ValidRegistrationStatuses = []string{
	RegistrationStatusPending,
	RegistrationStatusConfirmed,
	RegistrationStatusCompleted,
	RegistrationStatusCancelled,
}

// ValidRegistrationPaymentStatuses lists the accepted payment states tracked
// on the registration itself.
var ValidRegistrationPaymentStatuses = []string{
	RegistrationPaymentPending,
	RegistrationPaymentPaid,
	RegistrationPaymentFailed,
}

// Registration links a student to a course.
type Registration struct {
	ID                 string    `json:"id"`
	StudentID          string    `json:"studentId"`
	CourseID           string    `json:"courseId"`
	PreferredStartDate *string   `json:"preferredStartDate"`
	Status             string    `json:"status"`
	PaymentStatus      string    `json:"paymentStatus"`
	RegistrationDate   time.Time `json:"registrationDate"`
}

// CountsAgainstCapacity reports whether the registration occupies a course
// seat. Cancelled and completed registrations release their seat.
func (r Registration) CountsAgainstCapacity() bool {
	return r.Status == RegistrationStatusPending || r.Status == RegistrationStatusConfirmed
}

// RegistrationSummary enriches a registration with its course and payment for
// the student join.
type RegistrationSummary struct {
	Registration
	Course  Course   `json:"course"`
	Payment *Payment `json:"payment,omitempty"`
}

// RegistrationDetail joins a registration with its student, course and
// (at most one) payment.
type RegistrationDetail struct {
	Registration
	Student Student  `json:"student"`
	Course  Course   `json:"course"`
	Payment *Payment `json:"payment,omitempty"`
}
