package store

import (
	"context"
	"errors"

	"github.com/elitedriving/institute-api/internal/models"
)

// Sentinel errors returned by Store implementations. Reads report absence with
// ErrNotFound; CreateRegistration reports referential-integrity violations and
// capacity exhaustion with the dedicated sentinels so callers can name the
// missing entity.
var (
	ErrNotFound        = errors.New("record not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrCourseFull      = errors.New("course is at full capacity")
)

// NewStudent is the intake payload for a student record.
type NewStudent struct {
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	DateOfBirth       string
	DrivingExperience *string
	Comments          *string
}

// StudentPatch carries a partial student update; nil fields are left untouched.
type StudentPatch struct {
	FirstName         *string
	LastName          *string
	Email             *string
	Phone             *string
	DateOfBirth       *string
	DrivingExperience *string
	Comments          *string
}

// NewCourse is the creation payload for a course. A nil IsActive defaults to 1.
type NewCourse struct {
	Title       string
	Description string
	Type        string
	Duration    string
	Capacity    int
	Price       string
	Features    []string
	IsActive    *int
}

// CoursePatch carries a partial course update; nil fields are left untouched.
type CoursePatch struct {
	Title       *string
	Description *string
	Type        *string
	Duration    *string
	Capacity    *int
	Price       *string
	Features    []string
	IsActive    *int
}

// NewRegistration links a student to a course. Empty statuses default to
// "pending".
type NewRegistration struct {
	StudentID          string
	CourseID           string
	PreferredStartDate *string
	Status             string
	PaymentStatus      string
}

// NewPayment is the creation payload for a payment record. An empty currency
// defaults to USD and an empty status to "pending".
type NewPayment struct {
	RegistrationID        string
	Amount                string
	Currency              string
	StripePaymentIntentID *string
	Status                string
}

// NewUser is the creation payload for a legacy user account. Password is
// expected to be hashed already.
type NewUser struct {
	Username string
	Password string
}

// Store is the system of record for the process lifetime. Implementations
// generate identifiers and assign creation timestamps; callers never supply
// either.
type Store interface {
	CreateUser(ctx context.Context, in NewUser) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	CreateStudent(ctx context.Context, in NewStudent) (models.Student, error)
	GetStudent(ctx context.Context, id string) (models.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (models.Student, error)
	GetStudentDetail(ctx context.Context, id string) (models.StudentDetail, error)
	UpdateStudent(ctx context.Context, id string, patch StudentPatch) (models.Student, error)

	CreateCourse(ctx context.Context, in NewCourse) (models.Course, error)
	GetCourse(ctx context.Context, id string) (models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListActiveCourses(ctx context.Context) ([]models.Course, error)
	UpdateCourse(ctx context.Context, id string, patch CoursePatch) (models.Course, error)

	CreateRegistration(ctx context.Context, in NewRegistration) (models.Registration, error)
	GetRegistration(ctx context.Context, id string) (models.Registration, error)
	GetRegistrationDetail(ctx context.Context, id string) (models.RegistrationDetail, error)
	ListStudentRegistrations(ctx context.Context, studentID string) ([]models.Registration, error)
	ListCourseRegistrations(ctx context.Context, courseID string) ([]models.Registration, error)
	UpdateRegistrationStatus(ctx context.Context, id, status string) (models.Registration, error)
	UpdateRegistrationPaymentStatus(ctx context.Context, id, paymentStatus string) (models.Registration, error)

	CreatePayment(ctx context.Context, in NewPayment) (models.Payment, error)
	GetPayment(ctx context.Context, id string) (models.Payment, error)
	GetPaymentByRegistration(ctx context.Context, registrationID string) (models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id, status string, stripePaymentIntentID *string) (models.Payment, error)
}
