package store

import (
	"context"
	"time"

	"github.com/elitedriving/institute-api/internal/models"
)

// OpRecorder receives the timing of every store operation.
type OpRecorder interface {
	ObserveStoreOp(op string, duration time.Duration)
}

// Instrumented decorates a Store with per-operation timing.
type Instrumented struct {
	next     Store
	recorder OpRecorder
}

// NewInstrumented wraps a store with the given recorder.
func NewInstrumented(next Store, recorder OpRecorder) *Instrumented {
	return &Instrumented{next: next, recorder: recorder}
}

func (s *Instrumented) observe(op string, start time.Time) {
	if s.recorder != nil {
		s.recorder.ObserveStoreOp(op, time.Since(start))
	}
}

func (s *Instrumented) CreateUser(ctx context.Context, in NewUser) (models.User, error) {
	defer s.observe("create_user", time.Now())
	return s.next.CreateUser(ctx, in)
}

func (s *Instrumented) GetUser(ctx context.Context, id string) (models.User, error) {
	defer s.observe("get_user", time.Now())
	return s.next.GetUser(ctx, id)
}

func (s *Instrumented) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	defer s.observe("get_user_by_username", time.Now())
	return s.next.GetUserByUsername(ctx, username)
}

func (s *Instrumented) CreateStudent(ctx context.Context, in NewStudent) (models.Student, error) {
	defer s.observe("create_student", time.Now())
	return s.next.CreateStudent(ctx, in)
}

func (s *Instrumented) GetStudent(ctx context.Context, id string) (models.Student, error) {
	defer s.observe("get_student", time.Now())
	return s.next.GetStudent(ctx, id)
}

func (s *Instrumented) GetStudentByEmail(ctx context.Context, email string) (models.Student, error) {
	defer s.observe("get_student_by_email", time.Now())
	return s.next.GetStudentByEmail(ctx, email)
}

func (s *Instrumented) GetStudentDetail(ctx context.Context, id string) (models.StudentDetail, error) {
	defer s.observe("get_student_detail", time.Now())
	return s.next.GetStudentDetail(ctx, id)
}

func (s *Instrumented) UpdateStudent(ctx context.Context, id string, patch StudentPatch) (models.Student, error) {
	defer s.observe("update_student", time.Now())
	return s.next.UpdateStudent(ctx, id, patch)
}

func (s *Instrumented) CreateCourse(ctx context.Context, in NewCourse) (models.Course, error) {
	defer s.observe("create_course", time.Now())
	return s.next.CreateCourse(ctx, in)
}

func (s *Instrumented) GetCourse(ctx context.Context, id string) (models.Course, error) {
	defer s.observe("get_course", time.Now())
	return s.next.GetCourse(ctx, id)
}

func (s *Instrumented) ListCourses(ctx context.Context) ([]models.Course, error) {
	defer s.observe("list_courses", time.Now())
	return s.next.ListCourses(ctx)
}

func (s *Instrumented) ListActiveCourses(ctx context.Context) ([]models.Course, error) {
	defer s.observe("list_active_courses", time.Now())
	return s.next.ListActiveCourses(ctx)
}

func (s *Instrumented) UpdateCourse(ctx context.Context, id string, patch CoursePatch) (models.Course, error) {
	defer s.observe("update_course", time.Now())
	return s.next.UpdateCourse(ctx, id, patch)
}

func (s *Instrumented) CreateRegistration(ctx context.Context, in NewRegistration) (models.Registration, error) {
	defer s.observe("create_registration", time.Now())
	return s.next.CreateRegistration(ctx, in)
}

func (s *Instrumented) GetRegistration(ctx context.Context, id string) (models.Registration, error) {
	defer s.observe("get_registration", time.Now())
	return s.next.GetRegistration(ctx, id)
}

func (s *Instrumented) GetRegistrationDetail(ctx context.Context, id string) (models.RegistrationDetail, error) {
	defer s.observe("get_registration_detail", time.Now())
	return s.next.GetRegistrationDetail(ctx, id)
}

func (s *Instrumented) ListStudentRegistrations(ctx context.Context, studentID string) ([]models.Registration, error) {
	defer s.observe("list_student_registrations", time.Now())
	return s.next.ListStudentRegistrations(ctx, studentID)
}

func (s *Instrumented) ListCourseRegistrations(ctx context.Context, courseID string) ([]models.Registration, error) {
	defer s.observe("list_course_registrations", time.Now())
	return s.next.ListCourseRegistrations(ctx, courseID)
}

func (s *Instrumented) UpdateRegistrationStatus(ctx context.Context, id, status string) (models.Registration, error) {
	defer s.observe("update_registration_status", time.Now())
	return s.next.UpdateRegistrationStatus(ctx, id, status)
}

func (s *Instrumented) UpdateRegistrationPaymentStatus(ctx context.Context, id, paymentStatus string) (models.Registration, error) {
	defer s.observe("update_registration_payment_status", time.Now())
	return s.next.UpdateRegistrationPaymentStatus(ctx, id, paymentStatus)
}

func (s *Instrumented) CreatePayment(ctx context.Context, in NewPayment) (models.Payment, error) {
	defer s.observe("create_payment", time.Now())
	return s.next.CreatePayment(ctx, in)
}

func (s *Instrumented) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	defer s.observe("get_payment", time.Now())
	return s.next.GetPayment(ctx, id)
}

func (s *Instrumented) GetPaymentByRegistration(ctx context.Context, registrationID string) (models.Payment, error) {
	defer s.observe("get_payment_by_registration", time.Now())
	return s.next.GetPaymentByRegistration(ctx, registrationID)
}

func (s *Instrumented) UpdatePaymentStatus(ctx context.Context, id, status string, stripePaymentIntentID *string) (models.Payment, error) {
	defer s.observe("update_payment_status", time.Now())
	return s.next.UpdatePaymentStatus(ctx, id, status, stripePaymentIntentID)
}
