package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitedriving/institute-api/internal/models"
)

func newStudent(email string) NewStudent {
	return NewStudent{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       email,
		Phone:       "555-0100",
		DateOfBirth: "1995-04-12",
	}
}

func TestMemoryStoreSeedCatalogue(t *testing.T) {
	s := NewMemoryStore()
	courses, err := s.ListActiveCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 4)

	capacities := map[string]int{}
	for _, course := range courses {
		assert.Equal(t, 1, course.IsActive)
		assert.NotEmpty(t, course.ID)
		capacities[course.Title] = course.Capacity
	}
	assert.Equal(t, 4, capacities["Light Vehicles"])
	assert.Equal(t, 3, capacities["Heavy Vehicles"])
	assert.Equal(t, 6, capacities["Motorcycle"])
	assert.Equal(t, 8, capacities["Simulator"])
}

func TestMemoryStoreStudentLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.CreateStudent(ctx, newStudent("jane@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.DrivingExperience)

	got, err := s.GetStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	byEmail, err := s.GetStudentByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	phone := "555-0199"
	updated, err := s.UpdateStudent(ctx, created.ID, StudentPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, created.Email, updated.Email)

	_, err = s.GetStudent(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetStudentByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UpdateStudent(ctx, "missing", StudentPatch{Phone: &phone})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCreateRegistrationForeignKeys(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	student, err := s.CreateStudent(ctx, newStudent("jane@example.com"))
	require.NoError(t, err)
	courses, err := s.ListActiveCourses(ctx)
	require.NoError(t, err)

	_, err = s.CreateRegistration(ctx, NewRegistration{StudentID: "missing", CourseID: courses[0].ID})
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = s.CreateRegistration(ctx, NewRegistration{StudentID: student.ID, CourseID: "missing"})
	assert.ErrorIs(t, err, ErrCourseNotFound)

	regs, err := s.ListStudentRegistrations(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, regs)

	reg, err := s.CreateRegistration(ctx, NewRegistration{StudentID: student.ID, CourseID: courses[0].ID})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusPending, reg.Status)
	assert.Equal(t, models.RegistrationPaymentPending, reg.PaymentStatus)
	assert.False(t, reg.RegistrationDate.IsZero())
}

func TestMemoryStoreCapacityEnforcement(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	course, err := s.CreateCourse(ctx, NewCourse{
		Title:       "Night Driving",
		Description: "After-dark sessions",
		Type:        models.CourseTypeLightVehicles,
		Duration:    "2 weeks",
		Capacity:    2,
		Price:       "300.00",
		Features:    []string{"Low-light maneuvering"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, course.IsActive)

	var students []models.Student
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		st, err := s.CreateStudent(ctx, newStudent(email))
		require.NoError(t, err)
		students = append(students, st)
	}

	first, err := s.CreateRegistration(ctx, NewRegistration{StudentID: students[0].ID, CourseID: course.ID})
	require.NoError(t, err)
	_, err = s.CreateRegistration(ctx, NewRegistration{StudentID: students[1].ID, CourseID: course.ID, Status: models.RegistrationStatusConfirmed})
	require.NoError(t, err)

	_, err = s.CreateRegistration(ctx, NewRegistration{StudentID: students[2].ID, CourseID: course.ID})
	assert.ErrorIs(t, err, ErrCourseFull)

	// Cancelling a registration releases its seat.
	_, err = s.UpdateRegistrationStatus(ctx, first.ID, models.RegistrationStatusCancelled)
	require.NoError(t, err)
	_, err = s.CreateRegistration(ctx, NewRegistration{StudentID: students[2].ID, CourseID: course.ID})
	require.NoError(t, err)
}

func TestMemoryStoreRegistrationDetailJoins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	student, err := s.CreateStudent(ctx, newStudent("jane@example.com"))
	require.NoError(t, err)
	courses, err := s.ListActiveCourses(ctx)
	require.NoError(t, err)

	reg, err := s.CreateRegistration(ctx, NewRegistration{StudentID: student.ID, CourseID: courses[0].ID})
	require.NoError(t, err)

	detail, err := s.GetRegistrationDetail(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, detail.Student.ID)
	assert.Equal(t, courses[0].ID, detail.Course.ID)
	assert.Nil(t, detail.Payment)

	payment, err := s.CreatePayment(ctx, NewPayment{RegistrationID: reg.ID, Amount: courses[0].Price})
	require.NoError(t, err)
	detail, err = s.GetRegistrationDetail(ctx, reg.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Payment)
	assert.Equal(t, payment.ID, detail.Payment.ID)

	// A dangling course reference makes the whole detail absent.
	delete(s.courses, courses[0].ID)
	_, err = s.GetRegistrationDetail(ctx, reg.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreStudentDetailDropsDanglingCourses(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	student, err := s.CreateStudent(ctx, newStudent("jane@example.com"))
	require.NoError(t, err)
	courses, err := s.ListActiveCourses(ctx)
	require.NoError(t, err)

	_, err = s.CreateRegistration(ctx, NewRegistration{StudentID: student.ID, CourseID: courses[0].ID})
	require.NoError(t, err)
	keep, err := s.CreateRegistration(ctx, NewRegistration{StudentID: student.ID, CourseID: courses[1].ID})
	require.NoError(t, err)

	delete(s.courses, courses[0].ID)

	detail, err := s.GetStudentDetail(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, detail.Registrations, 1)
	assert.Equal(t, keep.ID, detail.Registrations[0].ID)
	assert.Equal(t, courses[1].ID, detail.Registrations[0].Course.ID)
}

func TestMemoryStorePaymentDefaultsAndLookup(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	student, err := s.CreateStudent(ctx, newStudent("jane@example.com"))
	require.NoError(t, err)
	courses, err := s.ListActiveCourses(ctx)
	require.NoError(t, err)
	reg, err := s.CreateRegistration(ctx, NewRegistration{StudentID: student.ID, CourseID: courses[0].ID})
	require.NoError(t, err)

	first, err := s.CreatePayment(ctx, NewPayment{RegistrationID: reg.ID, Amount: "1200.00"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCurrency, first.Currency)
	assert.Equal(t, models.PaymentStatusPending, first.Status)
	assert.Nil(t, first.StripePaymentIntentID)

	// Uniqueness is not enforced; the lookup returns the oldest payment.
	_, err = s.CreatePayment(ctx, NewPayment{RegistrationID: reg.ID, Amount: "1200.00"})
	require.NoError(t, err)
	found, err := s.GetPaymentByRegistration(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	intent := "pi_12345"
	updated, err := s.UpdatePaymentStatus(ctx, first.ID, models.PaymentStatusSucceeded, &intent)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSucceeded, updated.Status)
	require.NotNil(t, updated.StripePaymentIntentID)
	assert.Equal(t, "pi_12345", *updated.StripePaymentIntentID)

	_, err = s.GetPaymentByRegistration(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCourseUpdateAndActiveFilter(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	courses, err := s.ListActiveCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 4)

	inactive := 0
	_, err = s.UpdateCourse(ctx, courses[0].ID, CoursePatch{IsActive: &inactive})
	require.NoError(t, err)

	active, err := s.ListActiveCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 3)

	all, err := s.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMemoryStoreUsers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, NewUser{Username: "frontdesk", Password: "hashed"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	byName, err := s.GetUserByUsername(ctx, "frontdesk")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = s.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
