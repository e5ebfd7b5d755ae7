package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/elitedriving/institute-api/internal/models"
)

// MemoryStore keeps every entity collection in process memory, keyed by a
// random UUID. Insertion order is tracked per collection so listings and the
// at-most-one payment lookup stay deterministic. All data is lost on restart.
type MemoryStore struct {
	mu sync.RWMutex

	users         map[string]models.User
	students      map[string]models.Student
	courses       map[string]models.Course
	registrations map[string]models.Registration
	payments      map[string]models.Payment

	userOrder         []string
	studentOrder      []string
	courseOrder       []string
	registrationOrder []string
	paymentOrder      []string
}

// NewMemoryStore constructs the store seeded with the fixed course catalogue.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:         make(map[string]models.User),
		students:      make(map[string]models.Student),
		courses:       make(map[string]models.Course),
		registrations: make(map[string]models.Registration),
		payments:      make(map[string]models.Payment),
	}
	s.seedCourses()
	return s
}

func newID() string {
	return uuid.NewString()
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneCourse(c models.Course) models.Course {
	out := c
	out.Features = append([]string(nil), c.Features...)
	return out
}

func cloneStudent(s models.Student) models.Student {
	out := s
	out.DrivingExperience = cloneStr(s.DrivingExperience)
	out.Comments = cloneStr(s.Comments)
	return out
}

func cloneRegistration(r models.Registration) models.Registration {
	out := r
	out.PreferredStartDate = cloneStr(r.PreferredStartDate)
	return out
}

func clonePayment(p models.Payment) models.Payment {
	out := p
	out.StripePaymentIntentID = cloneStr(p.StripePaymentIntentID)
	return out
}

// --- legacy users ---

func (s *MemoryStore) CreateUser(ctx context.Context, in NewUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       newID(),
		Username: in.Username,
		Password: in.Password,
	}
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return user, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			return s.users[id], nil
		}
	}
	return models.User{}, ErrNotFound
}

// --- students ---

func (s *MemoryStore) CreateStudent(ctx context.Context, in NewStudent) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := models.Student{
		ID:                newID(),
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		Phone:             in.Phone,
		DateOfBirth:       in.DateOfBirth,
		DrivingExperience: cloneStr(in.DrivingExperience),
		Comments:          cloneStr(in.Comments),
		CreatedAt:         time.Now().UTC(),
	}
	s.students[student.ID] = student
	s.studentOrder = append(s.studentOrder, student.ID)
	return cloneStudent(student), nil
}

func (s *MemoryStore) GetStudent(ctx context.Context, id string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[id]
	if !ok {
		return models.Student{}, ErrNotFound
	}
	return cloneStudent(student), nil
}

func (s *MemoryStore) GetStudentByEmail(ctx context.Context, email string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.studentOrder {
		if s.students[id].Email == email {
			return cloneStudent(s.students[id]), nil
		}
	}
	return models.Student{}, ErrNotFound
}

// GetStudentDetail joins the student with its registrations, each enriched
// with course and payment. Registrations whose course reference no longer
// resolves are dropped.
func (s *MemoryStore) GetStudentDetail(ctx context.Context, id string) (models.StudentDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[id]
	if !ok {
		return models.StudentDetail{}, ErrNotFound
	}

	detail := models.StudentDetail{
		Student:       cloneStudent(student),
		Registrations: []models.RegistrationSummary{},
	}
	for _, regID := range s.registrationOrder {
		reg := s.registrations[regID]
		if reg.StudentID != id {
			continue
		}
		course, ok := s.courses[reg.CourseID]
		if !ok {
			continue
		}
		summary := models.RegistrationSummary{
			Registration: cloneRegistration(reg),
			Course:       cloneCourse(course),
		}
		if payment, ok := s.findPaymentLocked(reg.ID); ok {
			summary.Payment = &payment
		}
		detail.Registrations = append(detail.Registrations, summary)
	}
	return detail, nil
}

func (s *MemoryStore) UpdateStudent(ctx context.Context, id string, patch StudentPatch) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[id]
	if !ok {
		return models.Student{}, ErrNotFound
	}

	if patch.FirstName != nil {
		student.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		student.LastName = *patch.LastName
	}
	if patch.Email != nil {
		student.Email = *patch.Email
	}
	if patch.Phone != nil {
		student.Phone = *patch.Phone
	}
	if patch.DateOfBirth != nil {
		student.DateOfBirth = *patch.DateOfBirth
	}
	if patch.DrivingExperience != nil {
		student.DrivingExperience = cloneStr(patch.DrivingExperience)
	}
	if patch.Comments != nil {
		student.Comments = cloneStr(patch.Comments)
	}

	s.students[id] = student
	return cloneStudent(student), nil
}

// --- courses ---

func (s *MemoryStore) CreateCourse(ctx context.Context, in NewCourse) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	isActive := 1
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	course := models.Course{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Duration:    in.Duration,
		Capacity:    in.Capacity,
		Price:       in.Price,
		Features:    append([]string(nil), in.Features...),
		IsActive:    isActive,
	}
	s.courses[course.ID] = course
	s.courseOrder = append(s.courseOrder, course.ID)
	return cloneCourse(course), nil
}

func (s *MemoryStore) GetCourse(ctx context.Context, id string) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return models.Course{}, ErrNotFound
	}
	return cloneCourse(course), nil
}

func (s *MemoryStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]models.Course, 0, len(s.courseOrder))
	for _, id := range s.courseOrder {
		courses = append(courses, cloneCourse(s.courses[id]))
	}
	return courses, nil
}

func (s *MemoryStore) ListActiveCourses(ctx context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]models.Course, 0, len(s.courseOrder))
	for _, id := range s.courseOrder {
		if s.courses[id].IsActive == 1 {
			courses = append(courses, cloneCourse(s.courses[id]))
		}
	}
	return courses, nil
}

func (s *MemoryStore) UpdateCourse(ctx context.Context, id string, patch CoursePatch) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return models.Course{}, ErrNotFound
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.Type != nil {
		course.Type = *patch.Type
	}
	if patch.Duration != nil {
		course.Duration = *patch.Duration
	}
	if patch.Capacity != nil {
		course.Capacity = *patch.Capacity
	}
	if patch.Price != nil {
		course.Price = *patch.Price
	}
	if patch.Features != nil {
		course.Features = append([]string(nil), patch.Features...)
	}
	if patch.IsActive != nil {
		course.IsActive = *patch.IsActive
	}

	s.courses[id] = course
	return cloneCourse(course), nil
}

// --- registrations ---

// CreateRegistration resolves both foreign keys and performs the capacity
// count and the insert under one write lock, so the pending+confirmed count
// for a course can never exceed its capacity under concurrent requests.
func (s *MemoryStore) CreateRegistration(ctx context.Context, in NewRegistration) (models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[in.StudentID]; !ok {
		return models.Registration{}, ErrStudentNotFound
	}
	course, ok := s.courses[in.CourseID]
	if !ok {
		return models.Registration{}, ErrCourseNotFound
	}

	occupied := 0
	for _, regID := range s.registrationOrder {
		reg := s.registrations[regID]
		if reg.CourseID == in.CourseID && reg.CountsAgainstCapacity() {
			occupied++
		}
	}
	if occupied >= course.Capacity {
		return models.Registration{}, ErrCourseFull
	}

	status := in.Status
	if status == "" {
		status = models.RegistrationStatusPending
	}
	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.RegistrationPaymentPending
	}

	registration := models.Registration{
		ID:                 newID(),
		StudentID:          in.StudentID,
		CourseID:           in.CourseID,
		PreferredStartDate: cloneStr(in.PreferredStartDate),
		Status:             status,
		PaymentStatus:      paymentStatus,
		RegistrationDate:   time.Now().UTC(),
	}
	s.registrations[registration.ID] = registration
	s.registrationOrder = append(s.registrationOrder, registration.ID)
	return cloneRegistration(registration), nil
}

func (s *MemoryStore) GetRegistration(ctx context.Context, id string) (models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registration, ok := s.registrations[id]
	if !ok {
		return models.Registration{}, ErrNotFound
	}
	return cloneRegistration(registration), nil
}

// GetRegistrationDetail joins the registration with its student, course and
// payment. A dangling student or course reference makes the whole detail
// absent.
func (s *MemoryStore) GetRegistrationDetail(ctx context.Context, id string) (models.RegistrationDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registration, ok := s.registrations[id]
	if !ok {
		return models.RegistrationDetail{}, ErrNotFound
	}
	student, ok := s.students[registration.StudentID]
	if !ok {
		return models.RegistrationDetail{}, ErrNotFound
	}
	course, ok := s.courses[registration.CourseID]
	if !ok {
		return models.RegistrationDetail{}, ErrNotFound
	}

	detail := models.RegistrationDetail{
		Registration: cloneRegistration(registration),
		Student:      cloneStudent(student),
		Course:       cloneCourse(course),
	}
	if payment, ok := s.findPaymentLocked(id); ok {
		detail.Payment = &payment
	}
	return detail, nil
}

func (s *MemoryStore) ListStudentRegistrations(ctx context.Context, studentID string) ([]models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registrations := []models.Registration{}
	for _, id := range s.registrationOrder {
		if s.registrations[id].StudentID == studentID {
			registrations = append(registrations, cloneRegistration(s.registrations[id]))
		}
	}
	return registrations, nil
}

func (s *MemoryStore) ListCourseRegistrations(ctx context.Context, courseID string) ([]models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registrations := []models.Registration{}
	for _, id := range s.registrationOrder {
		if s.registrations[id].CourseID == courseID {
			registrations = append(registrations, cloneRegistration(s.registrations[id]))
		}
	}
	return registrations, nil
}

func (s *MemoryStore) UpdateRegistrationStatus(ctx context.Context, id, status string) (models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registration, ok := s.registrations[id]
	if !ok {
		return models.Registration{}, ErrNotFound
	}
	registration.Status = status
	s.registrations[id] = registration
	return cloneRegistration(registration), nil
}

func (s *MemoryStore) UpdateRegistrationPaymentStatus(ctx context.Context, id, paymentStatus string) (models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registration, ok := s.registrations[id]
	if !ok {
		return models.Registration{}, ErrNotFound
	}
	registration.PaymentStatus = paymentStatus
	s.registrations[id] = registration
	return cloneRegistration(registration), nil
}

// --- payments ---

func (s *MemoryStore) CreatePayment(ctx context.Context, in NewPayment) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	currency := in.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}
	status := in.Status
	if status == "" {
		status = models.PaymentStatusPending
	}

	payment := models.Payment{
		ID:                    newID(),
		RegistrationID:        in.RegistrationID,
		Amount:                in.Amount,
		Currency:              currency,
		StripePaymentIntentID: cloneStr(in.StripePaymentIntentID),
		Status:                status,
		CreatedAt:             time.Now().UTC(),
	}
	s.payments[payment.ID] = payment
	s.paymentOrder = append(s.paymentOrder, payment.ID)
	return clonePayment(payment), nil
}

func (s *MemoryStore) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.payments[id]
	if !ok {
		return models.Payment{}, ErrNotFound
	}
	return clonePayment(payment), nil
}

func (s *MemoryStore) GetPaymentByRegistration(ctx context.Context, registrationID string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.findPaymentLocked(registrationID)
	if !ok {
		return models.Payment{}, ErrNotFound
	}
	return payment, nil
}

func (s *MemoryStore) UpdatePaymentStatus(ctx context.Context, id, status string, stripePaymentIntentID *string) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[id]
	if !ok {
		return models.Payment{}, ErrNotFound
	}
	payment.Status = status
	if stripePaymentIntentID != nil {
		payment.StripePaymentIntentID = cloneStr(stripePaymentIntentID)
	}
	s.payments[id] = payment
	return clonePayment(payment), nil
}

// findPaymentLocked returns the oldest payment for a registration. Uniqueness
// per registration is not enforced at creation; the first created wins here.
func (s *MemoryStore) findPaymentLocked(registrationID string) (models.Payment, bool) {
	for _, id := range s.paymentOrder {
		if s.payments[id].RegistrationID == registrationID {
			return clonePayment(s.payments[id]), true
		}
	}
	return models.Payment{}, false
}
