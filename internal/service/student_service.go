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

type studentStore interface {
	CreateStudent(ctx context.Context, in store.NewStudent) (models.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (models.Student, error)
	GetStudentDetail(ctx context.Context, id string) (models.StudentDetail, error)
	UpdateStudent(ctx context.Context, id string, patch store.StudentPatch) (models.Student, error)
}

// CreateStudentRequest holds the registration-form intake payload.
type CreateStudentRequest struct {
	FirstName         string  `json:"firstName" validate:"required"`
	LastName          string  `json:"lastName" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Phone             string  `json:"phone" validate:"required"`
	DateOfBirth       string  `json:"dateOfBirth" validate:"required"`
	DrivingExperience *string `json:"drivingExperience" validate:"omitempty,oneof=none beginner intermediate experienced"`
	Comments          *string `json:"comments"`
}

// UpdateStudentRequest holds a partial student patch; nil fields are left
// untouched.
type UpdateStudentRequest struct {
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Phone             *string `json:"phone"`
	DateOfBirth       *string `json:"dateOfBirth"`
	DrivingExperience *string `json:"drivingExperience" validate:"omitempty,oneof=none beginner intermediate experienced"`
	Comments          *string `json:"comments"`
}

// StudentService handles student intake and lookup use-cases.
type StudentService struct {
	store     studentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(st studentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: st, validator: validate, logger: logger}
}

// Create registers a new student, rejecting duplicate emails.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, validationError(err, "Invalid student data")
	}

	if _, err := s.store.GetStudentByEmail(ctx, req.Email); err == nil {
		return models.Student{}, appErrors.Clone(appErrors.ErrEmailExists, "")
	} else if !errors.Is(err, store.ErrNotFound) {
		s.logger.Error("student email lookup failed", zap.Error(err))
		return models.Student{}, appErrors.Clone(appErrors.ErrInternal, "Failed to create student")
	}

	student, err := s.store.CreateStudent(ctx, store.NewStudent{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		DateOfBirth:       req.DateOfBirth,
		DrivingExperience: req.DrivingExperience,
		Comments:          req.Comments,
	})
	if err != nil {
		s.logger.Error("student create failed", zap.Error(err))
		return models.Student{}, appErrors.Clone(appErrors.ErrInternal, "Failed to create student")
	}
	return student, nil
}

// Get returns the student joined with its registrations.
func (s *StudentService) Get(ctx context.Context, id string) (models.StudentDetail, error) {
	detail, err := s.store.GetStudentDetail(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.StudentDetail{}, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		s.logger.Error("student fetch failed", zap.Error(err))
		return models.StudentDetail{}, appErrors.Clone(appErrors.ErrInternal, "Failed to fetch student")
	}
	return detail, nil
}

// GetByEmail returns the bare student record for an email address.
func (s *StudentService) GetByEmail(ctx context.Context, email string) (models.Student, error) {
	student, err := s.store.GetStudentByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		s.logger.Error("student fetch by email failed", zap.Error(err))
		return models.Student{}, appErrors.Clone(appErrors.ErrInternal, "Failed to fetch student")
	}
	return student, nil
}

// Update applies a partial patch to an existing student.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, validationError(err, "Invalid student data")
	}

	student, err := s.store.UpdateStudent(ctx, id, store.StudentPatch{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		DateOfBirth:       req.DateOfBirth,
		DrivingExperience: req.DrivingExperience,
		Comments:          req.Comments,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		s.logger.Error("student update failed", zap.Error(err))
		return models.Student{}, appErrors.Clone(appErrors.ErrInternal, "Failed to update student")
	}
	return student, nil
}
