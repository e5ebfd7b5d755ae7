package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/elitedriving/institute-api/internal/models"
	"github.com/elitedriving/institute-api/internal/store"
	appErrors "github.com/elitedriving/institute-api/pkg/errors"
	"github.com/elitedriving/institute-api/pkg/export"
)

type courseStore interface {
	CreateCourse(ctx context.Context, in store.NewCourse) (models.Course, error)
	GetCourse(ctx context.Context, id string) (models.Course, error)
	ListActiveCourses(ctx context.Context) ([]models.Course, error)
	UpdateCourse(ctx context.Context, id string, patch store.CoursePatch) (models.Course, error)
	ListCourseRegistrations(ctx context.Context, courseID string) ([]models.Registration, error)
	GetStudent(ctx context.Context, id string) (models.Student, error)
}

// CreateCourseRequest is the catalogue-management payload. Capacity is
// deliberately not constrained to be positive: a zero-capacity course simply
// accepts no registrations.
type CreateCourseRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Duration    string   `json:"duration" validate:"required"`
	Capacity    int      `json:"capacity"`
	Price       string   `json:"price" validate:"required"`
	Features    []string `json:"features" validate:"required"`
	IsActive    *int     `json:"isActive" validate:"omitempty,oneof=0 1"`
}

// UpdateCourseRequest carries a partial course patch; nil fields are left
// untouched.
type UpdateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Type        *string  `json:"type"`
	Duration    *string  `json:"duration"`
	Capacity    *int     `json:"capacity"`
	Price       *string  `json:"price"`
	Features    []string `json:"features"`
	IsActive    *int     `json:"isActive" validate:"omitempty,oneof=0 1"`
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// CourseService handles catalogue reads and roster exports.
type CourseService struct {
	store     courseStore
	validator *validator.Validate
	logger    *zap.Logger
	csv       csvRenderer
}

// NewCourseService constructs the course service.
func NewCourseService(st courseStore, validate *validator.Validate, logger *zap.Logger, csv csvRenderer) *CourseService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	return &CourseService{store: st, validator: validate, logger: logger, csv: csv}
}

// ListActive returns every course currently offered to the public site.
func (s *CourseService) ListActive(ctx context.Context) ([]models.Course, error) {
	courses, err := s.store.ListActiveCourses(ctx)
	if err != nil {
		s.logger.Error("course list failed", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrInternal, "Failed to fetch courses")
	}
	return courses, nil
}

// Get returns a single course.
func (s *CourseService) Get(ctx context.Context, id string) (models.Course, error) {
	course, err := s.store.GetCourse(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		s.logger.Error("course fetch failed", zap.Error(err))
		return models.Course{}, appErrors.Clone(appErrors.ErrInternal, "Failed to fetch course")
	}
	return course, nil
}

// Create adds a course to the catalogue.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Course{}, validationError(err, "Invalid course data")
	}
	course, err := s.store.CreateCourse(ctx, store.NewCourse{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Duration:    req.Duration,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Features:    req.Features,
		IsActive:    req.IsActive,
	})
	if err != nil {
		s.logger.Error("course create failed", zap.Error(err))
		return models.Course{}, appErrors.Clone(appErrors.ErrInternal, "Failed to create course")
	}
	return course, nil
}

// Update applies a partial patch to an existing course.
func (s *CourseService) Update(ctx context.Context, id string, req UpdateCourseRequest) (models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Course{}, validationError(err, "Invalid course data")
	}
	course, err := s.store.UpdateCourse(ctx, id, store.CoursePatch{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Duration:    req.Duration,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Features:    req.Features,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		s.logger.Error("course update failed", zap.Error(err))
		return models.Course{}, appErrors.Clone(appErrors.ErrInternal, "Failed to update course")
	}
	return course, nil
}

// RosterCSV renders the course's registration roster. Registrations whose
// student reference no longer resolves are skipped.
func (s *CourseService) RosterCSV(ctx context.Context, courseID string) ([]byte, string, error) {
	course, err := s.store.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		s.logger.Error("course fetch failed", zap.Error(err))
		return nil, "", appErrors.Clone(appErrors.ErrInternal, "Failed to export roster")
	}

	registrations, err := s.store.ListCourseRegistrations(ctx, courseID)
	if err != nil {
		s.logger.Error("roster listing failed", zap.Error(err))
		return nil, "", appErrors.Clone(appErrors.ErrInternal, "Failed to export roster")
	}

	headers := []string{"Registration ID", "Student", "Email", "Status", "Payment Status", "Registered At"}
	rows := make([]map[string]string, 0, len(registrations))
	for _, reg := range registrations {
		student, err := s.store.GetStudent(ctx, reg.StudentID)
		if err != nil {
			continue
		}
		rows = append(rows, map[string]string{
			"Registration ID": reg.ID,
			"Student":         student.FirstName + " " + student.LastName,
			"Email":           student.Email,
			"Status":          reg.Status,
			"Payment Status":  reg.PaymentStatus,
			"Registered At":   reg.RegistrationDate.Format("2006-01-02 15:04:05"),
		})
	}

	data, err := s.csv.Render(export.Dataset{Headers: headers, Rows: rows})
	if err != nil {
		s.logger.Error("roster render failed", zap.Error(err))
		return nil, "", appErrors.Clone(appErrors.ErrInternal, "Failed to export roster")
	}
	return data, course.Title, nil
}
