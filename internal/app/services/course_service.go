package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/unicourse/registra/internal/app/models"
	"github.com/unicourse/registra/internal/app/models/dto"
	"github.com/unicourse/registra/internal/app/repositories"
	"github.com/unicourse/registra/internal/pkg/apperrors"
	"github.com/unicourse/registra/internal/pkg/validation"
)

// CourseService handles course-related operations
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, enrollmentRepo *repositories.EnrollmentRepository) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// validateCourse validates course data before database operations
func (s *CourseService) validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationError("course is nil")
	}

	if !validation.IsValidCourseCode(course.Code) {
		return apperrors.ErrInvalidCourseCode
	}

	if strings.TrimSpace(course.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}

	if !validation.IsValidCredits(course.Credits) {
		return apperrors.ErrInvalidCredits
	}

	if !validation.IsValidSchedule(course.Schedule) {
		return apperrors.ErrInvalidSchedule
	}

	return nil
}

// CreateCourse registers a new course after validating its fields and
// code uniqueness. The schedule is stored normalized.
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	exists, err := s.courseRepo.ExistsByCode(ctx, course.Code, 0)
	if err != nil {
		return fmt.Errorf("error checking course code: %w", err)
	}
	if exists {
		return apperrors.ErrCourseCodeAlreadyExists
	}

	course.Schedule = validation.NormalizeSchedule(course.Schedule)

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid course ID")
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// GetCourseWithStudents retrieves a course with its enrolled students attached
func (s *CourseService) GetCourseWithStudents(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	students, err := s.enrollmentRepo.ListStudentsByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course students: %w", err)
	}

	course.Students = make([]models.Student, 0, len(students))
	for _, student := range students {
		course.Students = append(course.Students, *student)
	}
	return course, nil
}

// GetAllCourses retrieves all courses, optionally filtered by credits and
// a partial code match
func (s *CourseService) GetAllCourses(ctx context.Context, credits *int, codeContains string) ([]*models.Course, error) {
	if credits != nil && !validation.IsValidCredits(*credits) {
		return nil, apperrors.ErrInvalidCredits
	}

	courses, err := s.courseRepo.GetAll(ctx, credits, codeContains)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse applies a partial update to an existing course.
// Present fields are re-validated; code uniqueness excludes the record itself.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		if !validation.IsValidCourseCode(*req.Code) {
			return nil, apperrors.ErrInvalidCourseCode
		}
		exists, err := s.courseRepo.ExistsByCode(ctx, *req.Code, id)
		if err != nil {
			return nil, fmt.Errorf("error checking course code: %w", err)
		}
		if exists {
			return nil, apperrors.ErrCourseCodeAlreadyExists
		}
		course.Code = *req.Code
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		course.Name = *req.Name
	}

	if req.Credits != nil {
		if !validation.IsValidCredits(*req.Credits) {
			return nil, apperrors.ErrInvalidCredits
		}
		course.Credits = *req.Credits
	}

	if req.Schedule != nil {
		if !validation.IsValidSchedule(*req.Schedule) {
			return nil, apperrors.ErrInvalidSchedule
		}
		course.Schedule = validation.NormalizeSchedule(*req.Schedule)
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return course, nil
}

// DeleteCourse deletes a course and its enrollments
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if _, err := s.GetCourseByID(ctx, id); err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
