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

// StudentService handles student-related operations
type StudentService struct {
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, enrollmentRepo *repositories.EnrollmentRepository) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// validateStudent validates student data before database operations
func (s *StudentService) validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("student is nil")
	}

	if !validation.IsValidCedula(student.Cedula) {
		return apperrors.ErrInvalidCedula
	}

	if strings.TrimSpace(student.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}

	if !validation.IsValidEmail(student.Email) {
		return apperrors.ErrInvalidEmail
	}

	if !validation.IsValidSemester(student.Semester) {
		return apperrors.ErrInvalidSemester
	}

	return nil
}

// CreateStudent registers a new student after validating its fields and
// cedula uniqueness
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	exists, err := s.studentRepo.ExistsByCedula(ctx, student.Cedula, 0)
	if err != nil {
		return fmt.Errorf("error checking cedula: %w", err)
	}
	if exists {
		return apperrors.ErrCedulaAlreadyExists
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// GetStudentWithCourses retrieves a student with its enrolled courses attached
func (s *StudentService) GetStudentWithCourses(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	courses, err := s.enrollmentRepo.ListCoursesByStudent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student courses: %w", err)
	}

	student.Courses = make([]models.Course, 0, len(courses))
	for _, course := range courses {
		student.Courses = append(student.Courses, *course)
	}
	return student, nil
}

// GetAllStudents retrieves all students, optionally filtered by semester
func (s *StudentService) GetAllStudents(ctx context.Context, semester *int) ([]*models.Student, error) {
	if semester != nil && !validation.IsValidSemester(*semester) {
		return nil, apperrors.ErrInvalidSemester
	}

	students, err := s.studentRepo.GetAll(ctx, semester)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateStudent applies a partial update to an existing student.
// Present fields are re-validated; cedula uniqueness excludes the record itself.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Cedula != nil {
		if !validation.IsValidCedula(*req.Cedula) {
			return nil, apperrors.ErrInvalidCedula
		}
		exists, err := s.studentRepo.ExistsByCedula(ctx, *req.Cedula, id)
		if err != nil {
			return nil, fmt.Errorf("error checking cedula: %w", err)
		}
		if exists {
			return nil, apperrors.ErrCedulaAlreadyExists
		}
		student.Cedula = *req.Cedula
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		student.Name = *req.Name
	}

	if req.Email != nil {
		if !validation.IsValidEmail(*req.Email) {
			return nil, apperrors.ErrInvalidEmail
		}
		student.Email = *req.Email
	}

	if req.Semester != nil {
		if !validation.IsValidSemester(*req.Semester) {
			return nil, apperrors.ErrInvalidSemester
		}
		student.Semester = *req.Semester
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

// DeleteStudent deletes a student and its enrollments
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if _, err := s.GetStudentByID(ctx, id); err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
