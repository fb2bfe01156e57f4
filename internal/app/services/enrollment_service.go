package services

import (
	"context"
	"fmt"

	"github.com/unicourse/registra/internal/app/models"
	"github.com/unicourse/registra/internal/app/repositories"
	"github.com/unicourse/registra/internal/pkg/apperrors"
	"github.com/unicourse/registra/internal/pkg/validation"
)

// EnrollmentService handles enrollment of students in courses
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	studentRepo    *repositories.StudentRepository
	courseRepo     *repositories.CourseRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

// Enroll enrolls a student in a course. The student and course must exist,
// the student must not already hold the course, and no enrolled course of
// the student may occupy the same time slot.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if studentID <= 0 || courseID <= 0 {
		return nil, apperrors.NewValidationError("student ID and course ID must be positive")
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	existing, err := s.enrollmentRepo.GetByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing enrollment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	enrolled, err := s.enrollmentRepo.ListCoursesByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking schedule conflicts: %w", err)
	}
	for _, other := range enrolled {
		if validation.SchedulesCollide(other.Schedule, course.Schedule) {
			return nil, apperrors.ErrScheduleConflict
		}
	}

	enrollment := &models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	enrollment.Student = student
	enrollment.Course = course
	return enrollment, nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *EnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid enrollment ID")
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

// GetAllEnrollments retrieves all enrollments
func (s *EnrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}

// Unenroll removes an enrollment by ID
func (s *EnrollmentService) Unenroll(ctx context.Context, id int64) error {
	if _, err := s.GetEnrollmentByID(ctx, id); err != nil {
		return err
	}

	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	return nil
}

// UnenrollByPair removes the enrollment for a student/course pair
func (s *EnrollmentService) UnenrollByPair(ctx context.Context, studentID, courseID int64) error {
	if studentID <= 0 || courseID <= 0 {
		return apperrors.NewValidationError("student ID and course ID must be positive")
	}

	enrollment, err := s.enrollmentRepo.GetByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return fmt.Errorf("error retrieving enrollment: %w", err)
	}
	if enrollment == nil {
		return apperrors.ErrEnrollmentNotFound
	}

	if err := s.enrollmentRepo.Delete(ctx, enrollment.ID); err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	return nil
}
