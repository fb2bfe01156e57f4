package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/unicourse/registra/internal/app/models"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create inserts a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if err := r.db.WithContext(ctx).Create(enrollment).Error; err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	return nil
}

// GetByID retrieves an enrollment with its student and course.
// Returns (nil, nil) when no record exists.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).Preload("Student").Preload("Course").First(&enrollment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return &enrollment, nil
}

// GetAll retrieves all enrollments
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	if err := r.db.WithContext(ctx).Order("id").Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}

// GetByStudentAndCourse retrieves the enrollment for a student/course pair.
// Returns (nil, nil) when no record exists.
func (r *EnrollmentRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return &enrollment, nil
}

// Delete removes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Enrollment{}, id).Error; err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	return nil
}

// ListCoursesByStudent retrieves the courses a student is enrolled in
func (r *EnrollmentRepository) ListCoursesByStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	var courses []*models.Course
	err := r.db.WithContext(ctx).Model(&models.Course{}).
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.student_id = ?", studentID).
		Order("courses.id").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses for student: %w", err)
	}
	return courses, nil
}

// ListStudentsByCourse retrieves the students enrolled in a course
func (r *EnrollmentRepository) ListStudentsByCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	var students []*models.Student
	err := r.db.WithContext(ctx).Model(&models.Student{}).
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.course_id = ?", courseID).
		Order("students.id").
		Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("error retrieving students for course: %w", err)
	}
	return students, nil
}
