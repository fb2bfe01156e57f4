package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/unicourse/registra/internal/app/models"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID. Returns (nil, nil) when no record exists.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &course, nil
}

// GetAll retrieves all courses, optionally filtered by credits and a
// partial code match
func (r *CourseRepository) GetAll(ctx context.Context, credits *int, codeContains string) ([]*models.Course, error) {
	query := r.db.WithContext(ctx).Model(&models.Course{})
	if credits != nil {
		query = query.Where("credits = ?", *credits)
	}
	if codeContains != "" {
		query = query.Where("code LIKE ?", "%"+codeContains+"%")
	}

	var courses []*models.Course
	if err := query.Order("id").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// ExistsByCode checks whether another course already holds the code.
// excludeID ignores a given record, for update checks.
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Course{}).Where("code = ?", code)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("error checking course code existence: %w", err)
	}
	return count > 0, nil
}

// Update persists changes to an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	if err := r.db.WithContext(ctx).Save(course).Error; err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// Delete removes a course and its enrollments in one transaction
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return fmt.Errorf("error deleting course enrollments: %w", err)
		}
		if err := tx.Delete(&models.Course{}, id).Error; err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}
		return nil
	})
}
