package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/unicourse/registra/internal/app/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID retrieves a student by ID. Returns (nil, nil) when no record exists.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// GetAll retrieves all students, optionally filtered by semester
func (r *StudentRepository) GetAll(ctx context.Context, semester *int) ([]*models.Student, error) {
	query := r.db.WithContext(ctx).Model(&models.Student{})
	if semester != nil {
		query = query.Where("semester = ?", *semester)
	}

	var students []*models.Student
	if err := query.Order("id").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// ExistsByCedula checks whether another student already holds the cedula.
// excludeID ignores a given record, for update checks.
func (r *StudentRepository) ExistsByCedula(ctx context.Context, cedula string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Student{}).Where("cedula = ?", cedula)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("error checking cedula existence: %w", err)
	}
	return count > 0, nil
}

// Update persists changes to an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Save(student).Error; err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// Delete removes a student and its enrollments in one transaction
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return fmt.Errorf("error deleting student enrollments: %w", err)
		}
		if err := tx.Delete(&models.Student{}, id).Error; err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}
		return nil
	})
}
