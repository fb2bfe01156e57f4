package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/unicourse/registra/internal/app/models"
)

// CreateDefaultData inserts a small demo dataset when the database is empty.
// Existing data is never touched.
func CreateDefaultData(ctx context.Context, db *gorm.DB, lgr zerolog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Course{}).Count(&count).Error; err != nil {
		return fmt.Errorf("error counting courses: %w", err)
	}
	if count > 0 {
		lgr.Debug().Msg("Database already populated, skipping seed")
		return nil
	}

	courses := []models.Course{
		{Code: "MAT101", Name: "Matemáticas Básicas", Credits: 4, Schedule: "Lunes y Miércoles 8:00-10:00"},
		{Code: "INF202", Name: "Programación II", Credits: 3, Schedule: "Martes y Jueves 10:00-12:00"},
		{Code: "FIS301", Name: "Física General", Credits: 4, Schedule: "Viernes 14:00-18:00"},
	}

	students := []models.Student{
		{Cedula: "12345678", Name: "Ana García", Email: "ana.garcia@universidad.edu", Semester: 5},
		{Cedula: "1098765432", Name: "Juan Pérez", Email: "juan.perez@universidad.edu", Semester: 2},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&courses).Error; err != nil {
			return fmt.Errorf("error seeding courses: %w", err)
		}
		if err := tx.Create(&students).Error; err != nil {
			return fmt.Errorf("error seeding students: %w", err)
		}
		lgr.Info().Int("courses", len(courses)).Int("students", len(students)).Msg("Seeded default data")
		return nil
	})
}
