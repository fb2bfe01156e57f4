package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/unicourse/registra/internal/app/models"
	"github.com/unicourse/registra/internal/config"
)

// SQLiteDB wraps the embedded database handle.
type SQLiteDB struct {
	DB *gorm.DB
}

// NewSQLiteDB opens the file-backed SQLite database and prepares the schema.
// The store needs no external configuration; a path (or ":memory:") is enough.
func NewSQLiteDB(cfg *config.Config) (*SQLiteDB, error) {
	db, err := Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	return &SQLiteDB{DB: db}, nil
}

// Open opens a SQLite database at the given path and runs auto-migration.
func Open(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return db, nil
}

// migrate creates or updates tables for all registered models.
// Independent tables first, then the join table that references them.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.Course{},
		&models.Enrollment{},
	)
}

// Close closes the underlying connection.
func (s *SQLiteDB) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
