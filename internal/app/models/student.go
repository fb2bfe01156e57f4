package models

// Student represents a registered student.
type Student struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Cedula   string `json:"cedula" gorm:"uniqueIndex;not null;size:10"`
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Semester int    `json:"semester" gorm:"not null"`

	// Relations (populated when needed)
	Enrollments []Enrollment `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Courses     []Course     `json:"courses,omitempty" gorm:"-"`
}

// TableName maps the model to its table
func (Student) TableName() string { return "students" }
