package models

// Course represents an academic course offering.
type Course struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Code     string `json:"code" gorm:"uniqueIndex;not null;size:6"`
	Name     string `json:"name" gorm:"not null"`
	Credits  int    `json:"credits" gorm:"not null"`
	Schedule string `json:"schedule" gorm:"not null"`

	// Relations (populated when needed)
	Enrollments []Enrollment `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Students    []Student    `json:"students,omitempty" gorm:"-"`
}

// TableName maps the model to its table
func (Course) TableName() string { return "courses" }
