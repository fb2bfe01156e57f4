package models

// Enrollment is the join record linking a Student to a Course.
// The (student_id, course_id) pair is unique: a student enrolls in a
// given course at most once.
type Enrollment struct {
	ID        int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	StudentID int64 `json:"studentId" gorm:"not null;index;uniqueIndex:idx_enrollments_student_course"`
	CourseID  int64 `json:"courseId" gorm:"not null;index;uniqueIndex:idx_enrollments_student_course"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Course  *Course  `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

// TableName maps the model to its table
func (Enrollment) TableName() string { return "enrollments" }
