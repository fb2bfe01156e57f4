package dto

// CreateEnrollmentRequest represents an enrollment of a student in a course
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0" example:"1"`
	CourseID  int64 `json:"courseId" binding:"required,gt=0" example:"2"`
}
