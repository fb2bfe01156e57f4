package dto

// CreateStudentRequest represents student registration data
type CreateStudentRequest struct {
	Cedula   string `json:"cedula" binding:"required" example:"12345678"`
	Name     string `json:"name" binding:"required" example:"Ana García"`
	Email    string `json:"email" binding:"required,email" example:"ana.garcia@universidad.edu"`
	Semester int    `json:"semester" binding:"required,gte=1,lte=12" example:"5"`
}

// UpdateStudentRequest represents a partial student update.
// Omitted fields are left untouched.
type UpdateStudentRequest struct {
	Cedula   *string `json:"cedula,omitempty" example:"12345678"`
	Name     *string `json:"name,omitempty" example:"Ana García"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email" example:"ana.garcia@universidad.edu"`
	Semester *int    `json:"semester,omitempty" binding:"omitempty,gte=1,lte=12" example:"6"`
}
