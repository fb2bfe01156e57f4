package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code     string `json:"code" binding:"required" example:"MAT101"`
	Name     string `json:"name" binding:"required" example:"Matemáticas Básicas"`
	Credits  int    `json:"credits" binding:"required,gte=1,lte=6" example:"4"`
	Schedule string `json:"schedule" binding:"required" example:"Lunes y Miércoles 8:00-10:00"`
}

// UpdateCourseRequest represents a partial course update.
// Omitted fields are left untouched.
type UpdateCourseRequest struct {
	Code     *string `json:"code,omitempty" example:"MAT101"`
	Name     *string `json:"name,omitempty" example:"Matemáticas Básicas"`
	Credits  *int    `json:"credits,omitempty" binding:"omitempty,gte=1,lte=6" example:"3"`
	Schedule *string `json:"schedule,omitempty" example:"Martes y Jueves 14:00-16:00"`
}
