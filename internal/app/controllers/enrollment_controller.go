package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unicourse/registra/internal/app/models/dto"
	"github.com/unicourse/registra/internal/app/services"
	"github.com/unicourse/registra/internal/middleware"
)

// EnrollmentController handles enrollment-related endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollment enrolls a student in a course
// @Summary Enroll a student in a course
// @Description Creates an enrollment; rejects a missing student or course, a duplicate enrollment, and a schedule conflict with the student's existing courses
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrollment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment data"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate enrollment or schedule conflict"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err)))
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx, req.StudentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment))
}

// GetAllEnrollments lists enrollments
// @Summary List enrollments
// @Description Retrieves all enrollments
// @Tags enrollments
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment by ID
// @Description Retrieves an enrollment together with its student and course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment ID")
		errorDetail = errorDetail.WithDetails("Enrollment ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// DeleteEnrollment removes an enrollment by ID
// @Summary Unenroll by enrollment ID
// @Description Deletes an enrollment by its ID
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 204 "Enrollment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment ID")
		errorDetail = errorDetail.WithDetails("Enrollment ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.enrollmentService.Unenroll(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteEnrollmentByPair removes the enrollment for a student/course pair
// @Summary Unenroll a student from a course
// @Description Deletes the enrollment identified by the studentId/courseId pair
// @Tags enrollments
// @Accept json
// @Produce json
// @Param studentId query int true "Student ID"
// @Param courseId query int true "Course ID"
// @Success 204 "Enrollment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student or course ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [delete]
func (c *EnrollmentController) DeleteEnrollmentByPair(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Query("studentId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("studentId must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courseID, err := strconv.ParseInt(ctx.Query("courseId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("courseId must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.enrollmentService.UnenrollByPair(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
