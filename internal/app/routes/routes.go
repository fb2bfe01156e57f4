package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/unicourse/registra/internal/app/controllers"
	"github.com/unicourse/registra/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.GET("/:id/courses", studentController.GetStudentCourses)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/students", courseController.GetCourseStudents)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
		// Unenroll by studentId/courseId pair
		enrollments.DELETE("", enrollmentController.DeleteEnrollmentByPair)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
