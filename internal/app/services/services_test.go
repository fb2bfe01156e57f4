package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unicourse/registra/internal/app/models"
	"github.com/unicourse/registra/internal/app/repositories"
	"github.com/unicourse/registra/internal/db"
)

type testEnv struct {
	students    *StudentService
	courses     *CourseService
	enrollments *EnrollmentService
}

// newTestEnv wires the full service stack against an in-memory database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := db.Open(":memory:")
	require.NoError(t, err)

	repos := repositories.NewRepositories(gdb)
	return &testEnv{
		students:    NewStudentService(repos.StudentRepository, repos.EnrollmentRepository),
		courses:     NewCourseService(repos.CourseRepository, repos.EnrollmentRepository),
		enrollments: NewEnrollmentService(repos.EnrollmentRepository, repos.StudentRepository, repos.CourseRepository),
	}
}

func (e *testEnv) mustCreateStudent(t *testing.T, cedula, name, email string, semester int) *models.Student {
	t.Helper()

	student := &models.Student{Cedula: cedula, Name: name, Email: email, Semester: semester}
	require.NoError(t, e.students.CreateStudent(context.Background(), student))
	return student
}

func (e *testEnv) mustCreateCourse(t *testing.T, code, name string, credits int, schedule string) *models.Course {
	t.Helper()

	course := &models.Course{Code: code, Name: name, Credits: credits, Schedule: schedule}
	require.NoError(t, e.courses.CreateCourse(context.Background(), course))
	return course
}
