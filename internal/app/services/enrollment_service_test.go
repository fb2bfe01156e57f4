package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicourse/registra/internal/pkg/apperrors"
)

func TestEnroll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustCreateStudent(t, "12345678", "Ana", "ana@universidad.edu", 5)
	math := env.mustCreateCourse(t, "MAT101", "Matemáticas", 4, "Lunes 8:00-10:00")
	physics := env.mustCreateCourse(t, "FIS301", "Física", 3, "Martes 8:00-10:00")

	t.Run("valid enrollment", func(t *testing.T) {
		enrollment, err := env.enrollments.Enroll(ctx, student.ID, math.ID)
		require.NoError(t, err)
		assert.NotZero(t, enrollment.ID)
		require.NotNil(t, enrollment.Student)
		require.NotNil(t, enrollment.Course)
		assert.Equal(t, "12345678", enrollment.Student.Cedula)
		assert.Equal(t, "MAT101", enrollment.Course.Code)
	})

	t.Run("duplicate enrollment rejected", func(t *testing.T) {
		_, err := env.enrollments.Enroll(ctx, student.ID, math.ID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := env.enrollments.Enroll(ctx, 9999, math.ID)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := env.enrollments.Enroll(ctx, student.ID, 9999)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("different time slot is allowed", func(t *testing.T) {
		_, err := env.enrollments.Enroll(ctx, student.ID, physics.ID)
		assert.NoError(t, err)
	})
}

func TestEnrollScheduleConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustCreateStudent(t, "12345678", "Ana", "ana@universidad.edu", 5)
	math := env.mustCreateCourse(t, "MAT101", "Matemáticas", 4, "Lunes 8:00-10:00")
	clashing := env.mustCreateCourse(t, "QUI110", "Química", 3, "lunes  8:00-10:00")
	other := env.mustCreateStudent(t, "87654321", "Luis", "luis@universidad.edu", 3)

	_, err := env.enrollments.Enroll(ctx, student.ID, math.ID)
	require.NoError(t, err)

	// same slot, different spacing and case
	_, err = env.enrollments.Enroll(ctx, student.ID, clashing.ID)
	assert.ErrorIs(t, err, apperrors.ErrScheduleConflict)

	// the conflict is per student
	_, err = env.enrollments.Enroll(ctx, other.ID, clashing.ID)
	assert.NoError(t, err)
}

func TestGetEnrollmentByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustCreateStudent(t, "12345678", "Ana", "ana@universidad.edu", 5)
	course := env.mustCreateCourse(t, "MAT101", "Matemáticas", 4, "Lunes 8:00-10:00")

	created, err := env.enrollments.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	found, err := env.enrollments.GetEnrollmentByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Student)
	require.NotNil(t, found.Course)
	assert.Equal(t, student.ID, found.StudentID)
	assert.Equal(t, course.ID, found.CourseID)

	_, err = env.enrollments.GetEnrollmentByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestUnenroll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustCreateStudent(t, "12345678", "Ana", "ana@universidad.edu", 5)
	course := env.mustCreateCourse(t, "MAT101", "Matemáticas", 4, "Lunes 8:00-10:00")

	created, err := env.enrollments.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, env.enrollments.Unenroll(ctx, created.ID))

	_, err = env.enrollments.GetEnrollmentByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)

	assert.ErrorIs(t, env.enrollments.Unenroll(ctx, created.ID), apperrors.ErrEnrollmentNotFound)
}

func TestUnenrollByPair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustCreateStudent(t, "12345678", "Ana", "ana@universidad.edu", 5)
	course := env.mustCreateCourse(t, "MAT101", "Matemáticas", 4, "Lunes 8:00-10:00")

	_, err := env.enrollments.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, env.enrollments.UnenrollByPair(ctx, student.ID, course.ID))
	assert.ErrorIs(t, env.enrollments.UnenrollByPair(ctx, student.ID, course.ID), apperrors.ErrEnrollmentNotFound)

	// freed slot can be re-enrolled
	_, err = env.enrollments.Enroll(ctx, student.ID, course.ID)
	assert.NoError(t, err)
}

func TestGetStudentWithCourses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustCreateStudent(t, "12345678", "Ana", "ana@universidad.edu", 5)
	math := env.mustCreateCourse(t, "MAT101", "Matemáticas", 4, "Lunes 8:00-10:00")
	physics := env.mustCreateCourse(t, "FIS301", "Física", 3, "Martes 8:00-10:00")

	_, err := env.enrollments.Enroll(ctx, student.ID, math.ID)
	require.NoError(t, err)
	_, err = env.enrollments.Enroll(ctx, student.ID, physics.ID)
	require.NoError(t, err)

	withCourses, err := env.students.GetStudentWithCourses(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, withCourses.Courses, 2)

	codes := []string{withCourses.Courses[0].Code, withCourses.Courses[1].Code}
	assert.ElementsMatch(t, []string{"MAT101", "FIS301"}, codes)
}
