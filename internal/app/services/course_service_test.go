package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicourse/registra/internal/app/models"
	"github.com/unicourse/registra/internal/app/models/dto"
	"github.com/unicourse/registra/internal/pkg/apperrors"
)

func TestCreateCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("valid course", func(t *testing.T) {
		course := &models.Course{
			Code:     "MAT101",
			Name:     "Matemáticas Básicas",
			Credits:  4,
			Schedule: "Lunes y Miércoles 8:00-10:00",
		}
		require.NoError(t, env.courses.CreateCourse(ctx, course))
		assert.NotZero(t, course.ID)
	})

	t.Run("duplicate code rejected", func(t *testing.T) {
		err := env.courses.CreateCourse(ctx, &models.Course{
			Code:     "MAT101",
			Name:     "Otro Curso",
			Credits:  3,
			Schedule: "Martes 10:00-12:00",
		})
		assert.ErrorIs(t, err, apperrors.ErrCourseCodeAlreadyExists)
	})

	t.Run("malformed code rejected", func(t *testing.T) {
		for _, code := range []string{"AA111", "AAA11", "mat101", "MAT1010"} {
			err := env.courses.CreateCourse(ctx, &models.Course{
				Code:     code,
				Name:     "Curso",
				Credits:  3,
				Schedule: "Martes 10:00-12:00",
			})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCourseCode, "code %q", code)
		}
	})

	t.Run("credits out of range rejected", func(t *testing.T) {
		for _, credits := range []int{0, 7} {
			err := env.courses.CreateCourse(ctx, &models.Course{
				Code:     "FIS301",
				Name:     "Física",
				Credits:  credits,
				Schedule: "Martes 10:00-12:00",
			})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredits, "credits %d", credits)
		}
	})

	t.Run("short schedule rejected", func(t *testing.T) {
		err := env.courses.CreateCourse(ctx, &models.Course{
			Code:     "FIS301",
			Name:     "Física",
			Credits:  3,
			Schedule: "Lun",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidSchedule)
	})

	t.Run("schedule is stored normalized", func(t *testing.T) {
		course := &models.Course{
			Code:     "QUI110",
			Name:     "Química",
			Credits:  3,
			Schedule: "  Viernes   14:00-16:00  ",
		}
		require.NoError(t, env.courses.CreateCourse(ctx, course))
		assert.Equal(t, "Viernes 14:00-16:00", course.Schedule)
	})
}

func TestGetAllCoursesFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustCreateCourse(t, "MAT101", "Matemáticas", 4, "Lunes 8:00-10:00")
	env.mustCreateCourse(t, "MAT205", "Cálculo", 4, "Martes 8:00-10:00")
	env.mustCreateCourse(t, "INF202", "Programación", 3, "Miércoles 8:00-10:00")

	all, err := env.courses.GetAllCourses(ctx, nil, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	credits := 4
	byCredits, err := env.courses.GetAllCourses(ctx, &credits, "")
	require.NoError(t, err)
	assert.Len(t, byCredits, 2)

	byCode, err := env.courses.GetAllCourses(ctx, nil, "MAT")
	require.NoError(t, err)
	assert.Len(t, byCode, 2)

	both, err := env.courses.GetAllCourses(ctx, &credits, "INF")
	require.NoError(t, err)
	assert.Empty(t, both)

	invalid := 9
	_, err = env.courses.GetAllCourses(ctx, &invalid, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredits)
}

func TestUpdateCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.mustCreateCourse(t, "MAT101", "Matemáticas", 4, "Lunes 8:00-10:00")
	second := env.mustCreateCourse(t, "INF202", "Programación", 3, "Martes 8:00-10:00")

	t.Run("partial update keeps missing fields", func(t *testing.T) {
		credits := 5
		updated, err := env.courses.UpdateCourse(ctx, first.ID, &dto.UpdateCourseRequest{Credits: &credits})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Credits)
		assert.Equal(t, "MAT101", updated.Code)
		assert.Equal(t, "Lunes 8:00-10:00", updated.Schedule)
	})

	t.Run("code taken by another course", func(t *testing.T) {
		code := "MAT101"
		_, err := env.courses.UpdateCourse(ctx, second.ID, &dto.UpdateCourseRequest{Code: &code})
		assert.ErrorIs(t, err, apperrors.ErrCourseCodeAlreadyExists)
	})

	t.Run("own code is not a conflict", func(t *testing.T) {
		code := "INF202"
		_, err := env.courses.UpdateCourse(ctx, second.ID, &dto.UpdateCourseRequest{Code: &code})
		assert.NoError(t, err)
	})

	t.Run("unknown course", func(t *testing.T) {
		credits := 3
		_, err := env.courses.UpdateCourse(ctx, 9999, &dto.UpdateCourseRequest{Credits: &credits})
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestDeleteCourseCascadesEnrollments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.mustCreateStudent(t, "12345678", "Ana", "ana@universidad.edu", 5)
	course := env.mustCreateCourse(t, "MAT101", "Matemáticas", 4, "Lunes 8:00-10:00")

	enrollment, err := env.enrollments.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, env.courses.DeleteCourse(ctx, course.ID))

	_, err = env.courses.GetCourseByID(ctx, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = env.enrollments.GetEnrollmentByID(ctx, enrollment.ID)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestGetCourseWithStudents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana := env.mustCreateStudent(t, "11111111", "Ana", "ana@universidad.edu", 5)
	luis := env.mustCreateStudent(t, "22222222", "Luis", "luis@universidad.edu", 3)
	course := env.mustCreateCourse(t, "MAT101", "Matemáticas", 4, "Lunes 8:00-10:00")

	_, err := env.enrollments.Enroll(ctx, ana.ID, course.ID)
	require.NoError(t, err)
	_, err = env.enrollments.Enroll(ctx, luis.ID, course.ID)
	require.NoError(t, err)

	withStudents, err := env.courses.GetCourseWithStudents(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, withStudents.Students, 2)

	cedulas := []string{withStudents.Students[0].Cedula, withStudents.Students[1].Cedula}
	assert.ElementsMatch(t, []string{"11111111", "22222222"}, cedulas)
}
