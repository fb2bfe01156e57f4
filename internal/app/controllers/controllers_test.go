package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicourse/registra/internal/app/controllers"
	"github.com/unicourse/registra/internal/app/repositories"
	"github.com/unicourse/registra/internal/app/routes"
	"github.com/unicourse/registra/internal/app/services"
	"github.com/unicourse/registra/internal/db"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(":memory:")
	require.NoError(t, err)

	repos := repositories.NewRepositories(gdb)
	studentService := services.NewStudentService(repos.StudentRepository, repos.EnrollmentRepository)
	courseService := services.NewCourseService(repos.CourseRepository, repos.EnrollmentRepository)
	enrollmentService := services.NewEnrollmentService(repos.EnrollmentRepository, repos.StudentRepository, repos.CourseRepository)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewStudentController(studentService),
		controllers.NewCourseController(courseService),
		controllers.NewEnrollmentController(enrollmentService),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, rec)
	detail, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "response has no error detail: %s", rec.Body.String())
	code, _ := detail["code"].(string)
	return code
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
}

func TestStudentEndpoints(t *testing.T) {
	router := newTestRouter(t)

	payload := gin.H{
		"cedula":   "12345678",
		"name":     "Ana García",
		"email":    "ana.garcia@universidad.edu",
		"semester": 5,
	}

	t.Run("create", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/students", payload)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "12345678", data["cedula"])
		assert.NotZero(t, data["id"])
	})

	t.Run("duplicate cedula returns 409", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/students", payload)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "RES_002", errorCode(t, rec))
	})

	t.Run("binding failure returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/students", gin.H{
			"cedula":   "87654321",
			"name":     "Sin Email",
			"semester": 2,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_001", errorCode(t, rec))
	})

	t.Run("semester out of range returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/students", gin.H{
			"cedula":   "87654321",
			"name":     "Fuera de Rango",
			"email":    "fuera@universidad.edu",
			"semester": 13,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get by id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/students/1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/students/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "RES_001", errorCode(t, rec))
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/students/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("partial update", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/v1/students/1", gin.H{"semester": 6})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(6), data["semester"])
		assert.Equal(t, "Ana García", data["name"])
	})

	t.Run("list with semester filter", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/students?semester=6", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		data := body["data"].([]interface{})
		assert.Len(t, data, 1)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/api/v1/students/1", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/students/1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCourseEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("create", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/courses", gin.H{
			"code":     "MAT101",
			"name":     "Matemáticas Básicas",
			"credits":  4,
			"schedule": "Lunes y Miércoles 8:00-10:00",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("malformed code returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/courses", gin.H{
			"code":     "AA111",
			"name":     "Curso",
			"credits":  3,
			"schedule": "Martes 10:00-12:00",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_001", errorCode(t, rec))
	})

	t.Run("duplicate code returns 409", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/courses", gin.H{
			"code":     "MAT101",
			"name":     "Otro Curso",
			"credits":  3,
			"schedule": "Martes 10:00-12:00",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "RES_002", errorCode(t, rec))
	})

	t.Run("credits out of range returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/courses", gin.H{
			"code":     "FIS301",
			"name":     "Física",
			"credits":  7,
			"schedule": "Martes 10:00-12:00",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list with code filter", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/courses?code=MAT", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		data := body["data"].([]interface{})
		assert.Len(t, data, 1)
	})

	t.Run("invalid credits filter returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/courses?credits=nope", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEnrollmentEndpoints(t *testing.T) {
	router := newTestRouter(t)

	studentRec := doJSON(t, router, http.MethodPost, "/api/v1/students", gin.H{
		"cedula":   "12345678",
		"name":     "Ana García",
		"email":    "ana@universidad.edu",
		"semester": 5,
	})
	require.Equal(t, http.StatusCreated, studentRec.Code)

	mathRec := doJSON(t, router, http.MethodPost, "/api/v1/courses", gin.H{
		"code":     "MAT101",
		"name":     "Matemáticas",
		"credits":  4,
		"schedule": "Lunes 8:00-10:00",
	})
	require.Equal(t, http.StatusCreated, mathRec.Code)

	clashRec := doJSON(t, router, http.MethodPost, "/api/v1/courses", gin.H{
		"code":     "QUI110",
		"name":     "Química",
		"credits":  3,
		"schedule": "Lunes 8:00-10:00",
	})
	require.Equal(t, http.StatusCreated, clashRec.Code)

	t.Run("enroll", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/enrollments", gin.H{
			"studentId": 1,
			"courseId":  1,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		data := body["data"].(map[string]interface{})
		student := data["student"].(map[string]interface{})
		assert.Equal(t, "12345678", student["cedula"])
	})

	t.Run("duplicate enrollment returns 409", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/enrollments", gin.H{
			"studentId": 1,
			"courseId":  1,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "RES_003", errorCode(t, rec))
	})

	t.Run("schedule conflict returns 409", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/enrollments", gin.H{
			"studentId": 1,
			"courseId":  2,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "RES_003", errorCode(t, rec))
	})

	t.Run("unknown student returns 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/enrollments", gin.H{
			"studentId": 999,
			"courseId":  1,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("student with courses", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/students/1/courses", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		data := body["data"].(map[string]interface{})
		courses := data["courses"].([]interface{})
		assert.Len(t, courses, 1)
	})

	t.Run("course with students", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/courses/1/students", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		data := body["data"].(map[string]interface{})
		students := data["students"].([]interface{})
		assert.Len(t, students, 1)
	})

	t.Run("unenroll by pair", func(t *testing.T) {
		path := fmt.Sprintf("/api/v1/enrollments?studentId=%d&courseId=%d", 1, 1)
		rec := doJSON(t, router, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
