package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
	"github.com/rajni12071985-debug/pragati/internal/pkg/auth"
	"github.com/rajni12071985-debug/pragati/internal/pkg/validation"
)

type stubStudentDirectory struct {
	byRoll map[string]*models.Student
}

func (s *stubStudentDirectory) GetByRollNumber(_ context.Context, rollNumber string) (*models.Student, error) {
	if student, ok := s.byRoll[rollNumber]; ok {
		return student, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubStudentDirectory) Create(_ context.Context, student *models.Student) error {
	s.byRoll[student.RollNumber] = student
	return nil
}

type stubAdminCredentials struct {
	admin *models.Admin
}

func (s *stubAdminCredentials) Get(_ context.Context) (*models.Admin, error) {
	if s.admin == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return s.admin, nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *stubStudentDirectory) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("rollnumber", func(fl validator.FieldLevel) bool {
			return validation.IsValidRollNumber(fl.Field().String())
		})
	}

	students := &stubStudentDirectory{byRoll: make(map[string]*models.Student)}
	hash, err := auth.HashPassword("AURORA")
	require.NoError(t, err)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "camplink.test",
	})
	authService := services.NewAuthService(students, &stubAdminCredentials{
		admin: &models.Admin{ID: "admin-1", PasswordHash: hash},
	}, jwtService)
	controller := NewAuthController(authService)

	router := gin.New()
	router.POST("/api/auth/student", controller.StudentLogin)
	router.POST("/api/admin/login", controller.AdminLogin)
	return router, students
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestStudentLogin_EnrollsAndReturnsStudent(t *testing.T) {
	router, students := newAuthRouter(t)

	rec := postJSON(router, "/api/auth/student",
		`{"name":"Asha Verma","branch":"CSE","year":"2","rollNumber":"2025BTCS282"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rollNumber":"2025BTCS282"`)
	assert.Contains(t, students.byRoll, "2025BTCS282")
}

func TestStudentLogin_MalformedRollNumberRejectedAtBinding(t *testing.T) {
	router, students := newAuthRouter(t)

	rec := postJSON(router, "/api/auth/student",
		`{"name":"Asha Verma","branch":"CSE","year":"2","rollNumber":"25BTCS282"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Empty(t, students.byRoll)
}

func TestStudentLogin_LowercaseRollNumberRejected(t *testing.T) {
	router, students := newAuthRouter(t)

	rec := postJSON(router, "/api/auth/student",
		`{"name":"Asha Verma","branch":"CSE","year":"2","rollNumber":"2025btcs282"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, students.byRoll)
}

func TestStudentLogin_MissingFields(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := postJSON(router, "/api/auth/student", `{"rollNumber":"2025BTCS282"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminLogin_Succeeds(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := postJSON(router, "/api/admin/login", `{"password":"AURORA"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken"`)
	assert.Contains(t, rec.Body.String(), `"tokenType":"Bearer"`)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := postJSON(router, "/api/admin/login", `{"password":"guess"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
