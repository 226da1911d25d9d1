package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
	"github.com/rajni12071985-debug/pragati/internal/pkg/auth"
)

func newAuthFixture(admin *models.Admin) (*fakeStudents, *AuthService) {
	students := newFakeStudents()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "camplink.test",
	})
	return students, NewAuthService(students, &fakeAdmins{admin: admin}, jwtService)
}

func TestStudentLogin_EnrollsUnknownRollNumber(t *testing.T) {
	students, svc := newAuthFixture(nil)

	student, err := svc.StudentLogin(context.Background(), dto.StudentLoginRequest{
		Name:       "Asha Verma",
		Branch:     "CSE",
		Year:       "2",
		RollNumber: "2024BTCS101",
	})

	require.NoError(t, err)
	assert.Equal(t, "2024BTCS101", student.RollNumber)
	assert.NotEmpty(t, student.ID)
	assert.Contains(t, students.byRoll, "2024BTCS101")
}

func TestStudentLogin_KnownRollNumberReturnsExistingRecord(t *testing.T) {
	students, svc := newAuthFixture(nil)
	existing := &models.Student{
		ID:         "stu-1",
		Name:       "Asha Verma",
		Branch:     "CSE",
		Year:       "2",
		RollNumber: "2024BTCS101",
	}
	require.NoError(t, students.Create(context.Background(), existing))

	student, err := svc.StudentLogin(context.Background(), dto.StudentLoginRequest{
		Name:       "Completely Different Name",
		Branch:     "AI",
		Year:       "4",
		RollNumber: "2024BTCS101",
	})

	require.NoError(t, err)
	assert.Equal(t, "stu-1", student.ID)
	assert.Equal(t, "Asha Verma", student.Name)
	assert.Equal(t, "CSE", student.Branch)
}

func TestStudentLogin_RejectsMalformedRollNumbers(t *testing.T) {
	_, svc := newAuthFixture(nil)

	for _, roll := range []string{"25BTCS282", "2025BTME282", "2025BTCS28", "", "2025BTCS2820", "2025btcs282", " 2025BTCS282"} {
		_, err := svc.StudentLogin(context.Background(), dto.StudentLoginRequest{
			Name:       "Asha",
			Branch:     "CSE",
			Year:       "2",
			RollNumber: roll,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRollNumber, "roll number %q", roll)
	}
}

func TestAdminLogin_IssuesBearerToken(t *testing.T) {
	hash, err := auth.HashPassword("AURORA")
	require.NoError(t, err)
	_, svc := newAuthFixture(&models.Admin{ID: "admin-1", PasswordHash: hash})

	token, err := svc.AdminLogin(context.Background(), "AURORA")

	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, 3600, token.ExpiresIn)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("AURORA")
	require.NoError(t, err)
	_, svc := newAuthFixture(&models.Admin{ID: "admin-1", PasswordHash: hash})

	_, err = svc.AdminLogin(context.Background(), "guess")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAdminLogin_NoCredentialSeeded(t *testing.T) {
	_, svc := newAuthFixture(nil)

	_, err := svc.AdminLogin(context.Background(), "AURORA")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
