package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
)

// AuthController handles student and admin sign-in
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// StudentLogin signs a student in by roll number, enrolling on first login
// @Summary Student login
// @Description Signs a student in by roll number; an unknown roll number enrolls the student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Student credentials"
// @Success 200 {object} models.Student "Student record"
// @Failure 400 {object} dto.ErrorResponse "Invalid roll number"
// @Router /auth/student [post]
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	student, err := c.authService.StudentLogin(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// AdminLogin verifies the admin password and issues a session token
// @Summary Admin login
// @Description Verifies the admin password and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.AdminLoginResponse "Session token"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	token, err := c.authService.AdminLogin(ctx, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AdminLoginResponse{
		Success: true,
		Message: "Admin login successful",
		Token:   *token,
	})
}
