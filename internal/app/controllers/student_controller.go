package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
)

// StudentController handles student profiles and discovery
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListStudents lists students for the discovery view
// @Summary List students
// @Description Lists students, optionally filtered to those sharing at least one given interest
// @Tags students
// @Produce json
// @Param interests query string false "Comma-separated interest filter"
// @Success 200 {array} models.Student
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var interests []string
	if raw := ctx.Query("interests"); raw != "" {
		interests = strings.Split(raw, ",")
	}

	students, err := c.studentService.ListStudents(ctx, interests)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// GetStudent retrieves one student profile
// @Summary Get student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// UpdateInterests replaces a student's interest set
// @Summary Update student interests
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UpdateInterestsRequest true "New interest set"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/interests [put]
func (c *StudentController) UpdateInterests(ctx *gin.Context) {
	var req dto.UpdateInterestsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	if err := c.studentService.UpdateInterests(ctx, ctx.Param("id"), req.Interests); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Interests updated successfully"))
}

// DeleteStudent removes a student record (admin only)
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student deleted successfully"))
}
