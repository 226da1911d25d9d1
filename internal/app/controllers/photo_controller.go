package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
)

// PhotoController handles the shared photo feed
type PhotoController struct {
	photoService *services.PhotoService
}

// NewPhotoController creates a new PhotoController
func NewPhotoController(photoService *services.PhotoService) *PhotoController {
	return &PhotoController{photoService: photoService}
}

// likeRequest carries the liker's id for the toggle endpoint
type likeRequest struct {
	StudentID string `json:"studentId" binding:"required"`
}

// ListPhotos retrieves the feed
// @Summary List photos
// @Tags photos
// @Produce json
// @Success 200 {array} models.Photo
// @Router /photos [get]
func (c *PhotoController) ListPhotos(ctx *gin.Context) {
	photos, err := c.photoService.ListPhotos(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, photos)
}

// AddPhoto adds a feed entry (admin only). Accepts either a JSON body with
// an external URL or a multipart form with the image file.
// @Summary Add photo
// @Tags photos
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePhotoRequest true "Photo details"
// @Success 201 {object} models.Photo
// @Router /photos [post]
func (c *PhotoController) AddPhoto(ctx *gin.Context) {
	var req dto.CreatePhotoRequest

	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		if err := ctx.ShouldBind(&req); err != nil {
			middleware.BindingError(ctx, err)
			return
		}
		file, _ := ctx.FormFile("photo")
		photo, err := c.photoService.AddPhoto(ctx, req, file)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, photo)
		return
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	photo, err := c.photoService.AddPhoto(ctx, req, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, photo)
}

// DeletePhoto removes a feed entry (admin only)
// @Summary Delete photo
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Photo ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Router /photos/{id} [delete]
func (c *PhotoController) DeletePhoto(ctx *gin.Context) {
	if err := c.photoService.DeletePhoto(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Photo deleted successfully"))
}

// ToggleLike flips a student's like on a photo. The liker is identified by
// the student_id query parameter; a JSON body is accepted as a fallback.
// @Summary Toggle photo like
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param student_id query string true "Student ID"
// @Success 200 {object} dto.PhotoLikeResponse
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Router /photos/{id}/like [post]
func (c *PhotoController) ToggleLike(ctx *gin.Context) {
	studentID := ctx.Query("student_id")
	if studentID == "" {
		var req likeRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			middleware.BindingError(ctx, err)
			return
		}
		studentID = req.StudentID
	}

	response, err := c.photoService.ToggleLike(ctx, ctx.Param("id"), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}
