package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// statusMapping ties a domain error to its HTTP status and error code.
type statusMapping struct {
	err    error
	status int
	code   dto.ErrorCode
}

// Ordered so the specific entity errors win over the generic sentinels
// they wrap.
var statusMappings = []statusMapping{
	{apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrTeamNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrRequestNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrInterestNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrEventNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrPhotoNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrMessageNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrCompetitionNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrLeaveNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},

	{apperrors.ErrAlreadyMember, http.StatusConflict, dto.ErrorCodeConflict},
	{apperrors.ErrRequestAlreadyResolved, http.StatusConflict, dto.ErrorCodeConflict},
	{apperrors.ErrLeaveAlreadyResolved, http.StatusConflict, dto.ErrorCodeConflict},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict},

	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},

	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},

	{apperrors.ErrInvalidRollNumber, http.StatusBadRequest, dto.ErrorCodeInvalidRollNumber},
	{apperrors.ErrInvalidRequestAction, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
}

// HandleAPIError translates a domain error into the HTTP error contract.
// A CustomError's message overrides the sentinel's default text.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()

	for _, m := range statusMappings {
		if errors.Is(err, m.err) {
			c.JSON(m.status, dto.NewErrorResponse(dto.NewErrorDetail(m.code, message)))
			return
		}
	}

	log.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled API error")
	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
}

// BindingError responds to a request body that failed binding or validation
func BindingError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
