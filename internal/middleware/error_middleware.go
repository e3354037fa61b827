package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
	"github.com/tsiw/alumnet/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Controllers
// funnel every service error through here.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)

	if status == 500 {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(500, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(status, dto.NewErrorResponse(messageFor(err)))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCompanyNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound):
		return 404
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrUnauthorized):
		return 401
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return 403
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrCompanyAlreadyExists),
		errors.Is(err, apperrors.ErrCompanyNotVerified),
		errors.Is(err, apperrors.ErrAlreadyEmployed),
		errors.Is(err, apperrors.ErrNoCurrentEmployment),
		errors.Is(err, apperrors.ErrNoLikesToRemove):
		return 400
	case errors.Is(err, apperrors.ErrConflict):
		return 409
	default:
		return 500
	}
}

// messageFor prefers the wrapped application message over the raw sentinel
// text.
func messageFor(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, apperrors.ErrCompanyNotFound):
		return "Company not found"
	case errors.Is(err, apperrors.ErrPostNotFound):
		return "Post not found"
	case errors.Is(err, apperrors.ErrCommentNotFound):
		return "Comment not found"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return "Invalid token"
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return "Email already registered"
	case errors.Is(err, apperrors.ErrCompanyAlreadyExists):
		return "A company with this name already exists"
	case errors.Is(err, apperrors.ErrCompanyNotVerified):
		return "Company is not verified"
	case errors.Is(err, apperrors.ErrAlreadyEmployed):
		return "Alumnus already has a company"
	case errors.Is(err, apperrors.ErrNoCurrentEmployment):
		return "Alumnus has no current company"
	case errors.Is(err, apperrors.ErrNoLikesToRemove):
		return "No likes to remove"
	case errors.Is(err, apperrors.ErrConflict):
		return "User is already associated with this company"
	default:
		return err.Error()
	}
}
