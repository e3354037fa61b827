// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tsiw/alumnet/internal/pkg/apperrors"
)

// parseIDParam reads a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("Invalid %s parameter", name))
	}
	return id, nil
}

// bindingErrorMessage turns gin binding failures into a readable message.
func bindingErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", fieldError.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email address", fieldError.Field()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", fieldError.Field(), fieldError.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", fieldError.Field()))
			}
		}
		return strings.Join(messages, "; ")
	}
	return "Invalid request body"
}
