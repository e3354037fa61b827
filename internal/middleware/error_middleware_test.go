package middleware

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tsiw/alumnet/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "user not found", err: apperrors.ErrUserNotFound, wantStatus: 404, wantBody: "User not found"},
		{name: "wrapped not found", err: fmt.Errorf("loading profile: %w", apperrors.ErrPostNotFound), wantStatus: 404, wantBody: "Post not found"},
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: 401},
		{name: "forbidden", err: apperrors.ErrPermissionDenied, wantStatus: 403},
		{name: "validation with message", err: apperrors.NewValidationError("Page must be 0 or a positive integer"), wantStatus: 400, wantBody: "Page must be 0 or a positive integer"},
		{name: "email taken pinned to 400", err: apperrors.ErrEmailAlreadyExists, wantStatus: 400},
		{name: "duplicate company pinned to 400", err: apperrors.ErrCompanyAlreadyExists, wantStatus: 400},
		{name: "no likes pinned to 400", err: apperrors.ErrNoLikesToRemove, wantStatus: 400},
		{name: "conflict", err: apperrors.ErrConflict, wantStatus: 409},
		{name: "unknown error hidden", err: errors.New("pq: connection refused"), wantStatus: 500, wantBody: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
