package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsiw/alumnet/internal/app/controllers"
	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/middleware"
	"github.com/tsiw/alumnet/internal/pkg/auth"
)

func newTestEngine() (*gin.Engine, *auth.JWTService) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	SetupRouter(router,
		controllers.NewAuthController(nil),
		controllers.NewAlumniController(nil),
		controllers.NewCompanyController(nil),
		controllers.NewPostController(nil),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, jwtService
}

func bearerToken(t *testing.T, jwtService *auth.JWTService, userID int64, userType models.UserType) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(userID, string(userType))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRootBanner(t *testing.T) {
	router, _ := newTestEngine()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AlumNet API")
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestEngine()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSectionNotFoundMessages(t *testing.T) {
	router, _ := newTestEngine()

	tests := []struct {
		path string
		want string
	}{
		{path: "/users/unknown", want: "Users: what???"},
		{path: "/alumni/1/unknown/route", want: "Alumni: what???"},
		{path: "/companies/oops/extra", want: "Companies: what???"},
		{path: "/posts/1/2/3", want: "Posts: what???"},
		{path: "/nothing/here", want: "WHAT???"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestReadRoutesArePublic(t *testing.T) {
	router, _ := newTestEngine()

	// Reads never hit the token gate, so an anonymous request must not
	// come back as 401.
	for _, path := range []string{"/alumni", "/alumni/1", "/companies", "/companies/1", "/posts", "/posts/1"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		assert.NotEqual(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestWriteRoutesRequireToken(t *testing.T) {
	router, _ := newTestEngine()

	tests := []struct {
		method string
		path   string
	}{
		{method: "PATCH", path: "/alumni/1"},
		{method: "DELETE", path: "/alumni/1"},
		{method: "POST", path: "/alumni/1/companies"},
		{method: "PATCH", path: "/alumni/1/companies"},
		{method: "POST", path: "/companies"},
		{method: "PATCH", path: "/companies/1"},
		{method: "PUT", path: "/companies/1/verify"},
		{method: "DELETE", path: "/companies/1/associates/2"},
		{method: "POST", path: "/posts"},
		{method: "DELETE", path: "/posts/1"},
		{method: "POST", path: "/posts/1/comments"},
		{method: "DELETE", path: "/posts/1/comments/2"},
		{method: "POST", path: "/posts/1/like"},
		{method: "POST", path: "/posts/1/dislike"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, tt.method+" "+tt.path)
	}
}

func TestCompanyAdminRoutesRejectAlumni(t *testing.T) {
	router, jwtService := newTestEngine()
	alumniToken := bearerToken(t, jwtService, 1, models.TypeAlumni)

	tests := []struct {
		method string
		path   string
	}{
		{method: "PATCH", path: "/companies/1"},
		{method: "PUT", path: "/companies/1/verify"},
		{method: "DELETE", path: "/companies/1/associates/2"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		req.Header.Set("Authorization", alumniToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, tt.method+" "+tt.path)
		assert.Contains(t, w.Body.String(), "Insufficient permissions")
	}
}
