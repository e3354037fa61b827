package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/app/services"
	"github.com/tsiw/alumnet/internal/middleware"
	"github.com/tsiw/alumnet/internal/pkg/logger"
)

// AuthController handles registration and login.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles account registration
// @Summary Register a new account
// @Description Creates an alumni or admin account. No token is issued; log in afterwards.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Validation failure or email already taken"
// @Router /users/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid registration payload")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	if _, err := ctrl.authService.Register(c.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewMessageResponse("account created successfully"))
}

// Login handles credential verification
// @Summary Log in
// @Description Verifies email and password and returns a bearer token valid for 24 hours.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.APIResponse "Missing email or password"
// @Failure 401 {object} dto.APIResponse "Wrong password"
// @Failure 404 {object} dto.APIResponse "Unknown email"
// @Router /users/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
