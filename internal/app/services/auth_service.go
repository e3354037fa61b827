package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
	"github.com/tsiw/alumnet/internal/pkg/auth"
	"github.com/tsiw/alumnet/internal/pkg/logger"
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service instance.
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register validates the registration request and creates the account.
// No token is issued; the caller logs in afterwards.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	userType := models.UserType(req.Type)
	if !userType.Valid() {
		return nil, apperrors.NewValidationError("Type must be either alumni or admin")
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewValidationError("Password and confirmPassword do not match")
	}
	// Alumni register after finishing their course, so the end date has to
	// be in the past.
	if req.CourseEndDate >= time.Now().Year() {
		return nil, apperrors.NewValidationError("CourseEndDate must be before the current year")
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Type:          userType,
		Name:          req.Name,
		Email:         req.Email,
		Password:      passwordHash,
		Location:      req.Location,
		CourseEndDate: req.CourseEndDate,
		ActivityField: req.ActivityField,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id

	logger.Info().Int64("userId", id).Str("type", req.Type).Msg("User registered")
	return user, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// email is reported as not found, a wrong password as invalid credentials.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, expiresIn, err := s.jwtService.GenerateToken(user.ID, string(user.Type))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Debug().Int64("userId", user.ID).Msg("User logged in")

	return &dto.LoginResponse{
		Success:     true,
		Message:     "login successfully",
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}, nil
}
