package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
	"github.com/tsiw/alumnet/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "alumnet-test",
	})
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Type:            "alumni",
		Name:            "Maria Silva",
		Email:           "maria@mail.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Location:        "Porto",
		CourseEndDate:   time.Now().Year() - 2,
		ActivityField:   "Web Development",
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dto.RegisterRequest)
		emailUsed bool
		wantErr   error
	}{
		{
			name: "success",
		},
		{
			name:    "invalid type",
			mutate:  func(r *dto.RegisterRequest) { r.Type = "student" },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "password mismatch",
			mutate:  func(r *dto.RegisterRequest) { r.ConfirmPassword = "other123" },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "course end date in current year",
			mutate:  func(r *dto.RegisterRequest) { r.CourseEndDate = time.Now().Year() },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "course end date in the future",
			mutate:  func(r *dto.RegisterRequest) { r.CourseEndDate = time.Now().Year() + 3 },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:      "email already taken",
			emailUsed: true,
			wantErr:   apperrors.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *models.User
			userRepo := &mockUserRepository{
				emailExists: func(ctx context.Context, email string) (bool, error) {
					return tt.emailUsed, nil
				},
				createUser: func(ctx context.Context, user *models.User) (int64, error) {
					created = user
					return 42, nil
				},
			}
			service := NewAuthService(userRepo, newTestJWTService())

			req := validRegisterRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			user, err := service.Register(context.Background(), req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(42), user.ID)
			assert.Equal(t, models.TypeAlumni, user.Type)
			// Stored password must be a hash, not the plaintext.
			assert.NotEqual(t, req.Password, created.Password)
			assert.True(t, auth.CheckPassword(created.Password, req.Password))
		})
	}
}

func TestAuthService_Register_AdminType(t *testing.T) {
	userRepo := &mockUserRepository{
		emailExists: func(ctx context.Context, email string) (bool, error) { return false, nil },
		createUser:  func(ctx context.Context, user *models.User) (int64, error) { return 1, nil },
	}
	service := NewAuthService(userRepo, newTestJWTService())

	req := validRegisterRequest()
	req.Type = "admin"

	user, err := service.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.TypeAdmin, user.Type)
}

func TestAuthService_Login(t *testing.T) {
	passwordHash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	stored := &models.User{
		ID:       7,
		Type:     models.TypeAlumni,
		Email:    "maria@mail.com",
		Password: passwordHash,
	}

	userRepo := &mockUserRepository{
		getUserByEmail: func(ctx context.Context, email string) (*models.User, error) {
			if email != stored.Email {
				return nil, apperrors.ErrUserNotFound
			}
			return stored, nil
		},
	}
	jwtService := newTestJWTService()
	service := NewAuthService(userRepo, jwtService)

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(context.Background(), &dto.LoginRequest{Email: "nobody@mail.com", Password: "secret123"})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), &dto.LoginRequest{Email: stored.Email, Password: "wrongpass"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("token round trip", func(t *testing.T) {
		resp, err := service.Login(context.Background(), &dto.LoginRequest{Email: stored.Email, Password: "secret123"})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, int(time.Hour.Seconds()), resp.ExpiresIn)

		claims, err := jwtService.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, claims.UserID)
		assert.Equal(t, string(models.TypeAlumni), claims.UserType)
		assert.Equal(t, strconv.FormatInt(stored.ID, 10), claims.Subject)
	})
}
