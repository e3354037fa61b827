package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
	"github.com/tsiw/alumnet/internal/pkg/auth"
	"github.com/tsiw/alumnet/internal/pkg/logger"
)

// AlumniService handles alumni profiles and their employment associations.
type AlumniService struct {
	userRepo    UserRepository
	companyRepo CompanyRepository
	tx          TxRunner
}

// NewAlumniService creates a new alumni service instance.
func NewAlumniService(userRepo UserRepository, companyRepo CompanyRepository, tx TxRunner) *AlumniService {
	return &AlumniService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tx:          tx,
	}
}

// ListAlumni returns a page of alumni matching the filter, with their
// employment history attached.
func (s *AlumniService) ListAlumni(ctx context.Context, filter dto.AlumniFilter, page, limit int) ([]models.User, int64, error) {
	users, total, err := s.userRepo.ListAlumni(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list alumni: %w", err)
	}
	return users, total, nil
}

// GetAlumniByID returns one alumnus by ID.
func (s *AlumniService) GetAlumniByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, id)
}

// UpdateAlumni applies a partial profile update. Only the account owner may
// call it. A password change requires both password fields, they must match
// and the new password must differ from the stored one.
func (s *AlumniService) UpdateAlumni(ctx context.Context, callerID, targetID int64, req *dto.UpdateAlumniRequest) (*models.User, error) {
	if callerID != targetID {
		return nil, apperrors.NewUnauthorizedError("You can only update your own profile")
	}

	user, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if req.Password != nil || req.ConfirmPassword != nil {
		if req.Password == nil {
			return nil, apperrors.NewValidationError("Password is required to change the password")
		}
		if req.ConfirmPassword == nil {
			return nil, apperrors.NewValidationError("ConfirmPassword is required to change the password")
		}
		if *req.Password != *req.ConfirmPassword {
			return nil, apperrors.NewValidationError("Password and confirmPassword do not match")
		}
		if len(*req.Password) < 6 {
			return nil, apperrors.NewValidationError("Password must be at least 6 characters")
		}
		if auth.CheckPassword(user.Password, *req.Password) {
			return nil, apperrors.NewValidationError("New password must be different from the current one")
		}

		passwordHash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.userRepo.UpdatePassword(ctx, targetID, passwordHash); err != nil {
			return nil, fmt.Errorf("failed to update password: %w", err)
		}
	}

	if req.Location != nil || req.ActivityField != nil {
		if err := s.userRepo.UpdateProfile(ctx, targetID, req.Location, req.ActivityField); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return s.userRepo.GetUserByID(ctx, targetID)
}

// DeleteAlumni removes the account together with its associate rows in
// every company. Admins may delete anyone, alumni only themselves.
func (s *AlumniService) DeleteAlumni(ctx context.Context, callerID int64, callerType models.UserType, targetID int64) error {
	if callerType != models.TypeAdmin && callerID != targetID {
		return apperrors.NewUnauthorizedError("You can only delete your own account")
	}

	if _, err := s.userRepo.GetUserByID(ctx, targetID); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		removed, err := s.companyRepo.RemoveAssociatesByUser(ctx, tx, targetID)
		if err != nil {
			return fmt.Errorf("failed to remove associate rows: %w", err)
		}
		if removed > 0 {
			logger.Debug().Int64("userId", targetID).Int64("removed", removed).Msg("Removed company associations")
		}
		return s.userRepo.DeleteUser(ctx, tx, targetID)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("userId", targetID).Msg("Alumnus deleted")
	return nil
}

// AddCompany associates the alumnus with a company. The alumnus must not
// have any employment entry yet. With a companyId the company must exist
// and be verified; with only a name an unverified company is created on
// the fly. The employment entry and the associate row are written in one
// transaction.
func (s *AlumniService) AddCompany(ctx context.Context, callerID, targetID int64, req *dto.AddCompanyRequest) (*models.User, error) {
	if callerID != targetID {
		return nil, apperrors.NewUnauthorizedError("You can only manage your own companies")
	}

	if _, err := s.userRepo.GetUserByID(ctx, targetID); err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountEmployments(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to count employments: %w", err)
	}
	if count > 0 {
		return nil, apperrors.ErrAlreadyEmployed
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	entry := models.Employment{
		UserID:    targetID,
		Position:  req.Position,
		StartDate: startDate,
		EndDate:   req.EndDate,
	}

	if req.CompanyID != nil {
		company, err := s.companyRepo.GetCompanyByID(ctx, *req.CompanyID)
		if err != nil {
			return nil, err
		}
		if !company.Verified {
			return nil, apperrors.ErrCompanyNotVerified
		}
		entry.CompanyID = company.ID
		entry.CompanyName = company.Name
		entry.CompanyLocation = company.Location
	} else if req.Name == "" {
		return nil, apperrors.NewValidationError("Either companyId or name is required")
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if req.CompanyID == nil {
			companyID, err := s.companyRepo.CreateCompany(ctx, tx, &models.Company{
				Name:     req.Name,
				Location: req.Location,
			})
			if err != nil {
				return err
			}
			entry.CompanyID = companyID
			entry.CompanyName = req.Name
			entry.CompanyLocation = req.Location
		}

		if _, err := s.userRepo.CreateEmployment(ctx, tx, &entry); err != nil {
			return fmt.Errorf("failed to create employment: %w", err)
		}
		return s.companyRepo.AddAssociate(ctx, tx, entry.CompanyID, targetID)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", targetID).Int64("companyId", entry.CompanyID).Msg("Company added to alumnus")
	return s.userRepo.GetUserByID(ctx, targetID)
}

// ChangeCompany closes the current employment entry and opens a new one at
// the given company. The closed entry stays in the history but the old
// associate row is removed, matching how the associate list tracks only
// current employment.
func (s *AlumniService) ChangeCompany(ctx context.Context, callerID, targetID int64, req *dto.ChangeCompanyRequest) (*models.User, error) {
	if callerID != targetID {
		return nil, apperrors.NewUnauthorizedError("You can only manage your own companies")
	}

	current, err := s.userRepo.GetCurrentEmployment(ctx, targetID)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetCompanyByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if !company.Verified {
		return nil, apperrors.ErrCompanyNotVerified
	}

	now := time.Now()
	startDate := now
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.CloseEmployment(ctx, tx, current.ID, now); err != nil {
			return fmt.Errorf("failed to close employment: %w", err)
		}
		if err := s.companyRepo.RemoveAssociate(ctx, tx, current.CompanyID, targetID); err != nil {
			return fmt.Errorf("failed to remove old associate row: %w", err)
		}
		entry := models.Employment{
			UserID:          targetID,
			CompanyID:       company.ID,
			CompanyName:     company.Name,
			CompanyLocation: company.Location,
			Position:        req.Position,
			StartDate:       startDate,
		}
		if _, err := s.userRepo.CreateEmployment(ctx, tx, &entry); err != nil {
			return fmt.Errorf("failed to create employment: %w", err)
		}
		return s.companyRepo.AddAssociate(ctx, tx, company.ID, targetID)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("userId", targetID).
		Int64("from", current.CompanyID).
		Int64("to", company.ID).
		Msg("Alumnus changed company")
	return s.userRepo.GetUserByID(ctx, targetID)
}
