package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/db"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
	"github.com/tsiw/alumnet/internal/pkg/logger"
)

// CompanyService handles the company directory.
type CompanyService struct {
	companyRepo CompanyRepository
	userRepo    UserRepository
	tx          TxRunner
	q           db.Querier
}

// NewCompanyService creates a new company service instance.
func NewCompanyService(companyRepo CompanyRepository, userRepo UserRepository, tx TxRunner, q db.Querier) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		tx:          tx,
		q:           q,
	}
}

// CreateCompany registers a new, unverified company. Only admins may call
// it; anyone else gets a plain bad request.
func (s *CompanyService) CreateCompany(ctx context.Context, callerType models.UserType, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if callerType != models.TypeAdmin {
		return nil, apperrors.NewBadRequestError("Only admins can create companies")
	}

	exists, err := s.companyRepo.NameExists(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check company name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCompanyAlreadyExists
	}

	company := &models.Company{
		Name:     req.Name,
		Location: req.Location,
	}
	id, err := s.companyRepo.CreateCompany(ctx, s.q, company)
	if err != nil {
		return nil, err
	}
	company.ID = id

	logger.Info().Int64("companyId", id).Str("name", req.Name).Msg("Company created")
	return company, nil
}

// ListCompanies returns a page of companies with their associates.
func (s *CompanyService) ListCompanies(ctx context.Context, page, limit int) ([]models.Company, int64, error) {
	companies, total, err := s.companyRepo.ListCompanies(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, total, nil
}

// GetCompanyByID returns one company by ID.
func (s *CompanyService) GetCompanyByID(ctx context.Context, id int64) (*models.Company, error) {
	return s.companyRepo.GetCompanyByID(ctx, id)
}

// UpdateCompany updates the company name and/or location. The new values
// are propagated to the employment snapshots of every alumnus before the
// company row itself changes, in one transaction. The admin gate sits on
// the route.
func (s *CompanyService) UpdateCompany(ctx context.Context, companyID int64, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	if req.Name == nil && req.Location == nil {
		return nil, apperrors.NewValidationError("Nothing to update")
	}

	company, err := s.companyRepo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	// Re-sending the current name is not a duplicate.
	if req.Name != nil && *req.Name != company.Name {
		exists, err := s.companyRepo.NameExists(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check company name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrCompanyAlreadyExists
		}
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.PropagateCompanyChange(ctx, tx, companyID, req.Name, req.Location); err != nil {
			return fmt.Errorf("failed to propagate company change: %w", err)
		}
		return s.companyRepo.UpdateCompany(ctx, tx, companyID, req.Name, req.Location)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("companyId", companyID).Msg("Company updated")
	return s.companyRepo.GetCompanyByID(ctx, companyID)
}

// VerifyCompany marks the company as verified. The admin gate sits on the
// route.
func (s *CompanyService) VerifyCompany(ctx context.Context, companyID int64) (*models.Company, error) {
	if _, err := s.companyRepo.GetCompanyByID(ctx, companyID); err != nil {
		return nil, err
	}
	if err := s.companyRepo.SetVerified(ctx, companyID); err != nil {
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	logger.Info().Int64("companyId", companyID).Msg("Company verified")
	return s.companyRepo.GetCompanyByID(ctx, companyID)
}

// RemoveAlumni detaches an alumnus from the company: both the associate
// row and the alumnus's employment rows for this company go away. The
// admin gate sits on the route.
func (s *CompanyService) RemoveAlumni(ctx context.Context, companyID, alumniID int64) error {
	if _, err := s.companyRepo.GetCompanyByID(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetUserByID(ctx, alumniID); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.companyRepo.RemoveAssociate(ctx, tx, companyID, alumniID); err != nil {
			return fmt.Errorf("failed to remove associate row: %w", err)
		}
		return s.userRepo.DeleteEmploymentsByCompany(ctx, tx, alumniID, companyID)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("companyId", companyID).Int64("userId", alumniID).Msg("Alumnus removed from company")
	return nil
}
