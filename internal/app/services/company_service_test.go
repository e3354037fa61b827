package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/db"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
)

func TestCompanyService_CreateCompany(t *testing.T) {
	t.Run("non-admin rejected", func(t *testing.T) {
		service := NewCompanyService(&mockCompanyRepository{}, &mockUserRepository{}, &mockTxRunner{}, nil)
		_, err := service.CreateCompany(context.Background(), models.TypeAlumni, &dto.CreateCompanyRequest{Name: "Alticelabs", Location: "Aveiro"})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("duplicate name", func(t *testing.T) {
		companyRepo := &mockCompanyRepository{
			nameExists: func(ctx context.Context, name string) (bool, error) { return true, nil },
		}
		service := NewCompanyService(companyRepo, &mockUserRepository{}, &mockTxRunner{}, nil)
		_, err := service.CreateCompany(context.Background(), models.TypeAdmin, &dto.CreateCompanyRequest{Name: "Alticelabs", Location: "Aveiro"})
		assert.ErrorIs(t, err, apperrors.ErrCompanyAlreadyExists)
	})

	t.Run("created unverified", func(t *testing.T) {
		var created *models.Company
		companyRepo := &mockCompanyRepository{
			nameExists: func(ctx context.Context, name string) (bool, error) { return false, nil },
			createCompany: func(ctx context.Context, q db.Querier, company *models.Company) (int64, error) {
				created = company
				return 5, nil
			},
		}
		service := NewCompanyService(companyRepo, &mockUserRepository{}, &mockTxRunner{}, nil)

		company, err := service.CreateCompany(context.Background(), models.TypeAdmin, &dto.CreateCompanyRequest{Name: "Alticelabs", Location: "Aveiro"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), company.ID)
		assert.False(t, created.Verified)
	})
}

func TestCompanyService_UpdateCompany_PropagatesSnapshots(t *testing.T) {
	var propagated, updated bool
	companyRepo := &mockCompanyRepository{
		getCompanyByID: func(ctx context.Context, id int64) (*models.Company, error) {
			return &models.Company{ID: id, Name: "OldName", Location: "Aveiro"}, nil
		},
		nameExists: func(ctx context.Context, name string) (bool, error) { return false, nil },
		updateCompany: func(ctx context.Context, q db.Querier, companyID int64, name, location *string) error {
			// Snapshots go first so a failure leaves nothing half-renamed.
			assert.True(t, propagated)
			updated = true
			return nil
		},
	}
	userRepo := &mockUserRepository{
		propagateCompanyChange: func(ctx context.Context, q db.Querier, companyID int64, name, location *string) error {
			require.NotNil(t, name)
			assert.Equal(t, "NewName", *name)
			propagated = true
			return nil
		},
	}
	txRunner := &mockTxRunner{}
	service := NewCompanyService(companyRepo, userRepo, txRunner, nil)

	_, err := service.UpdateCompany(context.Background(), 3, &dto.UpdateCompanyRequest{Name: strPtr("NewName")})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, 1, txRunner.calls)
}

func TestCompanyService_UpdateCompany_Guards(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		service := NewCompanyService(&mockCompanyRepository{}, &mockUserRepository{}, &mockTxRunner{}, nil)
		_, err := service.UpdateCompany(context.Background(), 3, &dto.UpdateCompanyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("resending the current name is not a duplicate", func(t *testing.T) {
		companyRepo := &mockCompanyRepository{
			getCompanyByID: func(ctx context.Context, id int64) (*models.Company, error) {
				return &models.Company{ID: id, Name: "Alticelabs", Location: "Aveiro"}, nil
			},
			nameExists: func(ctx context.Context, name string) (bool, error) {
				t.Fatal("name check should be skipped for the company's own name")
				return true, nil
			},
			updateCompany: func(ctx context.Context, q db.Querier, companyID int64, name, location *string) error {
				return nil
			},
		}
		userRepo := &mockUserRepository{
			propagateCompanyChange: func(ctx context.Context, q db.Querier, companyID int64, name, location *string) error {
				return nil
			},
		}
		service := NewCompanyService(companyRepo, userRepo, &mockTxRunner{}, nil)

		_, err := service.UpdateCompany(context.Background(), 3, &dto.UpdateCompanyRequest{Name: strPtr("Alticelabs"), Location: strPtr("Porto")})
		assert.NoError(t, err)
	})
}

func TestCompanyService_VerifyCompany(t *testing.T) {
	var verifiedID int64
	companyRepo := &mockCompanyRepository{
		getCompanyByID: func(ctx context.Context, id int64) (*models.Company, error) {
			return &models.Company{ID: id, Name: "Alticelabs", Verified: verifiedID == id}, nil
		},
		setVerified: func(ctx context.Context, companyID int64) error {
			verifiedID = companyID
			return nil
		},
	}
	service := NewCompanyService(companyRepo, &mockUserRepository{}, &mockTxRunner{}, nil)

	company, err := service.VerifyCompany(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), verifiedID)
	assert.True(t, company.Verified)
}

func TestCompanyService_RemoveAlumni(t *testing.T) {
	var associateRemoved, employmentsRemoved bool
	companyRepo := &mockCompanyRepository{
		getCompanyByID: func(ctx context.Context, id int64) (*models.Company, error) {
			return &models.Company{ID: id}, nil
		},
		removeAssociate: func(ctx context.Context, q db.Querier, companyID, userID int64) error {
			associateRemoved = true
			return nil
		},
	}
	userRepo := &mockUserRepository{
		getUserByID: func(ctx context.Context, id int64) (*models.User, error) {
			return alumniUser(id), nil
		},
		deleteEmploymentsByCompany: func(ctx context.Context, q db.Querier, userID, companyID int64) error {
			employmentsRemoved = true
			return nil
		},
	}
	service := NewCompanyService(companyRepo, userRepo, &mockTxRunner{}, nil)

	err := service.RemoveAlumni(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.True(t, associateRemoved)
	assert.True(t, employmentsRemoved)
}
