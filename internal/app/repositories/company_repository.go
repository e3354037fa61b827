package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/db"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
	"github.com/tsiw/alumnet/internal/pkg/dberrors"
	"github.com/tsiw/alumnet/internal/pkg/helpers"
)

// CompanyRepository handles company and associate database operations
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCompany creates a new company and returns its ID.
func (r *CompanyRepository) CreateCompany(ctx context.Context, q db.Querier, company *models.Company) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO companies (name, location, verified)
		VALUES ($1, $2, $3)
		RETURNING id`,
		company.Name, company.Location, company.Verified).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCompanyAlreadyExists
		}
		return 0, fmt.Errorf("error creating company: %w", err)
	}

	return id, nil
}

// NameExists checks if a company name is already taken
func (r *CompanyRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM companies WHERE name = $1)`,
		name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking company name: %w", err)
	}
	return exists, nil
}

// GetCompanyByID retrieves a company by ID including its associates.
func (r *CompanyRepository) GetCompanyByID(ctx context.Context, id int64) (*models.Company, error) {
	company := &models.Company{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, location, verified
		FROM companies
		WHERE id = $1`,
		id).Scan(&company.ID, &company.Name, &company.Location, &company.Verified)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error loading company: %w", err)
	}

	company.Associates, err = r.GetAssociates(ctx, id)
	if err != nil {
		return nil, err
	}
	return company, nil
}

// ListCompanies retrieves a page of companies with their associates plus
// the total count.
func (r *CompanyRepository) ListCompanies(ctx context.Context, page, limit int) ([]models.Company, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}
	if total == 0 {
		return []models.Company{}, 0, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, location, verified
		FROM companies
		ORDER BY id ASC
		OFFSET $1 LIMIT $2`,
		helpers.Offset(page, limit), limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	var ids []int64
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Verified); err != nil {
			return nil, 0, fmt.Errorf("failed to scan company row: %w", err)
		}
		c.Associates = []models.Associate{}
		companies = append(companies, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read company rows: %w", err)
	}

	if err := r.attachAssociates(ctx, companies, ids); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (r *CompanyRepository) attachAssociates(ctx context.Context, companies []models.Company, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, company_id, user_id
		FROM company_associates
		WHERE company_id = ANY($1)
		ORDER BY id ASC`,
		ids)
	if err != nil {
		return fmt.Errorf("failed to load associates: %w", err)
	}
	defer rows.Close()

	byCompany := make(map[int64][]models.Associate, len(ids))
	for rows.Next() {
		var a models.Associate
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.UserID); err != nil {
			return fmt.Errorf("failed to scan associate row: %w", err)
		}
		byCompany[a.CompanyID] = append(byCompany[a.CompanyID], a)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read associate rows: %w", err)
	}

	for i := range companies {
		if assoc, ok := byCompany[companies[i].ID]; ok {
			companies[i].Associates = assoc
		}
	}
	return nil
}

// UpdateCompany applies the partial name/location update to the company
// row itself. Snapshot propagation to employments happens separately in
// the same transaction.
func (r *CompanyRepository) UpdateCompany(ctx context.Context, q db.Querier, companyID int64, name, location *string) error {
	update := r.sb.Update("companies").Where(squirrel.Eq{"id": companyID})
	if name != nil {
		update = update.Set("name", *name)
	}
	if location != nil {
		update = update.Set("location", *location)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build company update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCompanyAlreadyExists
		}
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

// SetVerified marks a company as verified.
func (r *CompanyRepository) SetVerified(ctx context.Context, companyID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE companies SET verified = TRUE WHERE id = $1`,
		companyID)
	if err != nil {
		return fmt.Errorf("failed to verify company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

// GetAssociates lists the users linked to a company.
func (r *CompanyRepository) GetAssociates(ctx context.Context, companyID int64) ([]models.Associate, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, company_id, user_id
		FROM company_associates
		WHERE company_id = $1
		ORDER BY id ASC`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load associates: %w", err)
	}
	defer rows.Close()

	associates := []models.Associate{}
	for rows.Next() {
		var a models.Associate
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan associate row: %w", err)
		}
		associates = append(associates, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read associate rows: %w", err)
	}

	return associates, nil
}

// AddAssociate links a user to a company.
func (r *CompanyRepository) AddAssociate(ctx context.Context, q db.Querier, companyID, userID int64) error {
	_, err := q.Exec(ctx, `
		INSERT INTO company_associates (company_id, user_id)
		VALUES ($1, $2)`,
		companyID, userID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to add associate: %w", err)
	}
	return nil
}

// RemoveAssociate unlinks a user from one company.
func (r *CompanyRepository) RemoveAssociate(ctx context.Context, q db.Querier, companyID, userID int64) error {
	_, err := q.Exec(ctx, `
		DELETE FROM company_associates
		WHERE company_id = $1 AND user_id = $2`,
		companyID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove associate: %w", err)
	}
	return nil
}

// RemoveAssociatesByUser unlinks a user from every company (alumnus
// deletion cleanup).
func (r *CompanyRepository) RemoveAssociatesByUser(ctx context.Context, q db.Querier, userID int64) (int64, error) {
	tag, err := q.Exec(ctx, `
		DELETE FROM company_associates WHERE user_id = $1`,
		userID)
	if err != nil {
		return 0, fmt.Errorf("failed to remove associates: %w", err)
	}
	return tag.RowsAffected(), nil
}
