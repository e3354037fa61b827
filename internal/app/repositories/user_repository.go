package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/db"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
	"github.com/tsiw/alumnet/internal/pkg/dberrors"
	"github.com/tsiw/alumnet/internal/pkg/helpers"
	"github.com/tsiw/alumnet/internal/pkg/logger"
)

// UserRepository handles user and employment database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const userColumns = `id, user_type, name, email, password, location, course_end_date, activity_field, points, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Type, &user.Name, &user.Email, &user.Password,
		&user.Location, &user.CourseEndDate, &user.ActivityField, &user.Points,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	exists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO users (user_type, name, email, password, location, course_end_date, activity_field)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		user.Type, user.Name, user.Email, user.Password,
		user.Location, user.CourseEndDate, user.ActivityField).Scan(&id)

	if err != nil {
		// Backstop for a registration racing the EmailExists check.
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`,
		email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID including the employment history.
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`,
		id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	user.Companys, err = r.GetEmployments(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// ListAlumni retrieves a page of alumni matching the filter, with their
// employment histories attached, plus the total match count.
func (r *UserRepository) ListAlumni(ctx context.Context, filter dto.AlumniFilter, page, limit int) ([]models.User, int64, error) {
	where := squirrel.And{squirrel.Eq{"u.user_type": models.TypeAlumni}}
	if filter.Name != "" {
		where = append(where, squirrel.ILike{"u.name": "%" + strings.TrimSpace(filter.Name) + "%"})
	}
	if filter.Location != "" {
		where = append(where, squirrel.ILike{"u.location": "%" + strings.TrimSpace(filter.Location) + "%"})
	}
	if filter.ActivityField != "" {
		where = append(where, squirrel.ILike{"u.activity_field": "%" + strings.TrimSpace(filter.ActivityField) + "%"})
	}
	if filter.CourseEndDate != nil {
		where = append(where, squirrel.Eq{"u.course_end_date": *filter.CourseEndDate})
	}
	if filter.Company != "" {
		// Matches the denormalized snapshot name inside the history
		where = append(where, squirrel.Expr(
			"EXISTS (SELECT 1 FROM employments e WHERE e.user_id = u.id AND e.company_name ILIKE ?)",
			"%"+strings.TrimSpace(filter.Company)+"%"))
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("users u").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count alumni query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count alumni: %w", err)
	}
	if total == 0 {
		return []models.User{}, 0, nil
	}

	listSql, listArgs, err := r.sb.Select(
		"u.id", "u.user_type", "u.name", "u.email", "u.password",
		"u.location", "u.course_end_date", "u.activity_field", "u.points",
		"u.created_at", "u.updated_at").
		From("users u").
		Where(where).
		OrderBy("u.id ASC").
		Offset(helpers.Offset(page, limit)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list alumni query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list alumni: %w", err)
	}
	defer rows.Close()

	var users []models.User
	var ids []int64
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan alumni row: %w", err)
		}
		users = append(users, *user)
		ids = append(ids, user.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read alumni rows: %w", err)
	}

	if err := r.attachEmployments(ctx, users, ids); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// attachEmployments loads the employment histories for a page of users.
func (r *UserRepository) attachEmployments(ctx context.Context, users []models.User, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, company_id, company_name, company_location, position, start_date, end_date
		FROM employments
		WHERE user_id = ANY($1)
		ORDER BY start_date ASC, id ASC`,
		ids)
	if err != nil {
		return fmt.Errorf("failed to load employments: %w", err)
	}
	defer rows.Close()

	byUser := make(map[int64][]models.Employment, len(ids))
	for rows.Next() {
		var e models.Employment
		if err := rows.Scan(&e.ID, &e.UserID, &e.CompanyID, &e.CompanyName,
			&e.CompanyLocation, &e.Position, &e.StartDate, &e.EndDate); err != nil {
			return fmt.Errorf("failed to scan employment row: %w", err)
		}
		byUser[e.UserID] = append(byUser[e.UserID], e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read employment rows: %w", err)
	}

	for i := range users {
		if emps, ok := byUser[users[i].ID]; ok {
			users[i].Companys = emps
		} else {
			users[i].Companys = []models.Employment{}
		}
	}
	return nil
}

// UpdateProfile applies the independent partial updates (location,
// activity field).
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, location, activityField *string) error {
	update := r.sb.Update("users").Set("updated_at", time.Now()).Where(squirrel.Eq{"id": userID})
	if location != nil {
		update = update.Set("location", *location)
	}
	if activityField != nil {
		update = update.Set("activity_field", *activityField)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build profile update: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1, updated_at = $2
		WHERE id = $3`,
		passwordHash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes the user row; employment rows go with it through the
// foreign key cascade. Associate rows are removed by the caller in the
// same transaction.
func (r *UserRepository) DeleteUser(ctx context.Context, q db.Querier, userID int64) error {
	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// AddPoints adjusts the gamification counter for a user.
func (r *UserRepository) AddPoints(ctx context.Context, q db.Querier, userID int64, delta int) error {
	tag, err := q.Exec(ctx, `
		UPDATE users
		SET points = points + $1, updated_at = $2
		WHERE id = $3`,
		delta, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to add points: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetEmployments retrieves the full employment history of a user.
func (r *UserRepository) GetEmployments(ctx context.Context, userID int64) ([]models.Employment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, company_id, company_name, company_location, position, start_date, end_date
		FROM employments
		WHERE user_id = $1
		ORDER BY start_date ASC, id ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employments: %w", err)
	}
	defer rows.Close()

	employments := []models.Employment{}
	for rows.Next() {
		var e models.Employment
		if err := rows.Scan(&e.ID, &e.UserID, &e.CompanyID, &e.CompanyName,
			&e.CompanyLocation, &e.Position, &e.StartDate, &e.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan employment row: %w", err)
		}
		employments = append(employments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employment rows: %w", err)
	}

	return employments, nil
}

// CountEmployments returns how many employment entries a user has.
func (r *UserRepository) CountEmployments(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM employments WHERE user_id = $1`,
		userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employments: %w", err)
	}
	return count, nil
}

// GetCurrentEmployment returns the open-ended employment entry, or
// ErrNoCurrentEmployment if every entry is closed.
func (r *UserRepository) GetCurrentEmployment(ctx context.Context, userID int64) (*models.Employment, error) {
	e := &models.Employment{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, company_id, company_name, company_location, position, start_date, end_date
		FROM employments
		WHERE user_id = $1 AND end_date IS NULL`,
		userID).Scan(&e.ID, &e.UserID, &e.CompanyID, &e.CompanyName,
		&e.CompanyLocation, &e.Position, &e.StartDate, &e.EndDate)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoCurrentEmployment
		}
		return nil, fmt.Errorf("failed to load current employment: %w", err)
	}

	return e, nil
}

// CreateEmployment inserts a new employment entry.
func (r *UserRepository) CreateEmployment(ctx context.Context, q db.Querier, e *models.Employment) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO employments (user_id, company_id, company_name, company_location, position, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		e.UserID, e.CompanyID, e.CompanyName, e.CompanyLocation,
		e.Position, e.StartDate, e.EndDate).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create employment: %w", err)
	}
	return id, nil
}

// CloseEmployment marks an employment entry as ended.
func (r *UserRepository) CloseEmployment(ctx context.Context, q db.Querier, employmentID int64, endDate time.Time) error {
	tag, err := q.Exec(ctx, `
		UPDATE employments SET end_date = $1 WHERE id = $2`,
		endDate, employmentID)
	if err != nil {
		return fmt.Errorf("failed to close employment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoCurrentEmployment
	}
	return nil
}

// DeleteEmploymentsByCompany removes all of a user's entries for one
// company (admin associate removal).
func (r *UserRepository) DeleteEmploymentsByCompany(ctx context.Context, q db.Querier, userID, companyID int64) error {
	_, err := q.Exec(ctx, `
		DELETE FROM employments WHERE user_id = $1 AND company_id = $2`,
		userID, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete employments: %w", err)
	}
	return nil
}

// PropagateCompanyChange refreshes the denormalized snapshots on every
// employment entry for a company (the cross-collection update-many).
func (r *UserRepository) PropagateCompanyChange(ctx context.Context, q db.Querier, companyID int64, name, location *string) error {
	update := r.sb.Update("employments").Where(squirrel.Eq{"company_id": companyID})
	if name != nil {
		update = update.Set("company_name", *name)
	}
	if location != nil {
		update = update.Set("company_location", *location)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build snapshot propagation: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to propagate company change: %w", err)
	}
	logger.Debug().Int64("companyId", companyID).Int64("rows", tag.RowsAffected()).Msg("Propagated company change to employment snapshots")
	return nil
}
