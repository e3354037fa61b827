// Services defined in this package:
// - AuthService: registration and login
// - AlumniService: alumni profiles and employment associations
// - CompanyService: company directory and verification
// - PostService: the social feed (posts, comments, likes)
package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/app/repositories"
	"github.com/tsiw/alumnet/internal/db"
	"github.com/tsiw/alumnet/internal/pkg/auth"
)

// TxRunner runs a function inside a database transaction. *db.PostgresDB
// satisfies it.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// UserRepository is the slice of the user repository the services need.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListAlumni(ctx context.Context, filter dto.AlumniFilter, page, limit int) ([]models.User, int64, error)
	UpdateProfile(ctx context.Context, userID int64, location, activityField *string) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	DeleteUser(ctx context.Context, q db.Querier, userID int64) error
	AddPoints(ctx context.Context, q db.Querier, userID int64, delta int) error
	CountEmployments(ctx context.Context, userID int64) (int, error)
	GetCurrentEmployment(ctx context.Context, userID int64) (*models.Employment, error)
	CreateEmployment(ctx context.Context, q db.Querier, e *models.Employment) (int64, error)
	CloseEmployment(ctx context.Context, q db.Querier, employmentID int64, endDate time.Time) error
	DeleteEmploymentsByCompany(ctx context.Context, q db.Querier, userID, companyID int64) error
	PropagateCompanyChange(ctx context.Context, q db.Querier, companyID int64, name, location *string) error
}

// CompanyRepository is the slice of the company repository the services need.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, q db.Querier, company *models.Company) (int64, error)
	NameExists(ctx context.Context, name string) (bool, error)
	GetCompanyByID(ctx context.Context, id int64) (*models.Company, error)
	ListCompanies(ctx context.Context, page, limit int) ([]models.Company, int64, error)
	UpdateCompany(ctx context.Context, q db.Querier, companyID int64, name, location *string) error
	SetVerified(ctx context.Context, companyID int64) error
	AddAssociate(ctx context.Context, q db.Querier, companyID, userID int64) error
	RemoveAssociate(ctx context.Context, q db.Querier, companyID, userID int64) error
	RemoveAssociatesByUser(ctx context.Context, q db.Querier, userID int64) (int64, error)
}

// PostRepository is the slice of the post repository the services need.
type PostRepository interface {
	CreatePost(ctx context.Context, q db.Querier, post *models.Post) (int64, error)
	GetPostByID(ctx context.Context, id int64) (*models.Post, error)
	ListPosts(ctx context.Context, filter dto.PostFilter, page, limit int) ([]models.Post, int64, error)
	DeletePost(ctx context.Context, postID int64) error
	AddComment(ctx context.Context, q db.Querier, comment *models.Comment) (int64, error)
	GetComment(ctx context.Context, postID, commentID int64) (*models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID int64) error
	IncrementLikes(ctx context.Context, q db.Querier, postID int64) (int, error)
	DecrementLikes(ctx context.Context, q db.Querier, postID int64) (int, error)
}

// Services aggregates all application services.
type Services struct {
	AuthService    *AuthService
	AlumniService  *AlumniService
	CompanyService *CompanyService
	PostService    *PostService
}

// NewServices wires the services with the concrete repositories.
func NewServices(repos *repositories.Repositories, database *db.PostgresDB, pool *pgxpool.Pool, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, jwtService),
		AlumniService:  NewAlumniService(repos.UserRepository, repos.CompanyRepository, database),
		CompanyService: NewCompanyService(repos.CompanyRepository, repos.UserRepository, database, pool),
		PostService:    NewPostService(repos.PostRepository, repos.UserRepository, database, pool),
	}
}
