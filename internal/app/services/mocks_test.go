package services

import (
	"context"
	"time"

	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/db"
)

// mockTxRunner executes the transaction function directly; the mocked
// repositories ignore the Querier argument.
type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	m.calls++
	return fn(ctx, nil)
}

type mockUserRepository struct {
	createUser                 func(context.Context, *models.User) (int64, error)
	getUserByEmail             func(context.Context, string) (*models.User, error)
	getUserByID                func(context.Context, int64) (*models.User, error)
	emailExists                func(context.Context, string) (bool, error)
	listAlumni                 func(context.Context, dto.AlumniFilter, int, int) ([]models.User, int64, error)
	updateProfile              func(context.Context, int64, *string, *string) error
	updatePassword             func(context.Context, int64, string) error
	deleteUser                 func(context.Context, db.Querier, int64) error
	addPoints                  func(context.Context, db.Querier, int64, int) error
	countEmployments           func(context.Context, int64) (int, error)
	getCurrentEmployment       func(context.Context, int64) (*models.Employment, error)
	createEmployment           func(context.Context, db.Querier, *models.Employment) (int64, error)
	closeEmployment            func(context.Context, db.Querier, int64, time.Time) error
	deleteEmploymentsByCompany func(context.Context, db.Querier, int64, int64) error
	propagateCompanyChange     func(context.Context, db.Querier, int64, *string, *string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	return m.createUser(ctx, user)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.getUserByEmail(ctx, email)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return m.getUserByID(ctx, id)
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emailExists(ctx, email)
}

func (m *mockUserRepository) ListAlumni(ctx context.Context, filter dto.AlumniFilter, page, limit int) ([]models.User, int64, error) {
	return m.listAlumni(ctx, filter, page, limit)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID int64, location, activityField *string) error {
	return m.updateProfile(ctx, userID, location, activityField)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return m.updatePassword(ctx, userID, passwordHash)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, q db.Querier, userID int64) error {
	return m.deleteUser(ctx, q, userID)
}

func (m *mockUserRepository) AddPoints(ctx context.Context, q db.Querier, userID int64, delta int) error {
	return m.addPoints(ctx, q, userID, delta)
}

func (m *mockUserRepository) CountEmployments(ctx context.Context, userID int64) (int, error) {
	return m.countEmployments(ctx, userID)
}

func (m *mockUserRepository) GetCurrentEmployment(ctx context.Context, userID int64) (*models.Employment, error) {
	return m.getCurrentEmployment(ctx, userID)
}

func (m *mockUserRepository) CreateEmployment(ctx context.Context, q db.Querier, e *models.Employment) (int64, error) {
	return m.createEmployment(ctx, q, e)
}

func (m *mockUserRepository) CloseEmployment(ctx context.Context, q db.Querier, employmentID int64, endDate time.Time) error {
	return m.closeEmployment(ctx, q, employmentID, endDate)
}

func (m *mockUserRepository) DeleteEmploymentsByCompany(ctx context.Context, q db.Querier, userID, companyID int64) error {
	return m.deleteEmploymentsByCompany(ctx, q, userID, companyID)
}

func (m *mockUserRepository) PropagateCompanyChange(ctx context.Context, q db.Querier, companyID int64, name, location *string) error {
	return m.propagateCompanyChange(ctx, q, companyID, name, location)
}

type mockCompanyRepository struct {
	createCompany          func(context.Context, db.Querier, *models.Company) (int64, error)
	nameExists             func(context.Context, string) (bool, error)
	getCompanyByID         func(context.Context, int64) (*models.Company, error)
	listCompanies          func(context.Context, int, int) ([]models.Company, int64, error)
	updateCompany          func(context.Context, db.Querier, int64, *string, *string) error
	setVerified            func(context.Context, int64) error
	addAssociate           func(context.Context, db.Querier, int64, int64) error
	removeAssociate        func(context.Context, db.Querier, int64, int64) error
	removeAssociatesByUser func(context.Context, db.Querier, int64) (int64, error)
}

func (m *mockCompanyRepository) CreateCompany(ctx context.Context, q db.Querier, company *models.Company) (int64, error) {
	return m.createCompany(ctx, q, company)
}

func (m *mockCompanyRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return m.nameExists(ctx, name)
}

func (m *mockCompanyRepository) GetCompanyByID(ctx context.Context, id int64) (*models.Company, error) {
	return m.getCompanyByID(ctx, id)
}

func (m *mockCompanyRepository) ListCompanies(ctx context.Context, page, limit int) ([]models.Company, int64, error) {
	return m.listCompanies(ctx, page, limit)
}

func (m *mockCompanyRepository) UpdateCompany(ctx context.Context, q db.Querier, companyID int64, name, location *string) error {
	return m.updateCompany(ctx, q, companyID, name, location)
}

func (m *mockCompanyRepository) SetVerified(ctx context.Context, companyID int64) error {
	return m.setVerified(ctx, companyID)
}

func (m *mockCompanyRepository) AddAssociate(ctx context.Context, q db.Querier, companyID, userID int64) error {
	return m.addAssociate(ctx, q, companyID, userID)
}

func (m *mockCompanyRepository) RemoveAssociate(ctx context.Context, q db.Querier, companyID, userID int64) error {
	return m.removeAssociate(ctx, q, companyID, userID)
}

func (m *mockCompanyRepository) RemoveAssociatesByUser(ctx context.Context, q db.Querier, userID int64) (int64, error) {
	return m.removeAssociatesByUser(ctx, q, userID)
}

type mockPostRepository struct {
	createPost     func(context.Context, db.Querier, *models.Post) (int64, error)
	getPostByID    func(context.Context, int64) (*models.Post, error)
	listPosts      func(context.Context, dto.PostFilter, int, int) ([]models.Post, int64, error)
	deletePost     func(context.Context, int64) error
	addComment     func(context.Context, db.Querier, *models.Comment) (int64, error)
	getComment     func(context.Context, int64, int64) (*models.Comment, error)
	deleteComment  func(context.Context, int64, int64) error
	incrementLikes func(context.Context, db.Querier, int64) (int, error)
	decrementLikes func(context.Context, db.Querier, int64) (int, error)
}

func (m *mockPostRepository) CreatePost(ctx context.Context, q db.Querier, post *models.Post) (int64, error) {
	return m.createPost(ctx, q, post)
}

func (m *mockPostRepository) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	return m.getPostByID(ctx, id)
}

func (m *mockPostRepository) ListPosts(ctx context.Context, filter dto.PostFilter, page, limit int) ([]models.Post, int64, error) {
	return m.listPosts(ctx, filter, page, limit)
}

func (m *mockPostRepository) DeletePost(ctx context.Context, postID int64) error {
	return m.deletePost(ctx, postID)
}

func (m *mockPostRepository) AddComment(ctx context.Context, q db.Querier, comment *models.Comment) (int64, error) {
	return m.addComment(ctx, q, comment)
}

func (m *mockPostRepository) GetComment(ctx context.Context, postID, commentID int64) (*models.Comment, error) {
	return m.getComment(ctx, postID, commentID)
}

func (m *mockPostRepository) DeleteComment(ctx context.Context, postID, commentID int64) error {
	return m.deleteComment(ctx, postID, commentID)
}

func (m *mockPostRepository) IncrementLikes(ctx context.Context, q db.Querier, postID int64) (int, error) {
	return m.incrementLikes(ctx, q, postID)
}

func (m *mockPostRepository) DecrementLikes(ctx context.Context, q db.Querier, postID int64) (int, error) {
	return m.decrementLikes(ctx, q, postID)
}

// interface guards
var (
	_ UserRepository    = (*mockUserRepository)(nil)
	_ CompanyRepository = (*mockCompanyRepository)(nil)
	_ PostRepository    = (*mockPostRepository)(nil)
	_ TxRunner          = (*mockTxRunner)(nil)
)
