package dto

import (
	"time"

	"github.com/tsiw/alumnet/internal/app/models"
)

// AlumniResponse is the public view of an alumnus; the password hash is
// never part of it.
type AlumniResponse struct {
	ID            int64               `json:"id"`
	Type          string              `json:"type"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Location      string              `json:"location"`
	CourseEndDate int                 `json:"courseEndDate"`
	ActivityField string              `json:"activityField"`
	Points        int                 `json:"points"`
	Companys      []models.Employment `json:"companys"`
}

// NewAlumniResponse maps a user model to its public view.
func NewAlumniResponse(user *models.User) AlumniResponse {
	companys := user.Companys
	if companys == nil {
		companys = []models.Employment{}
	}
	return AlumniResponse{
		ID:            user.ID,
		Type:          string(user.Type),
		Name:          user.Name,
		Email:         user.Email,
		Location:      user.Location,
		CourseEndDate: user.CourseEndDate,
		ActivityField: user.ActivityField,
		Points:        user.Points,
		Companys:      companys,
	}
}

// AlumniEnvelope wraps a single alumnus response.
type AlumniEnvelope struct {
	Success bool           `json:"success" example:"true"`
	Alumni  AlumniResponse `json:"alumni"`
}

// AlumniFilter holds the list filters; text filters are case-insensitive
// substring matches, Company matches the denormalized employment name.
type AlumniFilter struct {
	Name          string
	Company       string
	Location      string
	CourseEndDate *int
	ActivityField string
}

// UpdateAlumniRequest represents a partial profile update. Password changes
// require both password fields.
type UpdateAlumniRequest struct {
	Password        *string `json:"password,omitempty"`
	ConfirmPassword *string `json:"confirmPassword,omitempty"`
	Location        *string `json:"location,omitempty"`
	ActivityField   *string `json:"activityField,omitempty"`
}

// AddCompanyRequest associates the alumnus with a company. Either CompanyID
// (an existing, verified company) or Name (creates an unverified company on
// the fly) must be given.
type AddCompanyRequest struct {
	CompanyID *int64     `json:"companyId,omitempty"`
	Name      string     `json:"name,omitempty"`
	Location  string     `json:"location,omitempty"`
	Position  string     `json:"position,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ChangeCompanyRequest closes the current employment and opens a new one.
type ChangeCompanyRequest struct {
	CompanyID int64      `json:"companyId" binding:"required"`
	Position  string     `json:"position,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
}
