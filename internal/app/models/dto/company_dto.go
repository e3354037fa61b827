package dto

import (
	"github.com/tsiw/alumnet/internal/app/models"
)

// CreateCompanyRequest represents an admin company creation request.
type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required" example:"Alticelabs"`
	Location string `json:"location" binding:"required" example:"Aveiro"`
}

// UpdateCompanyRequest represents a partial company update. Name or
// location changes propagate to the employment snapshots of every alumnus.
type UpdateCompanyRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}

// CompanyResponse is the public view of a company.
type CompanyResponse struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Location   string             `json:"location"`
	Verified   bool               `json:"verified"`
	Associates []models.Associate `json:"associates"`
}

// NewCompanyResponse maps a company model to its public view.
func NewCompanyResponse(company *models.Company) CompanyResponse {
	associates := company.Associates
	if associates == nil {
		associates = []models.Associate{}
	}
	return CompanyResponse{
		ID:         company.ID,
		Name:       company.Name,
		Location:   company.Location,
		Verified:   company.Verified,
		Associates: associates,
	}
}

// CompanyEnvelope wraps a single company response.
type CompanyEnvelope struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message,omitempty"`
	Company CompanyResponse `json:"company"`
}
