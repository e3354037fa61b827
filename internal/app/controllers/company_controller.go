package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/app/services"
	"github.com/tsiw/alumnet/internal/middleware"
	"github.com/tsiw/alumnet/internal/pkg/helpers"
)

// CompanyController handles the company directory.
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController.
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// CreateCompany registers a company
// @Summary Create a company
// @Description Admin only; anyone else gets a bad request. The company starts unverified.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCompanyRequest true "Company data"
// @Success 201 {object} dto.CompanyEnvelope
// @Failure 400 {object} dto.APIResponse "Not an admin or duplicate name"
// @Router /companies [post]
func (ctrl *CompanyController) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	_, callerType := middleware.CallerIdentity(c)
	company, err := ctrl.companyService.CreateCompany(c.Request.Context(), callerType, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CompanyEnvelope{
		Success: true,
		Message: "company created successfully",
		Company: dto.NewCompanyResponse(company),
	})
}

// ListCompanies lists companies
// @Summary List companies
// @Tags companies
// @Produce json
// @Param page query int false "0-based page" default(0)
// @Param limit query int false "Page size, must be 10" default(10)
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.APIResponse
// @Router /companies [get]
func (ctrl *CompanyController) ListCompanies(c *gin.Context) {
	page, err := helpers.ParsePageParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	limit, err := helpers.ParseExactLimit(c, helpers.DefaultLimit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	companies, total, err := ctrl.companyService.ListCompanies(c.Request.Context(), page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	data := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		data = append(data, dto.NewCompanyResponse(&companies[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(helpers.NewPagination(total, page, limit), data))
}

// GetCompany returns one company
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 404 {object} dto.APIResponse
// @Router /companies/{id} [get]
func (ctrl *CompanyController) GetCompany(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	company, err := ctrl.companyService.GetCompanyByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompanyEnvelope{Success: true, Company: dto.NewCompanyResponse(company)})
}

// UpdateCompany patches a company
// @Summary Update a company
// @Description Admin only. Name and location changes propagate to all employment history snapshots.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /companies/{id} [patch]
func (ctrl *CompanyController) UpdateCompany(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	company, err := ctrl.companyService.UpdateCompany(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompanyEnvelope{
		Success: true,
		Message: "company updated successfully",
		Company: dto.NewCompanyResponse(company),
	})
}

// VerifyCompany marks a company verified
// @Summary Verify a company
// @Description Admin only. Alumni can only associate with verified companies.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /companies/{id}/verify [put]
func (ctrl *CompanyController) VerifyCompany(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	company, err := ctrl.companyService.VerifyCompany(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompanyEnvelope{
		Success: true,
		Message: "company verified successfully",
		Company: dto.NewCompanyResponse(company),
	})
}

// RemoveAlumni detaches an alumnus from a company
// @Summary Remove an alumnus from a company
// @Description Admin only. Removes the associate row and the alumnus's employment entries for this company.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Param alumniId path int true "Alumnus ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /companies/{id}/associates/{alumniId} [delete]
func (ctrl *CompanyController) RemoveAlumni(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	alumniID, err := parseIDParam(c, "alumniId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.companyService.RemoveAlumni(c.Request.Context(), companyID, alumniID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("alumni removed from company successfully"))
}
