package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/app/services"
	"github.com/tsiw/alumnet/internal/middleware"
	"github.com/tsiw/alumnet/internal/pkg/helpers"
)

// AlumniController handles alumni profiles and their employment
// associations.
type AlumniController struct {
	alumniService *services.AlumniService
}

// NewAlumniController creates a new AlumniController.
func NewAlumniController(alumniService *services.AlumniService) *AlumniController {
	return &AlumniController{alumniService: alumniService}
}

// ListAlumni lists alumni
// @Summary List alumni
// @Description Returns a page of alumni. Text filters are case-insensitive substring matches; company matches the employment history.
// @Tags alumni
// @Produce json
// @Param page query int false "0-based page" default(0)
// @Param limit query int false "Page size, must be greater than 5" default(10)
// @Param name query string false "Name filter"
// @Param company query string false "Company name filter"
// @Param location query string false "Location filter"
// @Param courseEndDate query int false "Exact course end year"
// @Param activityField query string false "Activity field filter"
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.APIResponse
// @Router /alumni [get]
func (ctrl *AlumniController) ListAlumni(c *gin.Context) {
	page, err := helpers.ParsePageParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	limit, err := helpers.ParseMinLimit(c, helpers.MinAlumniLimit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	filter := dto.AlumniFilter{
		Name:          c.Query("name"),
		Company:       c.Query("company"),
		Location:      c.Query("location"),
		ActivityField: c.Query("activityField"),
	}
	if yearStr := c.Query("courseEndDate"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("courseEndDate must be an integer"))
			return
		}
		filter.CourseEndDate = &year
	}

	users, total, err := ctrl.alumniService.ListAlumni(c.Request.Context(), filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	data := make([]dto.AlumniResponse, 0, len(users))
	for i := range users {
		data = append(data, dto.NewAlumniResponse(&users[i]))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(helpers.NewPagination(total, page, limit), data))
}

// GetAlumni returns one alumnus
// @Summary Get an alumnus
// @Tags alumni
// @Produce json
// @Param id path int true "Alumnus ID"
// @Success 200 {object} dto.AlumniEnvelope
// @Failure 404 {object} dto.APIResponse
// @Router /alumni/{id} [get]
func (ctrl *AlumniController) GetAlumni(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	user, err := ctrl.alumniService.GetAlumniByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AlumniEnvelope{Success: true, Alumni: dto.NewAlumniResponse(user)})
}

// UpdateAlumni patches the caller's own profile
// @Summary Update an alumnus
// @Description Owner only. Password changes require password and confirmPassword, and the new password must differ from the current one.
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumnus ID"
// @Param request body dto.UpdateAlumniRequest true "Fields to update"
// @Success 200 {object} dto.AlumniEnvelope
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /alumni/{id} [patch]
func (ctrl *AlumniController) UpdateAlumni(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateAlumniRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	callerID, _ := middleware.CallerIdentity(c)
	user, err := ctrl.alumniService.UpdateAlumni(c.Request.Context(), callerID, id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AlumniEnvelope{Success: true, Alumni: dto.NewAlumniResponse(user)})
}

// DeleteAlumni deletes an account
// @Summary Delete an alumnus
// @Description Admins delete anyone, alumni only themselves. Associate rows in every company are removed too.
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumnus ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /alumni/{id} [delete]
func (ctrl *AlumniController) DeleteAlumni(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	callerID, callerType := middleware.CallerIdentity(c)
	if err := ctrl.alumniService.DeleteAlumni(c.Request.Context(), callerID, callerType, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("alumni deleted successfully"))
}

// AddCompany associates a company with the caller
// @Summary Add a company to an alumnus
// @Description Owner only, and only when the alumnus has no employment entry yet. Either companyId of a verified company or a name that creates an unverified one.
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumnus ID"
// @Param request body dto.AddCompanyRequest true "Company association"
// @Success 200 {object} dto.AlumniEnvelope
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /alumni/{id}/companies [post]
func (ctrl *AlumniController) AddCompany(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.AddCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	callerID, _ := middleware.CallerIdentity(c)
	user, err := ctrl.alumniService.AddCompany(c.Request.Context(), callerID, id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AlumniEnvelope{Success: true, Alumni: dto.NewAlumniResponse(user)})
}

// ChangeCompany moves the caller to a new company
// @Summary Change an alumnus's company
// @Description Owner only. Closes the current employment entry and opens a new one at a verified company.
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumnus ID"
// @Param request body dto.ChangeCompanyRequest true "New company"
// @Success 200 {object} dto.AlumniEnvelope
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /alumni/{id}/companies [patch]
func (ctrl *AlumniController) ChangeCompany(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.ChangeCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	callerID, _ := middleware.CallerIdentity(c)
	user, err := ctrl.alumniService.ChangeCompany(c.Request.Context(), callerID, id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AlumniEnvelope{Success: true, Alumni: dto.NewAlumniResponse(user)})
}
