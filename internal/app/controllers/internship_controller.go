package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/services"
	"github.com/pharmahub/backend/internal/middleware"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

// InternshipController handles internship offers
type InternshipController struct {
	internshipService services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService services.InternshipService) *InternshipController {
	return &InternshipController{internshipService: internshipService}
}

// ListPublic returns active internships as a bare array
// @Summary List active internships
// @Tags internships
// @Produce json
// @Success 200 {array} models.Internship
// @Router /internships/public [get]
func (c *InternshipController) ListPublic(ctx *gin.Context) {
	items, err := c.internshipService.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// ListAll
// @Summary List all internships
// @Tags internships
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.DataResponse{data=[]models.Internship}
// @Failure 401 {object} dto.ErrorResponse
// @Router /internships/admin/all [get]
func (c *InternshipController) ListAll(ctx *gin.Context) {
	items, err := c.internshipService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: items})
}

// Get
// @Summary Get an internship
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.DataResponse{data=models.Internship}
// @Failure 404 {object} dto.ErrorResponse
// @Router /internships/{id} [get]
func (c *InternshipController) Get(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	item, err := c.internshipService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: item})
}

// Create
// @Summary Create an internship
// @Tags internships
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.InternshipRequest true "Internship"
// @Success 201 {object} dto.DataResponse{data=dto.IDData}
// @Failure 400 {object} dto.ErrorResponse
// @Router /internships [post]
func (c *InternshipController) Create(ctx *gin.Context) {
	var req dto.InternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgInternshipRequired)
		return
	}
	id, err := c.internshipService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse(id, services.MsgInternshipCreated))
}

// Update
// @Summary Update an internship
// @Tags internships
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path int true "Internship ID"
// @Param request body dto.InternshipRequest true "Internship"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /internships/{id} [put]
func (c *InternshipController) Update(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.InternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgInternshipRequired)
		return
	}
	if err := c.internshipService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: services.MsgInternshipUpdated})
}

// Delete
// @Summary Delete an internship
// @Tags internships
// @Produce json
// @Security CookieAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /internships/{id} [delete]
func (c *InternshipController) Delete(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.internshipService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: services.MsgInternshipDeleted})
}
