package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/services"
	"github.com/pharmahub/backend/internal/middleware"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

// AnnouncementController handles announcements
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// List returns active announcements
// @Summary List active announcements
// @Tags announcements
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Announcement}
// @Failure 500 {object} dto.ErrorResponse
// @Router /announcements [get]
func (c *AnnouncementController) List(ctx *gin.Context) {
	items, err := c.announcementService.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(items, len(items)))
}

// ListAll returns announcements of every status
// @Summary List all announcements
// @Tags announcements
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.ListResponse{data=[]models.Announcement}
// @Failure 401 {object} dto.ErrorResponse
// @Router /announcements/admin/all [get]
func (c *AnnouncementController) ListAll(ctx *gin.Context) {
	items, err := c.announcementService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(items, len(items)))
}

// Get returns an active announcement
// @Summary Get an announcement
// @Tags announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.DataResponse{data=models.Announcement}
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id} [get]
func (c *AnnouncementController) Get(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	item, err := c.announcementService.GetActive(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: item})
}

// Create adds an announcement
// @Summary Create an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.AnnouncementRequest true "Announcement"
// @Success 201 {object} dto.DataResponse{data=dto.IDData}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	var req dto.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgRequiredFields)
		return
	}
	id, err := c.announcementService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse(id, services.MsgAnnouncementCreated))
}

// Update replaces an announcement
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path int true "Announcement ID"
// @Param request body dto.AnnouncementRequest true "Announcement"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id} [put]
func (c *AnnouncementController) Update(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgRequiredFields)
		return
	}
	if err := c.announcementService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: services.MsgAnnouncementUpdated})
}

// Delete removes an announcement
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Security CookieAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.announcementService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: services.MsgAnnouncementDeleted})
}
