package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/services"
	"github.com/pharmahub/backend/internal/middleware"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

// DidYouKnowController serves short pharmacy facts
type DidYouKnowController struct {
	factService services.DidYouKnowService
}

func NewDidYouKnowController(factService services.DidYouKnowService) *DidYouKnowController {
	return &DidYouKnowController{factService: factService}
}

// List
// @Summary List active facts
// @Tags did-you-know
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.DidYouKnow}
// @Router /did-you-know [get]
func (c *DidYouKnowController) List(ctx *gin.Context) {
	facts, err := c.factService.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(facts, len(facts)))
}

// Get
// @Summary Get a fact
// @Tags did-you-know
// @Produce json
// @Param id path int true "Fact ID"
// @Success 200 {object} dto.DataResponse{data=models.DidYouKnow}
// @Failure 404 {object} dto.ErrorResponse
// @Router /did-you-know/{id} [get]
func (c *DidYouKnowController) Get(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	fact, err := c.factService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: fact})
}

// Create
// @Summary Create a fact
// @Tags did-you-know
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.DidYouKnowRequest true "Fact"
// @Success 201 {object} dto.DataResponse{data=dto.IDData}
// @Failure 400 {object} dto.ErrorResponse
// @Router /did-you-know [post]
func (c *DidYouKnowController) Create(ctx *gin.Context) {
	var req dto.DidYouKnowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgFactRequired)
		return
	}
	id, err := c.factService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse(id, services.MsgFactCreated))
}

// Update
// @Summary Update a fact
// @Tags did-you-know
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path int true "Fact ID"
// @Param request body dto.DidYouKnowRequest true "Fact"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /did-you-know/{id} [put]
func (c *DidYouKnowController) Update(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.DidYouKnowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgFactRequired)
		return
	}
	if err := c.factService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: services.MsgFactUpdated})
}

// Delete
// @Summary Delete a fact
// @Tags did-you-know
// @Produce json
// @Security CookieAuth
// @Param id path int true "Fact ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /did-you-know/{id} [delete]
func (c *DidYouKnowController) Delete(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.factService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: services.MsgFactDeleted})
}
