package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/services"
	"github.com/pharmahub/backend/internal/middleware"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

// JobController handles job postings
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// List returns active jobs
// @Summary List active jobs
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Job}
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs [get]
func (c *JobController) List(ctx *gin.Context) {
	jobs, err := c.jobService.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(jobs, len(jobs)))
}

// ListAll returns jobs of every status
// @Summary List all jobs
// @Tags jobs
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.ListResponse{data=[]models.Job}
// @Failure 401 {object} dto.ErrorResponse
// @Router /jobs/admin/all [get]
func (c *JobController) ListAll(ctx *gin.Context) {
	jobs, err := c.jobService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(jobs, len(jobs)))
}

// Get returns an active job
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.DataResponse{data=models.Job}
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id} [get]
func (c *JobController) Get(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	job, err := c.jobService.GetActive(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: job})
}

// Create adds a job posting
// @Summary Create a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.JobRequest true "Job"
// @Success 201 {object} dto.DataResponse{data=dto.IDData}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgRequiredFields)
		return
	}
	id, err := c.jobService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse(id, services.MsgJobCreated))
}

// Update replaces a job posting
// @Summary Update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path int true "Job ID"
// @Param request body dto.JobRequest true "Job"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id} [put]
func (c *JobController) Update(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgRequiredFields)
		return
	}
	if err := c.jobService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: services.MsgJobUpdated})
}

// Delete removes a job posting
// @Summary Delete a job
// @Tags jobs
// @Produce json
// @Security CookieAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id} [delete]
func (c *JobController) Delete(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.jobService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: services.MsgJobDeleted})
}
