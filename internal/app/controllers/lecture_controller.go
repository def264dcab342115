package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/repositories"
	"github.com/pharmahub/backend/internal/app/services"
	"github.com/pharmahub/backend/internal/middleware"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

// LectureController handles lectures and their PDF material
type LectureController struct {
	lectureService services.LectureService
}

// NewLectureController creates a new LectureController
func NewLectureController(lectureService services.LectureService) *LectureController {
	return &LectureController{lectureService: lectureService}
}

// List returns lectures, newest first
// @Summary List lectures
// @Tags lectures
// @Produce json
// @Success 200 {array} models.Lecture
// @Router /lectures [get]
func (c *LectureController) List(ctx *gin.Context) {
	c.list(ctx, repositories.LecturesNewestFirst)
}

// ListPublic returns lectures in calendar order
// @Summary List lectures by schedule
// @Tags lectures
// @Produce json
// @Success 200 {array} models.Lecture
// @Router /lectures/public [get]
func (c *LectureController) ListPublic(ctx *gin.Context) {
	c.list(ctx, repositories.LecturesUpcomingFirst)
}

func (c *LectureController) list(ctx *gin.Context, order repositories.LectureOrder) {
	lectures, err := c.lectureService.List(ctx.Request.Context(), order)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lectures)
}

// Get
// @Summary Get a lecture
// @Tags lectures
// @Produce json
// @Param id path int true "Lecture ID"
// @Success 200 {object} models.Lecture
// @Failure 404 {object} dto.ErrorResponse
// @Router /lectures/{id} [get]
func (c *LectureController) Get(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	lecture, err := c.lectureService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lecture)
}

// Create adds a lecture with an optional PDF
// @Summary Create a lecture
// @Tags lectures
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param type formData string true "Type"
// @Param mode formData string true "Mode"
// @Param date formData string true "Date"
// @Param location formData string true "Location"
// @Param time formData string false "Time"
// @Param instructor formData string false "Instructor"
// @Param video_url formData string false "Video URL"
// @Param pdf formData file false "Lecture PDF"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 415 {object} dto.ErrorResponse
// @Router /lectures [post]
func (c *LectureController) Create(ctx *gin.Context) {
	req, pdf, ok := c.bindLecture(ctx)
	if !ok {
		return
	}
	id, err := c.lectureService.Create(ctx.Request.Context(), req, pdf)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: services.MsgLectureCreated})
}

// Update replaces a lecture; a new PDF replaces the stored one
// @Summary Update a lecture
// @Tags lectures
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path int true "Lecture ID"
// @Param pdf formData file false "Lecture PDF"
// @Success 200 {object} dto.PlainMessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /lectures/{id} [put]
func (c *LectureController) Update(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	req, pdf, ok := c.bindLecture(ctx)
	if !ok {
		return
	}
	if err := c.lectureService.Update(ctx.Request.Context(), id, req, pdf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PlainMessageResponse{Message: services.MsgLectureUpdated})
}

// Delete removes a lecture and its PDF
// @Summary Delete a lecture
// @Tags lectures
// @Produce json
// @Security CookieAuth
// @Param id path int true "Lecture ID"
// @Success 200 {object} dto.PlainMessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /lectures/{id} [delete]
func (c *LectureController) Delete(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.lectureService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PlainMessageResponse{Message: services.MsgLectureDeleted})
}

// bindLecture reads the lecture fields (form or JSON, by content type) and
// the optional "pdf" upload. It writes the error response itself.
func (c *LectureController) bindLecture(ctx *gin.Context) (*dto.LectureRequest, *multipart.FileHeader, bool) {
	var req dto.LectureRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgLectureRequired)
		return nil, nil, false
	}

	if ctx.ContentType() != gin.MIMEMultipartPOSTForm {
		return &req, nil, true
	}
	pdf, err := ctx.FormFile("pdf")
	switch {
	case err == nil:
		return &req, pdf, true
	case errors.Is(err, http.ErrMissingFile):
		return &req, nil, true
	default:
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid multipart form"))
		return nil, nil, false
	}
}
