package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/services"
	"github.com/pharmahub/backend/internal/middleware"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

// AdminController handles uploads and the uploaded file list
type AdminController struct {
	fileService services.FileService
}

// NewAdminController creates a new AdminController
func NewAdminController(fileService services.FileService) *AdminController {
	return &AdminController{fileService: fileService}
}

// Upload stores a file sent in the "file" form field
// @Summary Upload a file
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security CookieAuth
// @Param file formData file true "File to upload"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "No file uploaded"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/upload [post]
func (c *AdminController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("No file uploaded"))
			return
		}
		middleware.HandleBindingError(ctx, err)
		return
	}

	file, err := c.fileService.Upload(ctx.Request.Context(), fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UploadResponse{OK: true, URL: file.URL})
}

// ListFiles returns every uploaded file, newest first
// @Summary List uploaded files
// @Tags admin
// @Produce json
// @Security CookieAuth
// @Success 200 {array} models.File
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/files [get]
func (c *AdminController) ListFiles(ctx *gin.Context) {
	files, err := c.fileService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, files)
}

// DeleteFile removes an uploaded file from disk and from the list
// @Summary Delete an uploaded file
// @Tags admin
// @Produce json
// @Security CookieAuth
// @Param id path int true "File ID"
// @Success 200 {object} dto.OKResponse
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /admin/files/{id} [delete]
func (c *AdminController) DeleteFile(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.fileService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OKResponse{OK: true})
}
