package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/services"
	"github.com/pharmahub/backend/internal/middleware"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

// PharmaHubController serves the public question and answer forum
type PharmaHubController struct {
	hubService services.PharmaHubService
}

// NewPharmaHubController creates a new PharmaHubController
func NewPharmaHubController(hubService services.PharmaHubService) *PharmaHubController {
	return &PharmaHubController{hubService: hubService}
}

// ListQuestions
// @Summary List questions
// @Tags pharma-hub
// @Produce json
// @Param category query string false "Category filter"
// @Param sort query string false "latest, oldest, most-answers or most-views"
// @Param limit query int false "Limit (default 50)"
// @Success 200 {array} models.Question
// @Failure 400 {object} dto.ErrorResponse
// @Router /pharma-hub/questions [get]
func (c *PharmaHubController) ListQuestions(ctx *gin.Context) {
	var params dto.QuestionListParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	questions, err := c.hubService.ListQuestions(ctx.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion counts a view and returns the question with its comments
// @Summary Get a question
// @Tags pharma-hub
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pharma-hub/questions/{id} [get]
func (c *PharmaHubController) GetQuestion(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	detail, err := c.hubService.ViewQuestion(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// CreateQuestion
// @Summary Ask a question
// @Tags pharma-hub
// @Accept json
// @Produce json
// @Param request body dto.QuestionRequest true "Question"
// @Success 201 {object} models.Question
// @Failure 400 {object} dto.ErrorResponse
// @Router /pharma-hub/questions [post]
func (c *PharmaHubController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgQuestionRequired)
		return
	}
	question, err := c.hubService.CreateQuestion(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion
// @Summary Edit a question
// @Tags pharma-hub
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body dto.QuestionUpdateRequest true "Question"
// @Success 200 {object} models.Question
// @Failure 404 {object} dto.ErrorResponse
// @Router /pharma-hub/questions/{id} [put]
func (c *PharmaHubController) UpdateQuestion(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.QuestionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgQuestionRequired)
		return
	}
	question, err := c.hubService.UpdateQuestion(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion removes a question together with its comments
// @Summary Delete a question
// @Tags pharma-hub
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.PlainMessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pharma-hub/questions/{id} [delete]
func (c *PharmaHubController) DeleteQuestion(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.hubService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PlainMessageResponse{Message: services.MsgQuestionDeleted})
}

// ListComments
// @Summary List answers to a question
// @Tags pharma-hub
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {array} models.Comment
// @Router /pharma-hub/questions/{id}/comments [get]
func (c *PharmaHubController) ListComments(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	comments, err := c.hubService.ListComments(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// AddComment
// @Summary Answer a question
// @Tags pharma-hub
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body dto.CommentRequest true "Comment"
// @Success 201 {object} models.Comment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pharma-hub/questions/{id}/comments [post]
func (c *PharmaHubController) AddComment(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgCommentRequired)
		return
	}
	comment, err := c.hubService.AddComment(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

// UpdateComment
// @Summary Edit an answer
// @Tags pharma-hub
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body dto.CommentUpdateRequest true "Comment"
// @Success 200 {object} models.Comment
// @Failure 404 {object} dto.ErrorResponse
// @Router /pharma-hub/comments/{id} [put]
func (c *PharmaHubController) UpdateComment(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.CommentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, services.MsgContentRequired)
		return
	}
	comment, err := c.hubService.UpdateComment(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// DeleteComment
// @Summary Delete an answer
// @Tags pharma-hub
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.PlainMessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pharma-hub/comments/{id} [delete]
func (c *PharmaHubController) DeleteComment(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.hubService.DeleteComment(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PlainMessageResponse{Message: services.MsgCommentDeleted})
}

// Stats
// @Summary Forum statistics
// @Tags pharma-hub
// @Produce json
// @Success 200 {object} models.ForumStats
// @Router /pharma-hub/stats [get]
func (c *PharmaHubController) Stats(ctx *gin.Context) {
	stats, err := c.hubService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
