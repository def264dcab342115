package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/repositories"
	"github.com/pharmahub/backend/internal/middleware"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

// News listing limits
const (
	defaultNewsLimit = 10
	maxNewsLimit     = 100
)

// PublicController serves the read-only site content
type PublicController struct {
	repo *repositories.PublicRepository
}

// NewPublicController creates a new PublicController
func NewPublicController(repo *repositories.PublicRepository) *PublicController {
	return &PublicController{repo: repo}
}

// News returns published news
// @Summary Published news
// @Tags public
// @Produce json
// @Param limit query int false "Maximum items (default 10, max 100)"
// @Success 200 {array} object
// @Router /public/news [get]
func (c *PublicController) News(ctx *gin.Context) {
	limit := helpers.ParseLimit(ctx, defaultNewsLimit, maxNewsLimit)
	c.respond(ctx, func(rc context.Context) ([]repositories.Row, error) {
		return c.repo.PublishedNews(rc, uint64(limit))
	})
}

// Publications returns every publication
// @Summary Publications
// @Tags public
// @Produce json
// @Success 200 {array} object
// @Router /public/publications [get]
func (c *PublicController) Publications(ctx *gin.Context) {
	c.respond(ctx, c.repo.Publications)
}

// Lectures returns every lecture
// @Summary Lectures
// @Tags public
// @Produce json
// @Success 200 {array} object
// @Router /public/lectures [get]
func (c *PublicController) Lectures(ctx *gin.Context) {
	c.respond(ctx, c.repo.Lectures)
}

// Graduates returns every graduate
// @Summary Graduates
// @Tags public
// @Produce json
// @Success 200 {array} object
// @Router /public/graduates [get]
func (c *PublicController) Graduates(ctx *gin.Context) {
	c.respond(ctx, c.repo.Graduates)
}

func (c *PublicController) respond(ctx *gin.Context, load func(context.Context) ([]repositories.Row, error)) {
	rows, err := load(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
