package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/services"
	"github.com/pharmahub/backend/internal/middleware"
)

// AuthController handles admin login and session cookies
type AuthController struct {
	authService    services.AuthService
	authMiddleware *middleware.AuthMiddleware
	secureCookie   bool
	sessionMaxAge  time.Duration
}

// NewAuthController creates a new AuthController.
// secureCookie marks the session cookie Secure (production).
func NewAuthController(authService services.AuthService, authMiddleware *middleware.AuthMiddleware, secureCookie bool, sessionMaxAge time.Duration) *AuthController {
	return &AuthController{
		authService:    authService,
		authMiddleware: authMiddleware,
		secureCookie:   secureCookie,
		sessionMaxAge:  sessionMaxAge,
	}
}

// Login handles admin login
// @Summary Admin login
// @Description Verifies the credentials and sets the httpOnly session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Username and password required"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse "Too many login attempts"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleMissingFields(ctx, err, "Username and password required")
		return
	}

	session, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, session.Token, int(c.sessionMaxAge.Seconds()))
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		OK:   true,
		User: dto.AuthUser{ID: session.User.ID, Username: session.User.Username},
	})
}

// Logout clears the session cookie
// @Summary Admin logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.OKResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// Me returns the signed-in user, or null
// @Summary Current session
// @Description Returns the user of a valid session cookie, or {user:null}
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := c.authMiddleware.Claims(ctx)
	if claims == nil {
		ctx.JSON(http.StatusOK, dto.MeResponse{User: nil})
		return
	}
	ctx.JSON(http.StatusOK, dto.MeResponse{
		User: &dto.AuthUser{ID: claims.UserID, Username: claims.Username},
	})
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.authMiddleware.CookieName(), value, maxAge, "/", "", c.secureCookie, true)
}
