package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/pkg/auth"
)

// Context keys set by RequireAuth
const (
	UserIDKey   = "userID"
	UsernameKey = "username"
	claimsKey   = "authClaims"
)

// AuthMiddleware guards admin routes with the session token
type AuthMiddleware struct {
	jwtService *auth.JWTService
	cookieName string
}

// NewAuthMiddleware creates a new AuthMiddleware reading the named cookie
func NewAuthMiddleware(jwtService *auth.JWTService, cookieName string) *AuthMiddleware {
	if cookieName == "" {
		cookieName = "token"
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
	}
}

// CookieName returns the name of the session cookie
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// TokenFromRequest returns the session token from the cookie, or from an
// "Authorization: Bearer" header when there is no cookie.
func (m *AuthMiddleware) TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(m.cookieName); err == nil && token != "" {
		return token
	}
	if token, err := auth.ExtractBearerToken(c.GetHeader("Authorization")); err == nil {
		return token
	}
	return ""
}

// Claims verifies the request's token without aborting.
// It returns nil when there is no valid token.
func (m *AuthMiddleware) Claims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	token := m.TokenFromRequest(c)
	if token == "" {
		return nil
	}
	claims, err := m.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}
	return claims
}

// RequireAuth rejects requests without a valid session token
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.TokenFromRequest(c)
		if token == "" {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized").
				WithDetails("session token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
			if errors.Is(err, auth.ErrExpiredToken) {
				detail = dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Invalid token").WithDetails("token has expired")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Set(claimsKey, claims)
		c.Next()
	}
}
