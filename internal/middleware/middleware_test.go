package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/auth"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Configure(logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	os.Exit(m.Run())
}

func TestTokenBucket(t *testing.T) {
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewTokenBucket(3, 3)
	l.now = func() time.Time { return clock }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if ok, _ := l.Allow(ctx, "login:1.2.3.4"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if ok, _ := l.Allow(ctx, "login:1.2.3.4"); ok {
		t.Fatal("fourth request should be limited")
	}
	if ok, _ := l.Allow(ctx, "login:5.6.7.8"); !ok {
		t.Fatal("keys are limited independently")
	}

	clock = clock.Add(30 * time.Second)
	if ok, _ := l.Allow(ctx, "login:1.2.3.4"); !ok {
		t.Fatal("one token should be back after half a minute")
	}
	if ok, _ := l.Allow(ctx, "login:1.2.3.4"); ok {
		t.Fatal("only one token should have been refilled")
	}

	clock = clock.Add(10 * time.Minute)
	for i := 0; i < 3; i++ {
		if ok, _ := l.Allow(ctx, "login:1.2.3.4"); !ok {
			t.Fatalf("refill is capped at capacity, request %d denied", i+1)
		}
	}
	if ok, _ := l.Allow(ctx, "login:1.2.3.4"); ok {
		t.Fatal("refill should not exceed capacity")
	}
}

func TestTokenBucketKeepsPartialRefill(t *testing.T) {
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewTokenBucket(2, 3)
	l.now = func() time.Time { return clock }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if ok, _ := l.Allow(ctx, "a"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	clock = clock.Add(30 * time.Second)
	if ok, _ := l.Allow(ctx, "a"); !ok {
		t.Fatal("a token should be back after 30s")
	}
	clock = clock.Add(15 * time.Second)
	if ok, _ := l.Allow(ctx, "a"); !ok {
		t.Fatal("half a token left over plus 15s of refill should allow a request")
	}
	if ok, _ := l.Allow(ctx, "a"); ok {
		t.Fatal("bucket should be empty")
	}
}

func TestTokenBucketEvictsIdleKeys(t *testing.T) {
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewTokenBucket(3, 3)
	l.now = func() time.Time { return clock }
	ctx := context.Background()

	l.Allow(ctx, "login:1.1.1.1")
	l.Allow(ctx, "login:2.2.2.2")
	if n := l.Len(); n != 2 {
		t.Fatalf("tracked keys = %d, want 2", n)
	}

	clock = clock.Add(2 * time.Minute)
	l.Allow(ctx, "login:3.3.3.3")
	if n := l.Len(); n != 1 {
		t.Errorf("idle keys should be dropped, tracked = %d", n)
	}
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimitFailsOpen(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(failingLimiter{}, "login"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func errorResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return body
}

func TestHandleAPIError(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{
			name:    "custom not found",
			err:     apperrors.NewResourceNotFoundError("Question not found"),
			status:  http.StatusNotFound,
			code:    dto.ErrorCodeResourceNotFound,
			message: "Question not found",
		},
		{
			name:    "wrapped sentinel",
			err:     fmt.Errorf("login: %w", apperrors.ErrInvalidCredentials),
			status:  http.StatusUnauthorized,
			code:    dto.ErrorCodeInvalidCredentials,
			message: "Invalid credentials",
		},
		{
			name:    "bad request",
			err:     apperrors.NewBadRequestError("invalid id: abc"),
			status:  http.StatusBadRequest,
			code:    dto.ErrorCodeBadRequest,
			message: "invalid id: abc",
		},
		{
			name:    "rate limited",
			err:     apperrors.ErrRateLimited,
			status:  http.StatusTooManyRequests,
			code:    dto.ErrorCodeTooManyRequests,
			message: "Too many requests",
		},
		{
			name:    "body too large",
			err:     &http.MaxBytesError{Limit: 10},
			status:  http.StatusRequestEntityTooLarge,
			code:    dto.ErrorCodeFileTooLarge,
			message: "Request body too large",
		},
		{
			name:    "unknown error",
			err:     errors.New("disk on fire"),
			status:  http.StatusInternalServerError,
			code:    dto.ErrorCodeInternalServer,
			message: "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tc.err)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if !c.IsAborted() {
				t.Error("context should be aborted")
			}
			body := errorResponse(t, rec)
			if body.Success || body.Error.Code != tc.code || body.Message != tc.message {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestHandleAPIErrorHidesDebugInfoInProduction(t *testing.T) {
	SetDebugInfo(false)
	defer SetDebugInfo(true)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, errors.New("secret table name"))

	if strings.Contains(rec.Body.String(), "secret table name") {
		t.Errorf("internal error leaked: %s", rec.Body.String())
	}
}

func TestHandleMissingFields(t *testing.T) {
	type body struct {
		Title string `json:"title" binding:"required"`
	}
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var b body
		if err := c.ShouldBindJSON(&b); err != nil {
			HandleMissingFields(c, err, "Title is required")
			return
		}
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := errorResponse(t, rec); got.Message != "Title is required" || got.Error.Code != dto.ErrorCodeValidationFailed {
		t.Errorf("body = %+v", got)
	}
}

func TestRequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", TokenExp: time.Hour})
	m := NewAuthMiddleware(jwtService, "token")

	r := gin.New()
	r.GET("/private", m.RequireAuth(), func(c *gin.Context) {
		claims := m.Claims(c)
		c.String(http.StatusOK, claims.Username)
	})

	token, _, err := jwtService.GenerateToken(7, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID:   7,
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	testCases := []struct {
		name   string
		setup  func(*http.Request)
		status int
		code   dto.ErrorCode
	}{
		{name: "no credentials", setup: func(*http.Request) {}, status: http.StatusUnauthorized, code: dto.ErrorCodeUnauthorized},
		{name: "cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: token}) }, status: http.StatusOK},
		{name: "bearer header", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, status: http.StatusOK},
		{name: "garbage", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: "abc"}) }, status: http.StatusUnauthorized, code: dto.ErrorCodeInvalidToken},
		{name: "expired", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: stale}) }, status: http.StatusUnauthorized, code: dto.ErrorCodeExpiredToken},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.status, rec.Body.String())
			}
			if tc.status == http.StatusOK {
				if rec.Body.String() != "admin" {
					t.Errorf("claims username = %q", rec.Body.String())
				}
				return
			}
			if got := errorResponse(t, rec); got.Error.Code != tc.code {
				t.Errorf("code = %q, want %q", got.Error.Code, tc.code)
			}
		})
	}
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8, 64))
	r.POST("/", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			HandleBindingError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	send := func(contentType string, size int) int {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", size)))
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := send("application/json", 8); got != http.StatusNoContent {
		t.Errorf("body at the limit: %d", got)
	}
	if got := send("application/json", 9); got != http.StatusRequestEntityTooLarge {
		t.Errorf("json over the limit: %d", got)
	}
	if got := send("multipart/form-data; boundary=x", 32); got != http.StatusNoContent {
		t.Errorf("multipart under its own cap: %d", got)
	}
	if got := send("multipart/form-data; boundary=x", 65); got != http.StatusRequestEntityTooLarge {
		t.Errorf("multipart over its cap: %d", got)
	}
}

func TestSecurityHeaders(t *testing.T) {
	for _, production := range []bool{false, true} {
		r := gin.New()
		r.Use(SecurityHeaders(production))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		h := rec.Header()
		if h.Get("X-Content-Type-Options") != "nosniff" || h.Get("X-Frame-Options") != "DENY" ||
			h.Get("Referrer-Policy") != "strict-origin-when-cross-origin" {
			t.Errorf("production=%v: headers = %v", production, h)
		}
		if hsts := h.Get("Strict-Transport-Security"); (hsts != "") != production {
			t.Errorf("production=%v: Strict-Transport-Security = %q", production, hsts)
		}
	}
}
