package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginValidation(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	testCases := []struct {
		name   string
		body   interface{}
		status int
	}{
		{name: "missing password", body: map[string]string{"username": "admin"}, status: http.StatusBadRequest},
		{name: "empty body", body: map[string]string{}, status: http.StatusBadRequest},
		{name: "wrong password", body: map[string]string{"username": "admin", "password": "nope"}, status: http.StatusUnauthorized},
		{name: "unknown user", body: map[string]string{"username": "ghost", "password": "admin123"}, status: http.StatusUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.do(http.MethodPost, "/api/auth/login", tc.body)
			msg := ""
			if tc.status == http.StatusBadRequest {
				msg = "Username and password required"
			}
			expectError(t, rec, tc.status, msg)
			if findCookie(rec, "token") != nil {
				t.Error("failed login must not set a cookie")
			}
		})
	}
}

func TestLoginSessionLifecycle(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	rec := app.do(http.MethodGet, "/api/auth/me", nil)
	expectStatus(t, rec, http.StatusOK)
	if me := decode[object](t, rec); me["user"] != nil {
		t.Fatalf("anonymous me = %v, want null user", me)
	}

	rec = app.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "admin123"})
	expectStatus(t, rec, http.StatusOK)
	body := decode[object](t, rec)
	user, _ := body["user"].(map[string]interface{})
	if body["ok"] != true || user["username"] != "admin" {
		t.Fatalf("login body = %v", body)
	}
	cookie := findCookie(rec, "token")
	if cookie == nil || cookie.Value == "" {
		t.Fatal("login should set the token cookie")
	}
	if !cookie.HttpOnly || cookie.MaxAge <= 0 || cookie.Path != "/" {
		t.Errorf("unexpected cookie attributes %+v", cookie)
	}
	app.cookie = cookie

	rec = app.do(http.MethodGet, "/api/auth/me", nil)
	expectStatus(t, rec, http.StatusOK)
	me := decode[object](t, rec)
	if u, _ := me["user"].(map[string]interface{}); u["username"] != "admin" {
		t.Fatalf("me after login = %v", me)
	}

	rec = app.do(http.MethodPost, "/api/auth/logout", nil)
	expectStatus(t, rec, http.StatusOK)
	cleared := findCookie(rec, "token")
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Errorf("logout should expire the cookie, got %+v", cleared)
	}
}

func TestAdminGuard(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	rec := app.do(http.MethodGet, "/api/admin/files", nil)
	body := expectError(t, rec, http.StatusUnauthorized, "Unauthorized")
	if body.Error.Code != "AUTH_008" {
		t.Errorf("code = %q", body.Error.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/files", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-jwt"})
	expectError(t, app.send(req), http.StatusUnauthorized, "Invalid token")

	token, _, err := app.deps.JWTService.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/admin/files", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	expectStatus(t, app.send(req), http.StatusOK)

	for _, path := range []string{"/api/jobs", "/api/announcements", "/api/internships", "/api/did-you-know", "/api/lectures"} {
		rec := app.do(http.MethodPost, path, map[string]string{})
		expectError(t, rec, http.StatusUnauthorized, "Unauthorized")
	}
	for _, path := range []string{"/api/jobs/admin/all", "/api/announcements/admin/all", "/api/internships/admin/all"} {
		expectError(t, app.do(http.MethodGet, path, nil), http.StatusUnauthorized, "Unauthorized")
	}
}

func TestLoginRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimit.LoginPerMinute = 2
	app := newTestApp(t, cfg)

	creds := map[string]string{"username": "admin", "password": "wrong"}
	expectStatus(t, app.do(http.MethodPost, "/api/auth/login", creds), http.StatusUnauthorized)
	expectStatus(t, app.do(http.MethodPost, "/api/auth/login", creds), http.StatusUnauthorized)

	body := expectError(t, app.do(http.MethodPost, "/api/auth/login", creds), http.StatusTooManyRequests, "")
	if body.Error.Code != "RATE_001" {
		t.Errorf("code = %q", body.Error.Code)
	}

	// Other routes are not limited
	expectStatus(t, app.do(http.MethodGet, "/api/auth/me", nil), http.StatusOK)
}
