package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Configure(logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	os.Exit(m.Run())
}

type testApp struct {
	t      *testing.T
	cfg    *config.Config
	deps   *Dependencies
	router *gin.Engine
	cookie *http.Cookie
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Mode = config.ModeTest
	cfg.Server.StoragePath = t.TempDir()
	cfg.Server.BodyLimitMB = 5
	cfg.Server.BaseURL = "http://localhost:3001"
	cfg.Database.Driver = config.DriverSQLite
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TokenExpiration = "1h"
	cfg.JWT.CookieName = "token"
	cfg.RateLimit.LoginPerMinute = 1000
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()
	ctx := context.Background()

	database, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := Migrate(ctx, database, logger.Nop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	deps, err := BuildDependencies(ctx, cfg, database, logger.Nop())
	if err != nil {
		t.Fatalf("build dependencies: %v", err)
	}
	t.Cleanup(deps.Close)

	if _, err := deps.Services.Auth.EnsureAdmin(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}

	return &testApp{t: t, cfg: cfg, deps: deps, router: SetupRouter(cfg, deps)}
}

// send runs req through the router, attaching the session cookie if one is held
func (a *testApp) send(req *http.Request) *httptest.ResponseRecorder {
	a.t.Helper()
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	req.RemoteAddr = "192.0.2.1:4321"
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// do sends body as JSON; a nil body sends no body at all
func (a *testApp) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return a.send(req)
}

func (a *testApp) login() {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "admin123"})
	expectStatus(a.t, rec, http.StatusOK)
	a.cookie = findCookie(rec, a.cfg.JWT.CookieName)
	if a.cookie == nil {
		a.t.Fatal("login did not set the session cookie")
	}
}

type part struct {
	filename    string
	contentType string
	content     []byte
}

// multipartBody encodes fields and file parts as multipart/form-data
func multipartBody(t *testing.T, fields map[string]string, files map[string]part) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for field, p := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+p.filename+`"`)
		h.Set("Content-Type", p.contentType)
		pw, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := pw.Write(p.content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func (a *testApp) doMultipart(method, path string, fields map[string]string, files map[string]part) *httptest.ResponseRecorder {
	a.t.Helper()
	body, contentType := multipartBody(a.t, fields, files)
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	return a.send(req)
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, want, rec.Body.String())
	}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

type object = map[string]interface{}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) errorBody {
	t.Helper()
	expectStatus(t, rec, status)
	body := decode[errorBody](t, rec)
	if body.Success {
		t.Errorf("error response should have success=false: %s", rec.Body.String())
	}
	if message != "" && body.Message != message {
		t.Errorf("message = %q, want %q", body.Message, message)
	}
	return body
}

type createdBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID int64 `json:"id"`
	} `json:"data"`
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	rec := app.do(http.MethodGet, "/api/health", nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decode[object](t, rec); got["ok"] != true {
		t.Errorf("health body = %v", got)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" || rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Errorf("security headers missing: %v", rec.Header())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	app.do(http.MethodGet, "/api/health", nil)

	rec := app.do(http.MethodGet, "/metrics", nil)
	expectStatus(t, rec, http.StatusOK)
	if !bytes.Contains(rec.Body.Bytes(), []byte("/api/health")) {
		t.Errorf("metrics should include the health route:\n%s", rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	rec := app.do(http.MethodGet, "/api/nope", nil)
	expectStatus(t, rec, http.StatusNotFound)
}
