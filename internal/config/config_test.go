package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Database.Driver != DriverSQLite || cfg.Database.SQLitePath != "data/app.db" {
		t.Errorf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.JWT.Secret != DevJWTSecret {
		t.Errorf("development mode should fall back to the dev secret, got %q", cfg.JWT.Secret)
	}
	if cfg.JWT.CookieName != "token" || cfg.JWT.TokenExpiration != "168h" {
		t.Errorf("unexpected jwt defaults: %+v", cfg.JWT)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
  cors_origins: ["http://a.example"]
database:
  driver: sqlite
  sqlite_path: /tmp/x.db
jwt:
  secret: from-file
`)
	t.Setenv("PORT", "7000")
	t.Setenv("CORS_ORIGINS", "http://b.example, http://c.example,")
	t.Setenv("RATE_LIMIT_LOGIN_PER_MINUTE", "3")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "7000" {
		t.Errorf("PORT alias should override the file, got %q", cfg.Server.Port)
	}
	want := []string{"http://b.example", "http://c.example"}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
	if cfg.RateLimit.LoginPerMinute != 3 {
		t.Errorf("LoginPerMinute = %d", cfg.RateLimit.LoginPerMinute)
	}
	if cfg.JWT.Secret != "from-file" {
		t.Errorf("Secret = %q", cfg.JWT.Secret)
	}
}

func TestDatabaseURLSelectsPostgres(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/pharmacy")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("driver = %q, want postgres", cfg.Database.Driver)
	}
	if got := cfg.GetPostgresConnectionString(); got != "postgres://u:p@db:5432/pharmacy" {
		t.Errorf("connection string = %q", got)
	}
}

func TestProductionRequiresSecret(t *testing.T) {
	testCases := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{name: "missing", secret: "", wantErr: true},
		{name: "dev secret", secret: DevJWTSecret, wantErr: true},
		{name: "real secret", secret: "s3cr3t-value", wantErr: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("SERVER_MODE", "production")
			t.Setenv("JWT_SECRET", tc.secret)

			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestInvalidValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for non-numeric DB_MAX_OPEN_CONNS")
	}
}
