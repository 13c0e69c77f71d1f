// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("FRONTEND_URL", "https://votes.example.com")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseMongo {
		t.Errorf("expected default database type mongo, got %s", cfg.DatabaseType)
	}
	if cfg.FrontendURL != "https://votes.example.com" {
		t.Errorf("expected frontend URL from env, got %s", cfg.FrontendURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseURL != "mongodb://localhost:27017" {
		t.Errorf("expected MONGO_URI fallback, got %s", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != DefaultDatabaseName {
		t.Errorf("expected default database name, got %s", cfg.DatabaseName)
	}
	if cfg.FrontendURL != DefaultFrontendURL {
		t.Errorf("expected default frontend URL, got %s", cfg.FrontendURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "mongo")

	cfg, err := ParseFlags([]string{"-p", "8080", "-t", "sqlite", "-d", "file:test.db", "-frontend-url", "http://localhost:3000"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("CLI should override env: expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Errorf("expected frontend URL from flag, got %s", cfg.FrontendURL)
	}
}

func TestParseFlags_SQLiteDefaultPath(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGO_URI", "")

	cfg, err := ParseFlags([]string{"-t", "sqlite"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != DefaultSQLitePath {
		t.Errorf("expected %s, got %s", DefaultSQLitePath, cfg.DatabaseURL)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database URL", map[string]string{"DATABASE_URL": "", "MONGO_URI": ""}, nil},
		{"invalid PORT env", map[string]string{"PORT": "abc", "DATABASE_URL": "x"}, nil},
		{"port out of range", map[string]string{"DATABASE_URL": "x"}, []string{"-p", "70000"}},
		{"unknown database type", map[string]string{"DATABASE_URL": "x"}, []string{"-t", "redis"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("DATABASE_TYPE", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("FRONTEND_URL=http://from-dotenv:8082\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FRONTEND_URL", "")
	os.Unsetenv("FRONTEND_URL")

	if err := LoadEnvFile(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}

	if got := os.Getenv("FRONTEND_URL"); got != "http://from-dotenv:8082" {
		t.Errorf("expected value from .env, got %q", got)
	}
}
