package config

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	for _, k := range []string{"PORT", "STORAGE", "ADMIN_ID", "ADMIN_PASSWORD", "SEED", "DEFAULT_EXPIRY_HOURS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" || cfg.Storage != StorageSQLite || cfg.AdminID != "admin" || !cfg.Seed {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.DefaultExpiryHours != 6 {
		t.Errorf("expected 6 expiry hours, got %d", cfg.DefaultExpiryHours)
	}
	if err := bcrypt.CompareHashAndPassword(cfg.AdminPasswordHash, []byte("1234")); err != nil {
		t.Errorf("expected default admin password to verify: %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	chdirTemp(t)
	// godotenv never overrides variables that are already set
	for _, k := range []string{"STORAGE", "DEFAULT_EXPIRY_HOURS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	content := "STORAGE=memory\nDEFAULT_EXPIRY_HOURS=12\n"
	if err := os.WriteFile(filepath.Join(".", ".env"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Storage != StorageMemory || cfg.DefaultExpiryHours != 12 {
		t.Errorf("expected .env values, got storage=%s hours=%d", cfg.Storage, cfg.DefaultExpiryHours)
	}
}

func TestLoadRejectsNonPositiveExpiry(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DEFAULT_EXPIRY_HOURS", "-3")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative expiry")
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	if _, err := OpenStore(&Config{Storage: "mongo"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	s, err := OpenStore(&Config{Storage: StorageSQLite, SQLitePath: filepath.Join(t.TempDir(), "t.db")})
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	defer s.Close()
	if s.Engine() != "SQLite (GORM)" {
		t.Errorf("unexpected engine %q", s.Engine())
	}
}
