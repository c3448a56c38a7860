package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"foodshare-api/store"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret used to sign admin tokens, read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "foodshare_super_secret_2024"))

// Storage backends selectable with STORAGE
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
	StorageFile     = "file"
)

type Config struct {
	Port               string
	Storage            string
	SQLitePath         string
	DatabaseURL        string
	DataFile           string
	AdminID            string
	AdminPasswordHash  []byte
	Seed               bool
	DefaultExpiryHours int
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", string(JWTSecret)))

	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "1234")), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Storage:            getEnv("STORAGE", StorageSQLite),
		SQLitePath:         getEnv("SQLITE_PATH", "foodshare.db"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DataFile:           getEnv("DATA_FILE", "db.json"),
		AdminID:            getEnv("ADMIN_ID", "admin"),
		AdminPasswordHash:  hash,
		Seed:               getEnvBool("SEED", true),
		DefaultExpiryHours: getEnvInt("DEFAULT_EXPIRY_HOURS", 6),
	}
	if cfg.DefaultExpiryHours <= 0 {
		return nil, fmt.Errorf("DEFAULT_EXPIRY_HOURS must be positive, got %d", cfg.DefaultExpiryHours)
	}
	return cfg, nil
}

// DefaultExpiry is how long a listing stays fresh when the donor gives no expiry
func (c *Config) DefaultExpiry() time.Duration {
	return time.Duration(c.DefaultExpiryHours) * time.Hour
}

// OpenStore connects the backend named by cfg.Storage.
func OpenStore(cfg *Config) (store.Store, error) {
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	switch cfg.Storage {
	case StorageSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		log.Printf("✅ SQLite database %s connected", cfg.SQLitePath)
		return store.NewGormStore(db, "SQLite (GORM)")

	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required for postgres storage")
		}
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		log.Println("✅ PostgreSQL database connected")
		return store.NewGormStore(db, "PostgreSQL (GORM)")

	case StorageFile:
		s, err := store.OpenFileStore(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		log.Printf("📂 Local JSON store %s loaded", cfg.DataFile)
		return s, nil

	case StorageMemory:
		log.Println("⚠️ In-memory storage: data is lost on restart")
		return store.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown STORAGE %q (want sqlite, postgres, memory or file)", cfg.Storage)
}
