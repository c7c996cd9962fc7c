package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full runtime configuration, read from the environment.
// There are deliberately no fallback values for JWTSecret or DatabaseDSN:
// the service fails to start rather than run with a known-weak secret.
type Config struct {
	Env  string `env:"APP_ENV" env-default:"local"`
	Addr string `env:"HTTP_ADDR" env-default:":8080"`

	DatabaseDSN string `env:"DB_DSN"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`

	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" env-default:"168h"`
	BcryptCost int           `env:"BCRYPT_COST" env-default:"12"`

	MaxFileSize      int64    `env:"MAX_FILE_SIZE" env-default:"10485760"`
	AllowedFileTypes []string `env:"ALLOWED_FILE_TYPES" env-default:"pdf,docx,doc,jpg,jpeg,png,webp"`

	// Per-route-class budgets: auth and upload endpoints are costlier and
	// more abuse-prone, so they get tighter limits than general traffic.
	GeneralRateMax   int           `env:"RATE_LIMIT_GENERAL" env-default:"1000"`
	AuthRateMax      int           `env:"RATE_LIMIT_AUTH" env-default:"50"`
	UploadRateMax    int           `env:"RATE_LIMIT_UPLOAD" env-default:"100"`
	RateWindow       time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"15m"`
	UploadRateWindow time.Duration `env:"RATE_LIMIT_UPLOAD_WINDOW" env-default:"1m"`

	StorageBackend string `env:"STORAGE_BACKEND" env-default:"local"`
	UploadBaseDir  string `env:"UPLOAD_BASE" env-default:"uploads"`

	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET" env-default:"document-vault"`
	S3Region    string `env:"S3_REGION" env-default:"us-east-1"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
}

func loadConfig() (*Config, error) {
	loadDotEnv()
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set; refusing to start without a signing secret")
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set; a Postgres DSN is required")
	}
	switch cfg.StorageBackend {
	case "local", "s3":
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND must be local or s3, got %q", cfg.StorageBackend)
	}
	if cfg.StorageBackend == "s3" && (cfg.S3AccessKey == "" || cfg.S3SecretKey == "") {
		return nil, fmt.Errorf("S3 storage requires S3_ACCESS_KEY and S3_SECRET_KEY")
	}
	return cfg, nil
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
