package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Business rules
	TaxRate decimal.Decimal

	// Attachments
	UploadMaxBytes         int64
	UploadAllowedMimeTypes []string
	Storage                StorageConfig

	// Login rate limiting; RedisURL empty means an in-memory store.
	RedisURL       string
	LoginRateLimit string

	CORSAllowedOrigins []string

	// Seed admin, created at startup when both are set.
	AdminEmail    string
	AdminPassword string
}

// StorageConfig selects and configures the attachment blob store.
type StorageConfig struct {
	Driver       string
	LocalDir     string
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "visa-office-app")
	viper.SetDefault("TAX_RATE", "0.19")
	viper.SetDefault("UPLOAD_MAX_BYTES", 10*1024*1024)
	viper.SetDefault("UPLOAD_ALLOWED_MIMETYPES", "application/pdf,image/jpeg,image/jpg,image/png")
	viper.SetDefault("STORAGE_DRIVER", StorageDriverLocal)
	viper.SetDefault("STORAGE_LOCAL_DIR", "./uploads")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_ACCESS_KEY", "")
	viper.SetDefault("S3_SECRET_KEY", "")
	viper.SetDefault("S3_USE_PATH_STYLE", true)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "visa-office-app"
	}

	taxRateStr := viper.GetString("TAX_RATE")
	taxRate, err := decimal.NewFromString(taxRateStr)
	if err != nil || taxRate.IsNegative() {
		taxRate = decimal.RequireFromString("0.19")
		log.Printf("Warning: Invalid value for TAX_RATE ('%s'). Defaulting to %s.\n", taxRateStr, taxRate.String())
	}
	cfg.TaxRate = taxRate

	cfg.UploadMaxBytes = viper.GetInt64("UPLOAD_MAX_BYTES")
	if cfg.UploadMaxBytes <= 0 {
		cfg.UploadMaxBytes = 10 * 1024 * 1024
	}
	cfg.UploadAllowedMimeTypes = splitList(viper.GetString("UPLOAD_ALLOWED_MIMETYPES"))

	cfg.Storage = StorageConfig{
		Driver:       strings.ToLower(viper.GetString("STORAGE_DRIVER")),
		LocalDir:     viper.GetString("STORAGE_LOCAL_DIR"),
		Endpoint:     viper.GetString("S3_ENDPOINT"),
		Region:       viper.GetString("S3_REGION"),
		Bucket:       viper.GetString("S3_BUCKET"),
		AccessKey:    viper.GetString("S3_ACCESS_KEY"),
		SecretKey:    viper.GetString("S3_SECRET_KEY"),
		UsePathStyle: viper.GetBool("S3_USE_PATH_STYLE"),
	}
	if cfg.Storage.Driver != StorageDriverS3 {
		cfg.Storage.Driver = StorageDriverLocal
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
