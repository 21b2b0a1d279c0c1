package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Session tokens.
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	StripeKey string `mapstructure:"STRIPE_SECRET_KEY"`

	// Redis configuration. An empty address disables the catalog cache.
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int           `mapstructure:"REDIS_CACHE_DB"`
	CatalogCacheTTL time.Duration `mapstructure:"CATALOG_CACHE_TTL"`

	// Read policies for endpoints that only require a valid token.
	UserListAdminOnly    bool `mapstructure:"USER_LIST_ADMIN_ONLY"`
	BookingReadOwnerOnly bool `mapstructure:"BOOKING_READ_OWNER_ONLY"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "doctors_portal")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "48h")
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("CATALOG_CACHE_TTL", "5m")
	v.SetDefault("USER_LIST_ADMIN_ONLY", false)
	v.SetDefault("BOOKING_READ_OWNER_ONLY", false)
	v.SetDefault("CORS_ORIGINS", []string{"*"})
}

// LoadConfig reads .env (if any), config.yaml from "." or "./config", and the
// environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
