package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Access token config
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Refresh token config. The refresh secret is independent of the access
	// secret so compromise of one does not affect the other.
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration

	// OTP validity window for account activation.
	OTPExpiryDuration time.Duration

	// Outbound mail (OTP delivery)
	MailerAPIKey  string
	MailerFrom    string
	MailerBaseURL string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	viper.SetDefault("JWT_ISSUER", "blog-api")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "default_insecure_refresh_secret_please_change_this_!@#$")
	viper.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	viper.SetDefault("OTP_EXPIRY", "10m")
	viper.SetDefault("MAILER_API_KEY", "")
	viper.SetDefault("MAILER_FROM", "no-reply@blogapi.local")
	viper.SetDefault("MAILER_BASE_URL", "https://api.resend.com")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	cfg.JWTExpiryDuration = parseDurationOr(viper.GetString("JWT_ACCESS_EXPIRY"), 15*time.Minute, "JWT_ACCESS_EXPIRY")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "default_insecure_refresh_secret_please_change_this_!@#$" {
		log.Println("Warning: REFRESH_TOKEN_SECRET not set. Using default insecure secret. THIS IS NOT FOR PRODUCTION.")
	}
	cfg.RefreshTokenExpiryDuration = parseDurationOr(viper.GetString("JWT_REFRESH_EXPIRY"), 7*24*time.Hour, "JWT_REFRESH_EXPIRY")

	cfg.OTPExpiryDuration = parseDurationOr(viper.GetString("OTP_EXPIRY"), 10*time.Minute, "OTP_EXPIRY")

	cfg.MailerAPIKey = viper.GetString("MAILER_API_KEY")
	cfg.MailerFrom = viper.GetString("MAILER_FROM")
	cfg.MailerBaseURL = viper.GetString("MAILER_BASE_URL")
	if cfg.MailerAPIKey == "" {
		log.Println("Warning: MAILER_API_KEY not set. OTP emails will be logged instead of sent.")
	}

	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")

	return cfg, nil
}

func parseDurationOr(value string, fallback time.Duration, name string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		if value != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", name, value, fallback)
		}
		return fallback
	}
	return d
}
