package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/nandomoreu/mercadillo/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL             string
	VerificationCodeExpiry time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:             getEnv("APP_BASE_URL", "http://localhost:8080"),
		VerificationCodeExpiry: time.Hour * time.Duration(getEnvAsInt("VERIFICATION_CODE_EXPIRY_HOURS", 24)),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetVerificationCodeExpiry returns the expiry duration for verification codes.
func (c *Config) GetVerificationCodeExpiry() time.Duration {
	return c.VerificationCodeExpiry
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
