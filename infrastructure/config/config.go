package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion string

	// Storage
	ImagesBucket string
	VideosBucket string

	// DynamoDB tables
	PreferencesTable string
	FamilyTable      string
	MomIndexName     string
	DadIndexName     string

	// Identity provider
	UserPoolClientID string

	// Managed renderer
	RenderFunctionName string
	RenderServeURL     string
	RenderComposition  string

	// CORS origin allowlist
	AllowedOrigins []string

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "eu-central-1"),

		ImagesBucket: getEnv("IMAGES_BUCKET", "muzac-images"),
		VideosBucket: getEnv("VIDEOS_BUCKET", "muzac-videos"),

		PreferencesTable: getEnv("USER_PREFERENCES_TABLE", "muzac-user-preferences"),
		FamilyTable:      getEnv("FAMILY_TABLE", "muzac-family"),
		MomIndexName:     getEnv("MOM_INDEX_NAME", "MomIndex"),
		DadIndexName:     getEnv("DAD_INDEX_NAME", "DadIndex"),

		UserPoolClientID: getEnv("USER_POOL_CLIENT_ID", ""),

		RenderFunctionName: getEnv("REMOTION_FUNCTION_NAME", ""),
		RenderServeURL:     getEnv("REMOTION_SERVE_URL", ""),
		RenderComposition:  getEnv("REMOTION_COMPOSITION", "TimelapseVideo"),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"https://muzac.com.tr",
			"https://www.muzac.com.tr",
			"http://localhost:3000",
		}),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS must not be empty")
	}
	if c.Environment == "production" {
		if c.ImagesBucket == "" {
			return fmt.Errorf("IMAGES_BUCKET is required in production")
		}
		if c.PreferencesTable == "" {
			return fmt.Errorf("USER_PREFERENCES_TABLE is required in production")
		}
		if c.UserPoolClientID == "" {
			return fmt.Errorf("USER_POOL_CLIENT_ID is required in production")
		}
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvList gets a comma-separated environment variable with a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
