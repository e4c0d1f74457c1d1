package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Email   EmailConfig
	Booking BookingConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	Environment  string
	ServiceName  string
	ReadTimeout  int
	WriteTimeout int
	CORSOrigins  string // Comma-separated list of allowed origins
}

// RedisConfig holds the preference store configuration.
// Redis is optional; when the host is empty the service falls back
// to an in-memory preference store.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// EmailConfig holds the transactional email relay configuration.
// Provider selects the implementation: "emailjs" (default) or "ses".
type EmailConfig struct {
	Provider   string
	ServiceID  string // relay service identifier
	TemplateID string // relay template identifier
	PublicKey  string // relay public API key
	Recipient  string // booking requests are delivered here
	SESRegion  string
	SESFrom    string
}

// BookingConfig holds booking-channel configuration
type BookingConfig struct {
	WhatsAppPhone string // international format, digits only
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ServiceName:  serviceName,
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
			CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Email: EmailConfig{
			Provider:   getEnv("EMAIL_PROVIDER", "emailjs"),
			ServiceID:  getEnv("EMAIL_SERVICE_ID", ""),
			TemplateID: getEnv("EMAIL_TEMPLATE_ID", ""),
			PublicKey:  getEnv("EMAIL_PUBLIC_KEY", ""),
			Recipient:  getEnv("BOOKING_RECIPIENT_EMAIL", ""),
			SESRegion:  getEnv("SES_REGION", "eu-central-1"),
			SESFrom:    getEnv("SES_FROM_EMAIL", ""),
		},
		Booking: BookingConfig{
			WhatsAppPhone: getEnv("WHATSAPP_PHONE", "995514048822"),
		},
	}

	return cfg, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Enabled reports whether a Redis host was configured at all.
func (c *RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
