package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Hasura GraphQL endpoint
	Hasura HasuraConfig

	// Database configuration (delivery log)
	Database DatabaseConfig

	// Redis configuration (denylist, rate limiting)
	Redis RedisConfig

	// JWT configuration
	JWT JWTConfig

	// CORS policy
	CORS CORSConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Kafka notifications
	Kafka KafkaConfig

	// Logging
	LogLevel string
}

// HasuraConfig holds the GraphQL endpoint configuration
type HasuraConfig struct {
	EndpointURL string
	AdminSecret string
	Timeout     time.Duration
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	DSN      string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	DenylistEnabled  bool
	DenylistPrefix   string
	DenylistChecks   []string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// CORSConfig mirrors the allow-lists handed to gin-contrib/cors
type CORSConfig struct {
	Origins          []string
	AllowCredentials bool
	AllowMethods     []string
	AllowHeaders     []string
	MaxAge           time.Duration
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	DefaultRequests int           `json:"default_requests"`
	WebhookRequests int           `json:"webhook_requests"`
	TicketRequests  int           `json:"ticket_requests"`
	HealthRequests  int           `json:"health_requests"`
	WhitelistedIPs  []string      `json:"whitelisted_ips"`
}

// KafkaConfig holds the ticket notification producer configuration
type KafkaConfig struct {
	Enabled     bool
	Brokers     []string
	TicketTopic string
	RetryMax    int
	Timeout     time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		Hasura: HasuraConfig{
			EndpointURL: getEnv("HASURA_ENDPOINT_URL", "http://localhost:8080/v1/graphql"),
			AdminSecret: getEnv("HASURA_GRAPHQL_ADMIN_SECRET", ""),
			Timeout:     getDurationEnv("HASURA_TIMEOUT", 10*time.Second),
		},

		// Database configuration
		Database: DatabaseConfig{
			Enabled:  getBoolEnv("DELIVERY_LOG_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "duka"),
			User:     getEnv("DB_USER", "duka"),
			Password: getEnv("DB_PASSWORD", "duka"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		// Redis configuration
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},

		// JWT configuration
		JWT: JWTConfig{
			Secret:           getEnv("AUTHJWT_SECRET_KEY", ""),
			DenylistEnabled:  getBoolEnv("AUTHJWT_DENYLIST_ENABLED", true),
			DenylistPrefix:   getEnv("DENYLIST_PREFIX", ""),
			DenylistChecks:   getStringSliceEnv("AUTHJWT_DENYLIST_TOKEN_CHECKS", []string{"access", "refresh"}),
			AccessExpiresIn:  getDurationEnvSeconds("AUTHJWT_ACCESS_TOKEN_EXPIRES", 15*time.Minute),
			RefreshExpiresIn: getDurationEnvSeconds("AUTHJWT_REFRESH_TOKEN_EXPIRES", 30*24*time.Hour),
		},

		CORS: CORSConfig{
			Origins:          getStringSliceEnv("CORS_ORIGINS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
			AllowMethods:     getStringSliceEnv("CORS_ALLOW_METHODS", []string{"*"}),
			AllowHeaders:     getStringSliceEnv("CORS_ALLOW_HEADERS", []string{"*"}),
			MaxAge:           getDurationEnv("CORS_MAX_AGE", 12*time.Hour),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:         getBoolEnv("RATE_LIMIT_ENABLED", false),
			WindowDuration:  getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests: getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			WebhookRequests: getIntEnv("RATE_LIMIT_WEBHOOK_REQUESTS", 600),
			TicketRequests:  getIntEnv("RATE_LIMIT_TICKET_REQUESTS", 20),
			HealthRequests:  getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 120),
			WhitelistedIPs:  getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		Kafka: KafkaConfig{
			Enabled:     getBoolEnv("KAFKA_ENABLED", false),
			Brokers:     getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
			TicketTopic: getEnv("KAFKA_TICKET_TOPIC", "ticket-events"),
			RetryMax:    getIntEnv("KAFKA_RETRY_MAX", 3),
			Timeout:     getDurationEnv("KAFKA_TIMEOUT", 10*time.Second),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Database.DSN = buildDatabaseDSN(cfg.Database)
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// buildDatabaseDSN builds the database connection string
func buildDatabaseDSN(db DatabaseConfig) string {
	return "host=" + db.Host +
		" port=" + db.Port +
		" user=" + db.User +
		" password=" + db.Password +
		" dbname=" + db.Name +
		" sslmode=" + db.SSLMode
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getDurationEnvSeconds gets an environment variable as seconds (int) and converts to time.Duration
func getDurationEnvSeconds(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// ChecksDenylistFor reports whether tokens of tokenType are looked up in the denylist
func (j JWTConfig) ChecksDenylistFor(tokenType string) bool {
	if !j.DenylistEnabled {
		return false
	}
	for _, t := range j.DenylistChecks {
		if t == tokenType {
			return true
		}
	}
	return false
}
