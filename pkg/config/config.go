package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AI provider names
const (
	ProviderGemini     = "gemini"
	ProviderAssemblyAI = "assemblyai"
)

// Database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Gateway  GatewayConfig
	Ingest   IngestConfig
	Storage  StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int           `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	TokenCacheTTL   time.Duration `envconfig:"TOKEN_CACHE_TTL" default:"30s"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver      string `envconfig:"DB_DRIVER" default:"sqlite"`
	Path        string `envconfig:"DB_PATH" default:"./agent.db"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_analyzer"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"2"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// AIConfig holds credentials and model names for the AI provider
type AIConfig struct {
	Provider       string        `envconfig:"AI_PROVIDER" default:"gemini"`
	GeminiAPIKey   string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel    string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	AssemblyAIKey  string        `envconfig:"ASSEMBLYAI_API_KEY"`
	GroqAPIKey     string        `envconfig:"GROQ_API_KEY"`
	GroqBaseURL    string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	GroqModel      string        `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
	RequestTimeout time.Duration `envconfig:"AI_REQUEST_TIMEOUT" default:"120s"`
}

// GatewayConfig controls the wait-for-ready poll loop
type GatewayConfig struct {
	PollInterval time.Duration `envconfig:"GATEWAY_POLL_INTERVAL" default:"2s"`
	// PollMaxAttempts of 0 polls until the request context ends.
	PollMaxAttempts uint64 `envconfig:"GATEWAY_POLL_MAX_ATTEMPTS" default:"150"`
}

// IngestConfig holds meeting ingestion settings
type IngestConfig struct {
	TempDir          string        `envconfig:"INGEST_TEMP_DIR"`
	UnassignedPolicy string        `envconfig:"UNASSIGNED_TASK_POLICY" default:"null"`
	MaxUploadSize    string        `envconfig:"INGEST_MAX_UPLOAD_SIZE" default:"200M"`
	Timeout          time.Duration `envconfig:"INGEST_TIMEOUT" default:"10m"`
}

// StorageConfig holds object storage configuration for the audio archive
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-audio"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	sections := []interface{}{
		&config.Server,
		&config.Database,
		&config.AI,
		&config.Gateway,
		&config.Ingest,
		&config.Storage,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. A missing AI key is not an error:
// the service starts and AI calls fail until a key is provided.
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case ProviderGemini, ProviderAssemblyAI:
	default:
		return fmt.Errorf("AI_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderAssemblyAI, c.AI.Provider)
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.Database.Driver)
	}
	switch c.Ingest.UnassignedPolicy {
	case "null", "skip":
	default:
		return fmt.Errorf("UNASSIGNED_TASK_POLICY must be \"null\" or \"skip\", got %q", c.Ingest.UnassignedPolicy)
	}
	if c.Gateway.PollInterval <= 0 {
		return fmt.Errorf("GATEWAY_POLL_INTERVAL must be positive")
	}
	return nil
}

// AIKeyConfigured reports whether the selected provider has its credentials
func (c *Config) AIKeyConfigured() bool {
	switch c.AI.Provider {
	case ProviderAssemblyAI:
		return c.AI.AssemblyAIKey != "" && c.AI.GroqAPIKey != ""
	default:
		return c.AI.GeminiAPIKey != ""
	}
}

// GetDatabaseDSN returns the database connection string for the configured driver
func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Database.Host,
			c.Database.Port,
			c.Database.User,
			c.Database.Password,
			c.Database.Name,
			c.Database.SSLMode,
		)
	}
	return c.Database.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
