package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backend identifiers
const (
	StoreBackendMemory   = "memory"
	StoreBackendLevelDB  = "leveldb"
	StoreBackendPostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	APIKey      string // API key for authentication

	StoreBackend string // "memory", "leveldb" or "postgres"
	DataDir      string // LevelDB data directory

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Tick clock mapping: one tick per TickInterval from GenesisUnixMS.
	TickInterval  time.Duration
	GenesisUnixMS int64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		Version:      getEnv("VERSION", "dev"),
		APIKey:       getEnv("API_KEY", ""),
		StoreBackend: getEnv("STORE_BACKEND", StoreBackendMemory),
		DataDir:      getEnv("DATA_DIR", "data"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", "forecastledger"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	intervalStr := getEnv("TICK_INTERVAL_MS", strconv.Itoa(DefaultTickIntervalMS))
	intervalMS, err := strconv.Atoi(intervalStr)
	if err != nil || intervalMS <= 0 {
		return nil, fmt.Errorf("invalid TICK_INTERVAL_MS value %q", intervalStr)
	}
	cfg.TickInterval = time.Duration(intervalMS) * time.Millisecond

	genesisStr := getEnv("GENESIS_UNIX_MS", "0")
	genesis, err := strconv.ParseInt(genesisStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GENESIS_UNIX_MS value: %w", err)
	}
	cfg.GenesisUnixMS = genesis

	switch cfg.StoreBackend {
	case StoreBackendMemory, StoreBackendLevelDB, StoreBackendPostgres:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND value %q", cfg.StoreBackend)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
