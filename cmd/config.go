package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DBMaxOpenConns int
	DBMaxIdleConns int

	FrontendURL string
	LogLevel    string
	LogFile     string

	SeedProducts bool

	OrphanCleanupSchedule string
	OrderStatsSchedule    string
}

// LoadConfig reads the configuration from the environment, applying defaults for unset values.
func LoadConfig() (Config, error) {
	cfg := Config{
		HTTPPort:              getenvDefault("HTTP_PORT", "5000"),
		DBHost:                getenvDefault("DB_HOST", "localhost"),
		DBPort:                getenvDefault("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             getenvDefault("DB_SSLMODE", "disable"),
		FrontendURL:           os.Getenv("FRONTEND_URL"),
		LogLevel:              getenvDefault("LOG_LEVEL", "info"),
		LogFile:               os.Getenv("LOG_FILE"),
		OrphanCleanupSchedule: getenvDefault("ORPHAN_CLEANUP_SCHEDULE", "0 * * * * *"),
		OrderStatsSchedule:    getenvDefault("ORDER_STATS_SCHEDULE", "*/30 * * * * *"),
	}

	var err error
	if cfg.DBMaxOpenConns, err = getenvInt("DB_MAX_OPEN_CONNS", 20); err != nil {
		return Config{}, err
	}
	if cfg.DBMaxIdleConns, err = getenvInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return Config{}, err
	}
	if cfg.SeedProducts, err = getenvBool("SEED_PRODUCTS", false); err != nil {
		return Config{}, err
	}

	if cfg.DBUser == "" || cfg.DBName == "" {
		return Config{}, fmt.Errorf("DB_USER and DB_NAME must be set")
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// AllowOrigins returns the CORS origins; FRONTEND_URL may hold a comma separated list.
func (c Config) AllowOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.FrontendURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
