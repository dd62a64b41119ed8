package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool
	LogLevel      string
	ActorID       string // recorded in audit fields for writes made by this process
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	return loadFrom(viper.New()), nil
}

func loadFrom(v *viper.Viper) *Config {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("RUN_MIGRATIONS", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ACTOR_ID", "system")

	// Defaults can then be overridden by actual environment variables.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		ActorID:       v.GetString("ACTOR_ID"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.ActorID == "" {
		cfg.ActorID = "system"
		log.Printf("Warning: ACTOR_ID is empty. Defaulting to %s.\n", cfg.ActorID)
	}

	return cfg
}
