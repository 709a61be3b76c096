package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	DatabaseType string
	ListenAddr   string
	SchemaFile   string
}

// ParseFlags resolves configuration from CLI flags, falling back to the
// environment (with optional .env loading for local development)
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Best-effort .env load; absence is not an error
	_ = godotenv.Load()

	fs := flag.NewFlagSet("pgmaint", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database connection string")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	fs.StringVar(&cfg.ListenAddr, "l", "", "Listen address")
	fs.StringVar(&cfg.SchemaFile, "s", "", "Path for the GraphQL schema artifact")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DB_CONNECTION_STRING")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database connection string required (use -d or DB_CONNECTION_STRING env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, fmt.Errorf("unsupported database type %q (postgres or sqlite)", cfg.DatabaseType)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = os.Getenv("LISTEN_ADDR")
		if cfg.ListenAddr == "" {
			cfg.ListenAddr = "127.0.0.1:8080" // default
		}
	}

	if cfg.SchemaFile == "" {
		cfg.SchemaFile = os.Getenv("SCHEMA_FILE")
		if cfg.SchemaFile == "" {
			cfg.SchemaFile = "./pgmaint.graphql"
		}
	}

	return cfg, nil
}
