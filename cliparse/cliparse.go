package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Store type names accepted by -t / STORE_TYPE.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreS3       = "s3"
)

type Config struct {
	Port         int
	StoreType    string
	DatabaseURL  string
	S3ConfigPath string
}

// ParseFlags reads configuration from CLI flags with environment
// fallbacks and validates the combination.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("jello", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "t", "", "Board store type (sqlite, postgres or s3)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for the sqlite/postgres store")
	fs.StringVar(&cfg.S3ConfigPath, "s3-config", "", "Path to the S3 store YAML config")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
	}
	if cfg.StoreType == "" {
		cfg.StoreType = StoreSQLite
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.S3ConfigPath == "" {
		cfg.S3ConfigPath = os.Getenv("S3_CONFIG")
	}

	switch cfg.StoreType {
	case StoreSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "file:jello.db"
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("postgres store requires a database URL (use -d or DATABASE_URL env)")
		}
	case StoreS3:
		if cfg.S3ConfigPath == "" {
			return Config{}, errors.New("s3 store requires a config file (use -s3-config or S3_CONFIG env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	return cfg, nil
}
