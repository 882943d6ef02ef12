package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/meur/blueprintlabs/internal/util"
)

// Catalog source kinds
const (
	SourceFile   = "file"
	SourceHTTP   = "http"
	SourceSQLite = "sqlite"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Preview PreviewConfig
	Filter  FilterConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port        string
	StaticDir   string // Holds images/ for previews
	FrontendDir string
	CORSOrigins []string
}

type CatalogConfig struct {
	Source        string
	CatalogPath   string
	ChangelogPath string
	CatalogURL    string
	ChangelogURL  string
	DBPath        string
}

type PreviewConfig struct {
	Extensions []string
	// BaseURL probes images over HTTP instead of the static dir when set
	BaseURL string
}

type FilterConfig struct {
	SearchDelay time.Duration
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			StaticDir:   getEnv("STATIC_DIR", "./public"),
			FrontendDir: getEnv("FRONTEND_DIR", "../frontend/dist"),
			CORSOrigins: util.ParseCommaSeparated(getEnv("CORS_ORIGINS", "http://localhost:*")),
		},
		Catalog: CatalogConfig{
			Source:        strings.ToLower(getEnv("CATALOG_SOURCE", SourceFile)),
			CatalogPath:   getEnv("CATALOG_PATH", "./public/weapons.json"),
			ChangelogPath: getEnv("CHANGELOG_PATH", "./public/changelog.json"),
			CatalogURL:    getEnv("CATALOG_URL", ""),
			ChangelogURL:  getEnv("CHANGELOG_URL", ""),
			DBPath:        getEnv("DB_PATH", "./blueprints.db"),
		},
		Preview: PreviewConfig{
			Extensions: util.ParseCommaSeparated(getEnv("IMAGE_EXTENSIONS", ".jpg,.jpeg,.png")),
			BaseURL:    getEnv("IMAGE_BASE_URL", ""),
		},
		Filter: FilterConfig{
			SearchDelay: time.Duration(getEnvInt("SEARCH_DEBOUNCE_MS", 300)) * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH is required for the file source")
		}
	case SourceHTTP:
		if c.Catalog.CatalogURL == "" {
			return fmt.Errorf("CATALOG_URL is required for the http source")
		}
	case SourceSQLite:
		if c.Catalog.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite source")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}
	if len(c.Preview.Extensions) == 0 {
		return fmt.Errorf("IMAGE_EXTENSIONS must list at least one extension")
	}
	for _, ext := range c.Preview.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("image extension %q must start with a dot", ext)
		}
	}
	if c.Filter.SearchDelay < 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE_MS must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
