package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"*"`
		PublicDir   string `env:"PUBLIC_DIR"   envDefault:"./public"`
	}
	Catalog struct {
		Source string `env:"CATALOG_SOURCE" envDefault:"file"` // "file" or "postgres"
		File   string `env:"CATALOG_FILE"   envDefault:"./data/players.json"`
	}
	Match struct {
		HistoryLimit      int `env:"HISTORY_LIMIT"       envDefault:"20"`
		DefaultRosterSize int `env:"DEFAULT_ROSTER_SIZE" envDefault:"11"`
	}
	DB struct {
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"scorebook_db"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
	}
}

// UsesDatabase reports whether the catalog lives in postgres.
func (c *Config) UsesDatabase() bool {
	return c.Catalog.Source == "postgres"
}

// Validate checks the values the engine cannot run without.
func (c *Config) Validate() error {
	var errs []error
	switch c.Catalog.Source {
	case "file", "postgres":
	default:
		errs = append(errs, fmt.Errorf("CATALOG_SOURCE must be file or postgres, got %q", c.Catalog.Source))
	}
	if c.Catalog.Source == "file" && strings.TrimSpace(c.Catalog.File) == "" {
		errs = append(errs, errors.New("CATALOG_FILE is required when CATALOG_SOURCE=file"))
	}
	if c.Match.HistoryLimit < 1 {
		errs = append(errs, fmt.Errorf("HISTORY_LIMIT must be at least 1, got %d", c.Match.HistoryLimit))
	}
	if c.Match.DefaultRosterSize < 2 {
		errs = append(errs, fmt.Errorf("DEFAULT_ROSTER_SIZE must be at least 2, got %d", c.Match.DefaultRosterSize))
	}
	return errors.Join(errs...)
}

// Global DB instance, set by Initialize when the catalog is postgres-backed.
var DB *gorm.DB

// Global AppConfig instance, accessible after LoadConfig() is called via Initialize.
var appConfig *Config
var once sync.Once // Used for singleton pattern to load config only once

// LoadConfig loads configuration from environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(cfg.Catalog.Source))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.UsesDatabase() && cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbCfg.DB.Host,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		dbCfg.DB.Port,
		dbCfg.DB.SSLMode,
	)

	gormConfig := &gorm.Config{}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// Initialize loads all configurations and, for a postgres catalog, connects to the database.
// This should be called once at the start of the application (e.g., in main.go).
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		if !appConfig.UsesDatabase() {
			log.Printf("Using file catalog at %s, skipping database connection", appConfig.Catalog.File)
			return
		}
		if _, err = ConnectDB(*appConfig); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It exits if the configuration has not been loaded yet.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}
