package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App holds the settings shared by the API server and the basics demo
type App struct {
	// DB
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// HTTP
	ServerPort string `envconfig:"SERVER_PORT"`
	GinMode    string `envconfig:"GIN_MODE" default:"debug"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`

	// Basics demo
	Database     string `envconfig:"DATABASE" default:"mongodb"`
	CookieSecret string `envconfig:"COOKIE_SECRET" default:"RAHASIA"`
	ViewsDir     string `envconfig:"VIEWS_DIR" default:"views"`
}

// Load reads an optional .env file and then the process environment
func Load() (*App, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &c, nil
}

// DSN builds the libpq style connection string for pgx
func (c *App) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Port returns ServerPort or fallback when it is unset
func (c *App) Port(fallback string) string {
	if c.ServerPort == "" {
		return fallback
	}
	return c.ServerPort
}
