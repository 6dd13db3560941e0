package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/shows-api/pkg/middleware"
	"github.com/JaimeStill/shows-api/pkg/openapi"
	"github.com/docker/go-units"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
}

const (
	EnvAPIBasePath    = "API_BASE_PATH"
	EnvAPIMaxBodySize = "API_MAX_BODY_SIZE"
)

// APIConfig configures the JSON API module. BasePath is empty by default so
// routes are served from the root.
type APIConfig struct {
	BasePath       string                `toml:"base_path"`
	MaxBodySize    string                `toml:"max_body_size"`
	CORS           middleware.CORSConfig `toml:"cors"`
	OpenAPI        openapi.Config        `toml:"openapi"`
	maxBodySizeVal int64
}

// MaxBodySizeBytes returns the parsed request body limit. Valid after Finalize.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	return c.maxBodySizeVal
}

func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
}

func (c *APIConfig) validate() error {
	c.BasePath = strings.TrimSuffix(c.BasePath, "/")
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", c.BasePath)
	}

	size, err := units.FromHumanSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	c.maxBodySizeVal = size

	return nil
}
