package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

type Config struct {
	// HTTP server
	Port   string
	APIURL string

	// Database
	DatabaseURL string

	// Logging
	LogFormat string
	GinMode   string

	// Router
	CORSAllowOrigins    []string
	EnablePprof         bool
	ProtectBudgetRoutes bool

	// Authentication
	PasswordHashRounds int

	// Values from the environment that could not be parsed
	parseErrors []string
}

var (
	validLogFormats = []string{"", "json", "human"}
	validGinModes   = []string{"", "debug", "release", "test"}
)

// Load reads the configuration from the environment. Unset variables
// get their default value.
func Load() *Config {
	c := &Config{
		Port:   getEnv("PORT", "8080"),
		APIURL: getEnv("API_URL", "http://localhost:8080/api"),

		DatabaseURL: getEnv("DATABASE_URL", "data/budget.db"),

		LogFormat: os.Getenv("LOG_FORMAT"),
		GinMode:   os.Getenv("GIN_MODE"),

		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
	}

	c.EnablePprof = c.getEnvBool("ENABLE_PPROF", false)
	c.ProtectBudgetRoutes = c.getEnvBool("PROTECT_BUDGET_ROUTES", false)
	c.PasswordHashRounds = c.getEnvInt("PASSWORD_HASH_ROUNDS", 29000)

	return c
}

// Validate validates the configuration and reports all invalid values at once.
func (c *Config) Validate() error {
	errors := slices.Clone(c.parseErrors)

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := c.BaseURL(); err != nil {
		errors = append(errors, err.Error())
	}

	if c.DatabaseURL == "" {
		errors = append(errors, "the database URL cannot be empty")
	}

	if !slices.Contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of [json human]", c.LogFormat))
	}

	if !slices.Contains(validGinModes, c.GinMode) {
		errors = append(errors, fmt.Sprintf("invalid gin mode '%s': must be one of [debug release test]", c.GinMode))
	}

	if c.PasswordHashRounds < 1000 {
		errors = append(errors, fmt.Sprintf("invalid number of password hash rounds %d: must be at least 1000", c.PasswordHashRounds))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// BaseURL returns the public URL of the API.
func (c *Config) BaseURL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL '%s': %w", c.APIURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL scheme '%s': must be 'http' or 'https'", u.Scheme)
	}

	return u, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an integer variable. Unparseable values keep the
// default and are reported by Validate.
func (c *Config) getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("invalid %s '%s': must be a number", key, value))
		return defaultValue
	}
	return i
}

func (c *Config) getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("invalid %s '%s': must be true or false", key, value))
		return defaultValue
	}
	return b
}
