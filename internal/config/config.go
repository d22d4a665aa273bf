package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// GitHub
	GitHubUsername string
	GitHubToken    string
	FeaturedRepos  []string // repo names only
	ExternalRepos  []string // owner/name references

	// Mail relay
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	ToEmail   string
	FromEmail string

	// Contact endpoint
	AllowedOrigin string

	// API Server
	APIPort string
	APIHost string

	// CLI
	APIEndpoint string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, &ConfigError{Field: "SMTP_PORT", Message: "must be a number"}
	}

	cfg := &Config{
		GitHubUsername: getEnv("GITHUB_USERNAME", ""),
		GitHubToken:    getEnv("GITHUB_TOKEN", ""),
		FeaturedRepos:  splitCSV(getEnv("GITHUB_FEATURED_REPOS", "")),
		ExternalRepos:  splitCSV(getEnv("GITHUB_EXTERNAL_REPOS", "")),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       port,
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
		ToEmail:        getEnv("TO_EMAIL", ""),
		FromEmail:      getEnv("FROM_EMAIL", ""),
		AllowedOrigin:  getEnv("CONTACT_ALLOWED_ORIGIN", ""),
		APIPort:        getEnv("API_PORT", "8080"),
		APIHost:        getEnv("API_HOST", "localhost"),
		APIEndpoint:    getEnv("API_ENDPOINT", "http://localhost:8080"),
	}

	if cfg.FromEmail == "" {
		cfg.FromEmail = cfg.SMTPUser
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitCSV splits a comma-separated value, trimming whitespace and dropping
// empty entries
func splitCSV(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitHubUsername == "" {
		return &ConfigError{Field: "GITHUB_USERNAME", Message: "GitHub username is required"}
	}
	return nil
}

// MailConfigured reports whether the mail relay credentials are complete.
// Incomplete credentials are surfaced per-request as a service error rather
// than failing startup: the aggregation endpoint still works without them.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.ToEmail != ""
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
