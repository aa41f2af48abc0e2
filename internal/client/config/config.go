package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the BlogNest CLI.
//
// Fields:
//   - APIBaseURL: base address of the backend REST API.
//   - RequestTimeout: hard cap on every outbound request.
//   - SessionFile: path of the persisted session (identity + credential).
//   - S3*: object-store settings for cover-image uploads (MinIO compatible).
//   - Google*: OAuth client settings for Google-assisted sign-in.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionFile    string

	S3BaseEndpoint string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 15 * time.Second
	c.SessionFile = defaultSessionFile()
	c.S3Region = "us-east-1"
	c.S3Bucket = "blognest"
	c.GoogleRedirectURL = "http://127.0.0.1/callback"
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "blognest", "session.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
