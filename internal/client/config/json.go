package config

import (
	"encoding/json"
	"os"

	"github.com/blognest/blognest-cli/internal/flagx"
	"github.com/blognest/blognest-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the timeout either as a string
// like "15s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionFile    string         `json:"session_file"`

	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3Region       string `json:"s3_region"`
	S3Bucket       string `json:"s3_bucket"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`

	GoogleClientID     string `json:"google_client_id"`
	GoogleClientSecret string `json:"google_client_secret"`
	GoogleRedirectURL  string `json:"google_redirect_url"`
}

// parseJson overlays Config with values loaded from a JSON file whose
// path comes from the -c/-config flags. Missing flag means no JSON is
// loaded. Read or unmarshal errors panic; intended usage is
// defaults -> parseJson -> parseFlags, where later stages override
// earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.GoogleClientID != "" {
		cfg.GoogleClientID = jc.GoogleClientID
	}
	if jc.GoogleClientSecret != "" {
		cfg.GoogleClientSecret = jc.GoogleClientSecret
	}
	if jc.GoogleRedirectURL != "" {
		cfg.GoogleRedirectURL = jc.GoogleRedirectURL
	}
}
