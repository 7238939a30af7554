package client

import (
	"github.com/kelseyhightower/envconfig"
)

// envConfig is the environment surface of the SDK.
// Variables are parsed from the BDR_API_ prefix.
type envConfig struct {
	// BaseURL of the backend, e.g. https://api.example.com.
	// Trailing slashes are stripped.
	BaseURL string `envconfig:"BASE_URL" required:"true"`
}

// NewFromEnv constructs a Client from BDR_API_BASE_URL. Prefer New with
// an explicit base URL; this exists for tools that are configured purely
// through the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	var ec envConfig
	if err := envconfig.Process("bdr_api", &ec); err != nil {
		return nil, err
	}
	return New(ec.BaseURL, opts...)
}
