package config

import (
	"os"

	"mail-retriever/internal/models"

	"gopkg.in/yaml.v2"
)

// Default returns the retriever settings used when the caller supplies no
// overrides: a plain-text connection to localhost, the INBOX mailbox, and a
// search that matches every message.
func Default() *models.RetrieverConfig {
	return &models.RetrieverConfig{
		Address: "localhost",
		Port:    110,
		Mailbox: "INBOX",
		Query:   "ALL",
	}
}

// WithDefaults merges the given overrides onto the defaults. Zero-valued
// fields keep their default; EnableSSL has no non-false default so it passes
// through as-is.
func WithDefaults(overrides models.RetrieverConfig) *models.RetrieverConfig {
	cfg := Default()
	if overrides.Address != "" {
		cfg.Address = overrides.Address
	}
	if overrides.Port != 0 {
		cfg.Port = overrides.Port
	}
	if overrides.Mailbox != "" {
		cfg.Mailbox = overrides.Mailbox
	}
	if overrides.Query != "" {
		cfg.Query = overrides.Query
	}
	cfg.UserName = overrides.UserName
	cfg.Password = overrides.Password
	cfg.EnableSSL = overrides.EnableSSL
	return cfg
}

// Load reads retriever settings from the specified YAML file and merges them
// over the defaults.
func Load(filepath string) (*models.RetrieverConfig, error) {
	configFile, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var overrides models.RetrieverConfig
	if err := yaml.Unmarshal(configFile, &overrides); err != nil {
		return nil, err
	}

	return WithDefaults(overrides), nil
}
