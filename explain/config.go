// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package explain

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the credentials and tuning of the text-generation service.
type Config struct {
	APIKey      string        `envconfig:"CONIC_API_KEY"`
	Model       string        `envconfig:"CONIC_MODEL" default:"gemini-2.5-flash"`
	Endpoint    string        `envconfig:"CONIC_ENDPOINT" default:"https://generativelanguage.googleapis.com/"`
	Timeout     time.Duration `envconfig:"CONIC_TIMEOUT" default:"30s"`
	Temperature float64       `envconfig:"CONIC_TEMPERATURE" default:"0.2"`
}

// Load reads Config from the environment. A missing key is not an error
// here; the client reports it on first use.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
