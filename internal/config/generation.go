package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GenerationConfig holds settings for the tailoring pipeline. Defaults
// suit a low-volume, user-initiated workload.
type GenerationConfig struct {
	APIKey      string
	Model       string
	MaxAttempts int
	Timeout     time.Duration
}

// NewGenerationConfig reads GEMINI_API_KEY (required), TAILOR_MODEL
// (optional override for the advanced-tier model), TAILOR_MAX_ATTEMPTS
// (default 2), and TAILOR_TIMEOUT_SECONDS (default 120) from the
// environment.
func NewGenerationConfig() (*GenerationConfig, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required but not set")
	}

	cfg := &GenerationConfig{
		APIKey:      apiKey,
		Model:       os.Getenv("TAILOR_MODEL"),
		MaxAttempts: 2,
		Timeout:     120 * time.Second,
	}

	if v := os.Getenv("TAILOR_MAX_ATTEMPTS"); v != "" {
		attempts, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TAILOR_MAX_ATTEMPTS: %v", err)
		}
		if attempts < 1 {
			return nil, fmt.Errorf("TAILOR_MAX_ATTEMPTS must be at least 1, got %d", attempts)
		}
		cfg.MaxAttempts = attempts
	}

	if v := os.Getenv("TAILOR_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TAILOR_TIMEOUT_SECONDS: %v", err)
		}
		if seconds < 1 {
			return nil, fmt.Errorf("TAILOR_TIMEOUT_SECONDS must be at least 1, got %d", seconds)
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}
