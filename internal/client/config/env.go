package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over .env entries per godotenv semantics.
//
// Recognized variables:
//
//	PLAYCENTER_API_URL          base URL of the API
//	PLAYCENTER_TOKEN_FILE       token file path
//	PLAYCENTER_DOWNLOAD_DIR     backup download directory
//	PLAYCENTER_SEARCH_DEBOUNCE  duration string, e.g. "300ms"
//	PLAYCENTER_VERBOSE          boolean
func parseEnv(cfg *Config) error {
	// Missing .env is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("PLAYCENTER_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PLAYCENTER_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
	if v := os.Getenv("PLAYCENTER_DOWNLOAD_DIR"); v != "" {
		cfg.DownloadDir = v
	}
	if v := os.Getenv("PLAYCENTER_SEARCH_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PLAYCENTER_SEARCH_DEBOUNCE: %w", err)
		}
		cfg.SearchDebounce = d
	}
	if v := os.Getenv("PLAYCENTER_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PLAYCENTER_VERBOSE: %w", err)
		}
		cfg.Verbose = b
	}
	return nil
}
