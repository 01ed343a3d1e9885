package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"playcenter-console/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// strings accepted by time.ParseDuration. After parsing, present values are
// copied into the runtime Config; absent fields leave earlier values intact.
type JsonConfig struct {
	BaseURL        string `json:"base_url"`
	TokenFile      string `json:"token_file"`
	DownloadDir    string `json:"download_dir"`
	SearchDebounce string `json:"search_debounce"`
	Verbose        *bool  `json:"verbose"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; without them no JSON is loaded.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.SearchDebounce != "" {
		d, err := time.ParseDuration(jc.SearchDebounce)
		if err != nil {
			return fmt.Errorf("search_debounce: %w", err)
		}
		cfg.SearchDebounce = d
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
	return nil
}
