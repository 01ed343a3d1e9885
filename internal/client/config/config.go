package config

import "time"

// Config holds runtime settings for the play-center console.
//
// Fields:
//   - BaseURL: root of the play-center REST API, including the /api prefix.
//   - TokenFile: where the bearer token is persisted between sessions.
//   - DownloadDir: destination directory for downloaded backup archives.
//   - SearchDebounce: quiet period before a live search fires.
//   - Verbose: enables debug-level logging.
type Config struct {
	BaseURL        string
	TokenFile      string
	DownloadDir    string
	SearchDebounce time.Duration
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults. TokenFile is left empty;
// the caller resolves it to a per-user location when unset.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:5000/api"
	c.TokenFile = ""
	c.DownloadDir = "backups"
	c.SearchDebounce = 300 * time.Millisecond
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
