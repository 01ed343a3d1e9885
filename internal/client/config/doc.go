// Package config loads runtime configuration for the play-center console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the play-center API
//	-t string   path to the token file
//	-d string   directory for downloaded backup archives
//	-v          verbose (debug) logging
//
// # JSON schema
//
// Durations are strings accepted by time.ParseDuration:
//
//	{
//	  "base_url": "http://127.0.0.1:5000/api",
//	  "token_file": "/home/user/.config/playcenter/token",
//	  "download_dir": "backups",
//	  "search_debounce": "300ms",
//	  "verbose": true
//	}
package config
