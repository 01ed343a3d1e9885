package config

import (
	"flag"
	"os"

	"playcenter-console/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the play-center API (default from Config)
//	-t string   path to the token file
//	-d string   directory for downloaded backup archives
//	-v          verbose (debug) logging
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with the -c/-config
// stage.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the play-center API")
	fs.StringVar(&cfg.TokenFile, "t", cfg.TokenFile, "path to the token file")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "directory for downloaded backups")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
