package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playcenter-console/internal/buildinfo"
	"playcenter-console/internal/client/api"
	"playcenter-console/internal/client/cli"
	"playcenter-console/internal/client/config"
	"playcenter-console/internal/client/services"
	"playcenter-console/internal/client/session"
	"playcenter-console/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.NewDefault(os.Stderr, cfg.Verbose)

	tokenFile := cfg.TokenFile
	if tokenFile == "" {
		tokenFile = session.DefaultTokenFile()
	}
	sess := session.NewStore(tokenFile)

	client := api.New(cfg.BaseURL, sess, log)

	svc := cli.Services{
		Auth:     services.NewAuthService(client),
		Walkins:  services.NewWalkinService(client, time.Now),
		Parties:  services.NewPartyService(client, time.Now),
		Packages: services.NewPackageService(client),
		Users:    services.NewUserService(client),
		Backups:  services.NewBackupService(client),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, log, sess, svc)
	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "console exited", "error", err)
		os.Exit(1)
	}
}
