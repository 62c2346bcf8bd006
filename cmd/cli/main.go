package main

import (
	"context"
	"log"

	"github.com/alecthomas/kong"

	"github.com/spec-kit/bikehub-frontend/cmd/cli/internal/commands"
	"github.com/spec-kit/bikehub-frontend/internal/config"
)

var (
	version = "dev"
	cli     struct {
		Login    commands.LoginCmd    `cmd:"" help:"Log in and store the access token"`
		Logout   commands.LogoutCmd   `cmd:"" help:"Forget the stored access token"`
		Whoami   commands.WhoamiCmd   `cmd:"" help:"Show the current session"`
		Signup   commands.SignupCmd   `cmd:"" help:"Register a customer account"`
		Bicycles commands.BicyclesCmd `cmd:"" help:"List bicycles (admin)"`
		Rental   commands.RentalCmd   `cmd:"" help:"Show the current rental or bookable bicycles (customer)"`
		API      string               `help:"API base URL; overrides API_BASE_URL."`
		Debug    bool                 `help:"Enable debug mode."`
		Version  kong.VersionFlag
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("bikehub"),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	if cli.API != "" {
		cfg.API.BaseURL = cli.API
	}
	err = cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version, Config: cfg})
	cmd.FatalIfErrorf(err)
}
