package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/museum-user-api/internal/adapter"
	"github.com/MKhiriev/museum-user-api/internal/config"
	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: museum-client [flags] <command> [args]

commands:
  register <user> <password>
  login <user> <password>
  favourites [add|remove <id>]
  history [add|remove <id>]

flags:
`

var errUsage = errors.New("invalid command")

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("museum-client").Fatal().Err(err).Msg("error getting configs")
	}

	fs := flag.NewFlagSet("museum-client", flag.ExitOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", cfg.Adapter.HTTPAddress, "API server address")
	fs.StringVar(&cfg.Adapter.Token, "t", cfg.Adapter.Token, "credential token from a previous login")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", cfg.Adapter.RequestTimeout, "request timeout")
	version := fs.Bool("version", false, "print build info and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if *version {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("museum-client", cfg.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Adapter.RequestTimeout+time.Second)
	defer cancel()

	out, err := run(ctx, serverAdapter, fs.Args())
	if errors.Is(err, errUsage) {
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("write output")
	}
}

func run(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "register":
		if len(rest) != 2 {
			return nil, errUsage
		}
		msg, err := a.Register(ctx, models.Credentials{UserName: rest[0], Password: rest[1], Password2: rest[1]})
		return models.MessageResponse{Message: msg}, err
	case "login":
		if len(rest) != 2 {
			return nil, errUsage
		}
		token, err := a.Login(ctx, models.Credentials{UserName: rest[0], Password: rest[1]})
		return models.LoginResponse{Message: models.LoginResult{Status: "success", Token: token}}, err
	case models.Favourites.String(), models.History.String():
		return runCollection(ctx, a, models.CollectionKind(cmd), rest)
	default:
		return nil, errUsage
	}
}

func runCollection(ctx context.Context, a adapter.ServerAdapter, kind models.CollectionKind, args []string) (any, error) {
	switch {
	case len(args) == 0:
		return a.GetCollection(ctx, kind)
	case len(args) == 2 && args[0] == "add":
		return a.AddToCollection(ctx, kind, args[1])
	case len(args) == 2 && args[0] == "remove":
		return a.RemoveFromCollection(ctx, kind, args[1])
	default:
		return nil, errUsage
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
