package cmd

import (
	"log"
	"net/url"

	"github.com/twobob/openRouterFree/internal/api"
	"github.com/twobob/openRouterFree/internal/api/client"
	"github.com/twobob/openRouterFree/internal/config"
	"github.com/twobob/openRouterFree/internal/credentials"
	"github.com/twobob/openRouterFree/internal/logger"
	"github.com/twobob/openRouterFree/internal/ui"
)

func init() {
	config.Init()
}

func Execute() {
	ui.Init()
	debugConsole, err := ui.GetDebugConsole()
	if err != nil {
		log.Fatal(err)
	}

	logger.InitLogger(config.Dev, config.LogPath, debugConsole)
	localLogger := logger.NewLogger("cmd")

	creds := credentials.NewStore(config.EnvFile)
	if _, err := creds.Load(); err != nil {
		localLogger.Warn("Failed to load credential store: ", err)
	}

	cfg := client.DefaultConfig()
	if config.Endpoint != "" {
		endpoint, err := url.Parse(config.Endpoint)
		if err != nil {
			log.Fatalf("Invalid endpoint %q: %s", config.Endpoint, err)
		}
		cfg.Scheme = endpoint.Scheme
		cfg.Host = endpoint.Host
	}

	model := config.Model
	if model == "" {
		model = client.DefaultModel
	}

	service := api.NewService(client.NewClient(cfg), model, creds.Get)

	ui.Run(service, creds)
}
