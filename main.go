package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/syrilster/personio-absence-kit/internal"
	"github.com/syrilster/personio-absence-kit/internal/config"
)

func main() {
	// load values from .env into the system
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found")
	}

	cfg, err := config.NewApplicationConfig()
	if err != nil {
		log.Fatalf("failed to start application: %v", err)
	}
	log.SetLevel(cfg.LogLevel())
	log.SetFormatter(&log.JSONFormatter{})

	server := internal.SetupServer(cfg)
	log.Infof("listening on port %v", cfg.ServerPort())
	if err := server.Start("", cfg.ServerPort()); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
