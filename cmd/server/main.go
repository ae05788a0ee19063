package main

import (
	"fmt"
	"os"

	"github.com/meriadock/meriadock-api/internal/config"
	"github.com/meriadock/meriadock-api/internal/logging"
	"github.com/meriadock/meriadock-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Configure(&logging.Config{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting meriadock-api in %s mode", cfg.Environment)

	srv := server.NewServer(cfg)
	srv.Init()

	if err := srv.Start(); err != nil {
		logger.Error("Server exited: %v", err)
		os.Exit(1)
	}
}
