package main

import (
	"net/http"

	"taskpad/internal/config"
	"taskpad/internal/logging"
	"taskpad/internal/server"
)

func main() {
	logger := logging.Init("taskpad")

	cfg, err := config.Load("taskpad.yml")
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	app := server.NewApp(cfg)
	handler := server.NewHandler(app, logger)

	logger.WithField("addr", cfg.Server.Addr).Info("taskpad listening")
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		logger.Fatalf("server: %v", err)
	}
}
