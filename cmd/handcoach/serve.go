package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/lox/handcoach/internal/config"
	"github.com/lox/handcoach/internal/server"
)

// ServeCmd runs the JSON parse API
type ServeCmd struct {
	Config  string `kong:"short='c',default='handcoach.hcl',help='Config file'"`
	Addr    string `kong:"help='Listen address, overrides config'"`
	EnvFile string `kong:"default='.env',help='Env file to load before starting'"`
}

func (c *ServeCmd) Run() error {
	// A missing env file is fine; an unreadable one is not.
	if _, err := os.Stat(c.EnvFile); err == nil {
		if err := godotenv.Load(c.EnvFile); err != nil {
			return err
		}
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLoggerWithLevel(cfg.Server.LogLevel)

	normalizer, err := cfg.Normalizer()
	if err != nil {
		return err
	}

	addr := cfg.ServerAddress()
	if envAddr := os.Getenv("HANDCOACH_ADDR"); envAddr != "" {
		addr = envAddr
	}
	if c.Addr != "" {
		addr = c.Addr
	}

	logger.Info("Starting parse API",
		"addr", addr,
		"rewrites", len(cfg.Rewrites))

	return http.ListenAndServe(addr, server.New(logger, normalizer))
}
