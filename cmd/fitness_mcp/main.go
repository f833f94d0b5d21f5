// Package main runs the fitness MCP server over stdio, for local editor and agent use.
// The main service mounts the same tools at /mcp over streamable HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/fitnesslog/internal/config"
	"github.com/2beens/fitnesslog/internal/db"
	"github.com/2beens/fitnesslog/internal/fitness"
	fitnessmcp "github.com/2beens/fitnesslog/internal/fitness/mcp"
	"github.com/2beens/fitnesslog/internal/logging"
	"github.com/2beens/fitnesslog/internal/telemetry/metrics"
	"github.com/2beens/fitnesslog/internal/timezone"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	// stdout carries the MCP stream
	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})
	if cfg.LogsPath == "" {
		log.SetOutput(os.Stderr)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: cfg.Secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	store := fitness.NewPsqlStore(dbPool)
	days := fitness.NewDayService(store, timezone.NewResolver(nil), metrics.NewManager("fitnesslog", "mcp", prometheus.NewRegistry()))
	server := fitnessmcp.NewServer(dbPool, days, fitness.NewLogService(store))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %s", err)
	}
}
