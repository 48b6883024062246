package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/civicworks/infrapulse/pkg/config"
	"github.com/civicworks/infrapulse/pkg/consumers/telemetry"
	"github.com/civicworks/infrapulse/pkg/db"
	"github.com/civicworks/infrapulse/pkg/lifecycle"
	"github.com/civicworks/infrapulse/pkg/logger"
	"github.com/civicworks/infrapulse/pkg/ml"
)

const defaultConfigPath = "/etc/infrapulse/consumer.json"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "infrapulse-consumer",
		Short: "Consumes IoT telemetry from JetStream and runs anomaly analysis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "Path to the consumer config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	var cfg telemetry.ConsumerConfig

	if err := config.LoadAndValidate(configPath, &cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCfg := cfg.Logging
	if logCfg == nil {
		logCfg = logger.DefaultConfig()
	}

	log, err := logger.NewComponentLogger("telemetry-consumer", logCfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	dbLog, err := logger.NewComponentLogger("db", logCfg)
	if err != nil {
		return fmt.Errorf("failed to create db logger: %w", err)
	}

	dbService, err := db.New(ctx, &cfg.Database, dbLog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	mlLog, err := logger.NewComponentLogger("ml", logCfg)
	if err != nil {
		dbService.Close()
		return fmt.Errorf("failed to create ml logger: %w", err)
	}

	mlTimeout := time.Duration(cfg.MLRequestTimeoutSec) * time.Second
	mlClient := ml.NewClient(cfg.MLAPIURL, mlTimeout, mlLog)

	svc, err := telemetry.NewService(&cfg, dbService, mlClient, log)
	if err != nil {
		dbService.Close()
		return fmt.Errorf("failed to create telemetry service: %w", err)
	}

	return lifecycle.RunServer(ctx, &lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "telemetry-consumer",
		Service:     svc,
		Logger:      log,
	})
}
