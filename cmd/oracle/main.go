// Package main provides the match oracle command line and server.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/match-oracle/internal/config"
	applogger "github.com/yourusername/match-oracle/internal/logger"
	"github.com/yourusername/match-oracle/internal/metrics"
	"github.com/yourusername/match-oracle/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile  string
	requestFile string
	seed        int64
	bankroll    float64
	probability float64
	multiplier  float64
	logger      *logrus.Logger
	cfg         *config.Config
	svc         *service.PredictionService
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigPath, "Path to configuration file")

	for _, cmd := range []*cobra.Command{predictCmd, sideCmd, combinedCmd, insightsCmd, valueBetsCmd, filterCmd, evolveCmd} {
		cmd.Flags().StringVarP(&requestFile, "file", "f", "", "Request file (YAML or JSON)")
		_ = cmd.MarkFlagRequired("file")
	}
	evolveCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed, overrides the request file")

	kellyCmd.Flags().Float64Var(&bankroll, "bankroll", 0, "Bankroll, defaults to staking.default_bankroll")
	kellyCmd.Flags().Float64Var(&probability, "probability", 0, "Estimated true probability in percent")
	kellyCmd.Flags().Float64Var(&multiplier, "odds", 0, "Decimal odds")
	_ = kellyCmd.MarkFlagRequired("probability")
	_ = kellyCmd.MarkFlagRequired("odds")
}

var rootCmd = &cobra.Command{
	Use:   "oracle",
	Short: "Heuristic consensus predictions for football matches",
	Long: `Score candidate bets for a match with a bank of heuristic estimators,
report the consensus, and size stakes with a capped Kelly criterion.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		setupDependencies()
		return nil
	},
}

func main() {
	rootCmd.AddCommand(predictCmd, sideCmd, combinedCmd, insightsCmd, valueBetsCmd, kellyCmd, filterCmd, evolveCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies() {
	// Results go to stdout, logs to stderr
	logger = applogger.NewLoggerWithOutput(cfg.App.LogLevel, os.Stderr)
	applogger.NewAuditLogger(logger).LogConfigLoaded(configFile, cfg.App.Environment, cfg.Cache.Enabled, cfg.Metrics.Enabled)

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}
	svc = service.NewPredictionService(service.OptionsFromConfig(cfg), logger)
}
