package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/match-oracle/internal/models"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run the unified prediction for a match",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(cmd, func(ctx context.Context, req models.MatchRequest) (interface{}, error) {
			return svc.Predict(ctx, req)
		})
	},
}

var sideCmd = &cobra.Command{
	Use:   "side",
	Short: "Run the side-market prediction for a match in play",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(cmd, func(ctx context.Context, req models.MatchRequest) (interface{}, error) {
			return svc.PredictSideMarkets(ctx, req)
		})
	},
}

var combinedCmd = &cobra.Command{
	Use:   "combined",
	Short: "Run both predictions and merge their verdicts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(cmd, func(ctx context.Context, req models.MatchRequest) (interface{}, error) {
			return svc.Combined(ctx, req)
		})
	},
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Summarise the market view of a match",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(cmd, func(ctx context.Context, req models.MatchRequest) (interface{}, error) {
			return svc.Insights(ctx, req)
		})
	},
}

var valueBetsCmd = &cobra.Command{
	Use:   "value-bets",
	Short: "List side markets with positive expected value",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(cmd, func(ctx context.Context, req models.MatchRequest) (interface{}, error) {
			return svc.ValueBets(ctx, req)
		})
	},
}

var kellyCmd = &cobra.Command{
	Use:   "kelly",
	Short: "Recommend a capped Kelly stake",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := svc.Kelly(cmd.Context(), models.KellyRequest{
			Bankroll:        bankroll,
			TrueProbability: probability,
			Multiplier:      multiplier,
		})
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), rec)
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Judge whether a pick is playable, from a match or an explicit signal",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req models.FilterRequest
		if err := readRequest(requestFile, &req); err != nil {
			return err
		}
		result, err := svc.Filter(cmd.Context(), req)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), result)
	},
}

var evolveCmd = &cobra.Command{
	Use:   "evolve",
	Short: "Simulate odds movement for side markets",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req models.EvolutionRequest
		if err := readRequest(requestFile, &req); err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			req.Seed = seed
		}
		evolutions, err := svc.Evolve(cmd.Context(), req)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), evolutions)
	},
}

func runMatch(cmd *cobra.Command, run func(ctx context.Context, req models.MatchRequest) (interface{}, error)) error {
	var req models.MatchRequest
	if err := readRequest(requestFile, &req); err != nil {
		return err
	}
	out, err := run(cmd.Context(), req)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out)
}

// readRequest decodes a YAML request file. JSON files parse as YAML too.
// "-" reads standard input.
func readRequest(path string, dst interface{}) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse request file: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
