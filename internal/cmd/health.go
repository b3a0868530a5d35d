package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfarer-cli/wayfarer/internal/planner"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the planning service is reachable",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Close()

	client := planner.New(cfg.API.BaseURL, cfg.Timeout(), log)
	if err := client.Health(cmd.Context()); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "planning service at %s is unreachable\n", cfg.API.BaseURL)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "planning service at %s is healthy\n", cfg.API.BaseURL)
	return nil
}
