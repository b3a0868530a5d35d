package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wayfarer-cli/wayfarer/internal/config"
	"github.com/wayfarer-cli/wayfarer/internal/logging"
	"github.com/wayfarer-cli/wayfarer/internal/planner"
	"github.com/wayfarer-cli/wayfarer/internal/tui"
	"github.com/wayfarer-cli/wayfarer/internal/tui/view"
)

var planPrint bool

var planCmd = &cobra.Command{
	Use:   "plan [prompt]",
	Short: "Plan a trip",
	Long: `Plan a trip from a one-line description.

Without --print this opens the interactive view, where you type the
description and browse the resulting plan. With --print the description is
taken from the arguments, the plan is rendered once to stdout, and the
command exits.`,
	Example: `  wayfarer plan
  wayfarer plan --print "4-day trip to Rome in October with budget hotels"`,
	Args: cobra.ArbitraryArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().BoolVar(&planPrint, "print", false, "render the plan to stdout instead of opening the interactive view")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Close()

	client := planner.New(cfg.API.BaseURL, cfg.Timeout(), log)
	prompt := strings.TrimSpace(strings.Join(args, " "))

	if planPrint {
		if prompt == "" {
			return fmt.Errorf("--print requires a trip description argument")
		}

		width := cfg.TUI.MaxWidth
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
			width = w
		}

		plan, err := client.PlanTrip(cmd.Context(), prompt)
		if err != nil {
			log.Error("plan request failed", "error", err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), view.NewPlanView().Render(plan, width))
		return nil
	}

	return tui.New(client, cfg, log).Run()
}

// setup loads and validates configuration and opens the logger shared by the
// user-facing commands.
func setup() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return cfg, log, nil
}
