package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfarer-cli/wayfarer/internal/tui/view"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show example trip descriptions",
	Long: `Show the starter prompts available on the welcome screen. Any of them
can be passed directly to "wayfarer plan --print".`,
	Run: runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, args []string) {
	for i, example := range view.ExamplePrompts {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, example)
	}
}
