package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "footsim",
		Short: "footsim - transfer market engine for the football simulation",
		Long: `footsim drives the transfer market: AI clubs bid for players, selling
clubs answer, agreed deals settle atomically against club budgets.

Examples:
  footsim daily-tick --date 2026-07-15
  footsim proposals list --team 1
  footsim proposals respond --id 12 --action counter --counter-fee 2500000
  footsim ledger list --team 1 --category TRANSFER_OUT
  footsim seed`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewDailyTickCommand())
	rootCmd.AddCommand(NewProposalsCommand())
	rootCmd.AddCommand(NewLedgerCommand())
	rootCmd.AddCommand(NewSeedCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
