package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewDailyTickCommand creates the daily-tick command
func NewDailyTickCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "daily-tick",
		Short: "Run one day of the transfer market",
		Long: `Run one simulated day: every AI club decides its market move, offers go
out, incoming proposals are answered, accepted deals settle and stale
proposals expire.

Example:
  footsim daily-tick --date 2026-07-15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDailyTick(date)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Simulation date (YYYY-MM-DD), defaults to today")
	return cmd
}

func runDailyTick(date string) error {
	asOf, err := parseDateFlag(date)
	if err != nil {
		return err
	}

	eng, err := buildEngine(configPath, asOf)
	if err != nil {
		return err
	}
	defer eng.close()

	summary, err := eng.processor.Run(eng.rootContext())
	if err != nil {
		return err
	}

	fmt.Printf("Daily tick complete\n")
	fmt.Printf("  actions taken:       %d\n", summary.ActionsTaken)
	fmt.Printf("  offers submitted:    %d\n", summary.OffersSubmitted)
	fmt.Printf("  proposals evaluated: %d\n", summary.ProposalsEvaluated)
	fmt.Printf("  transfers completed: %d\n", summary.TransfersCompleted)
	fmt.Printf("  proposals expired:   %d\n", summary.ProposalsExpired)
	return nil
}

// parseDateFlag turns an optional YYYY-MM-DD flag into a fixed engine date
func parseDateFlag(date string) (*time.Time, error) {
	if date == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, want YYYY-MM-DD: %w", err)
	}
	return &parsed, nil
}
