package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/application/ledger/queries"
	"github.com/andrescamacho/footsim-go/internal/domain/ledger"
)

// NewLedgerCommand creates the ledger command with subcommands
func NewLedgerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Financial ledger operations",
		Long: `View a club's financial movements.

Every budget change flows through the ledger: transfer fees paid and
received, wages, prize money. Entries record the balance before and after.

Categories:
  TRANSFER_OUT  - Fees paid for incoming players
  TRANSFER_IN   - Fees received for outgoing players
  WAGES         - Salary payments
  PRIZE_MONEY   - League and cup prize income

Examples:
  footsim ledger list --team 1 --limit 10
  footsim ledger list --team 1 --category TRANSFER_OUT
  footsim ledger cash-flow --team 1 --start-date 2026-07-01 --end-date 2026-08-31`,
	}

	cmd.AddCommand(newLedgerListCommand())
	cmd.AddCommand(newLedgerCashFlowCommand())
	return cmd
}

func newLedgerListCommand() *cobra.Command {
	var (
		teamID    int
		startDate string
		endDate   string
		category  string
		seasonID  int
		limit     int
		offset    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(configPath, nil)
			if err != nil {
				return err
			}
			defer eng.close()

			query := &queries.GetEntriesQuery{TeamID: teamID, Limit: limit, Offset: offset}
			if query.StartDate, err = parseOptionalDate(startDate); err != nil {
				return err
			}
			if query.EndDate, err = parseOptionalEndDate(endDate); err != nil {
				return err
			}
			if category != "" {
				parsed, err := ledger.ParseCategory(category)
				if err != nil {
					return err
				}
				query.Category = &parsed
			}
			if seasonID > 0 {
				query.SeasonID = &seasonID
			}

			resp, err := common.SendTyped[*queries.GetEntriesResponse](eng.rootContext(), eng.mediator, query)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCATEGORY\tAMOUNT\tBALANCE\tDESCRIPTION")
			for _, e := range resp.Entries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
					e.Timestamp.Format("2006-01-02"), e.Category, e.Amount, e.BalanceAfter, e.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("%d of %d entries\n", len(resp.Entries), resp.TotalCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&teamID, "team", 0, "Team ID [required]")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().IntVar(&seasonID, "season", 0, "Filter by season ID")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of entries")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of entries to skip")
	cmd.MarkFlagRequired("team")
	return cmd
}

func newLedgerCashFlowCommand() *cobra.Command {
	var (
		teamID    int
		startDate string
		endDate   string
		seasonID  int
	)

	cmd := &cobra.Command{
		Use:   "cash-flow",
		Short: "Per-category cash flow statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(configPath, nil)
			if err != nil {
				return err
			}
			defer eng.close()

			query := &queries.GetCashFlowQuery{TeamID: teamID}
			if query.StartDate, err = parseOptionalDate(startDate); err != nil {
				return err
			}
			if query.EndDate, err = parseOptionalEndDate(endDate); err != nil {
				return err
			}
			if seasonID > 0 {
				query.SeasonID = &seasonID
			}

			resp, err := common.SendTyped[*queries.GetCashFlowResponse](eng.rootContext(), eng.mediator, query)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tINFLOW\tOUTFLOW\tNET\tENTRIES")
			for _, c := range resp.Categories {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
					c.Category, c.TotalInflow, c.TotalOutflow, c.NetFlow, c.EntryCount)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("Net total: %d\n", resp.NetTotal)
			return nil
		},
	}

	cmd.Flags().IntVar(&teamID, "team", 0, "Team ID [required]")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&seasonID, "season", 0, "Filter by season ID")
	cmd.MarkFlagRequired("team")
	return cmd
}

// parseOptionalDate parses a YYYY-MM-DD flag, nil when empty
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, want YYYY-MM-DD: %w", err)
	}
	return &parsed, nil
}

// parseOptionalEndDate parses an end-date flag and pushes it to the end of
// the day so the date itself is included.
func parseOptionalEndDate(s string) (*time.Time, error) {
	parsed, err := parseOptionalDate(s)
	if err != nil || parsed == nil {
		return parsed, err
	}
	endOfDay := parsed.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return &endOfDay, nil
}
