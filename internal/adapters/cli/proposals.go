package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/commands"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/queries"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// NewProposalsCommand creates the proposals command with subcommands
func NewProposalsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "Transfer proposal operations",
		Long: `Create, inspect and answer transfer proposals.

Examples:
  footsim proposals list --team 1
  footsim proposals make --player 1001 --from 99 --to 1 --fee 2000000 --wage 105000 --years 4
  footsim proposals respond --id 12 --action accept
  footsim proposals respond --id 12 --action counter --counter-fee 2500000
  footsim proposals accept-counter --id 12
  footsim proposals finalize --id 12`,
	}

	cmd.AddCommand(newProposalsListCommand())
	cmd.AddCommand(newProposalsMakeCommand())
	cmd.AddCommand(newProposalsRespondCommand())
	cmd.AddCommand(newProposalsAcceptCounterCommand())
	cmd.AddCommand(newProposalsFinalizeCommand())
	return cmd
}

func newProposalsListCommand() *cobra.Command {
	var (
		teamID int
		status string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a team's proposals",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(configPath, nil)
			if err != nil {
				return err
			}
			defer eng.close()

			resp, err := common.SendTyped[*queries.ListProposalsResponse](eng.rootContext(), eng.mediator, &queries.ListProposalsQuery{
				TeamID: teamID,
				Status: transfer.Status(status),
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPLAYER\tFROM\tTO\tKIND\tSTATUS\tFEE\tDEADLINE")
			for _, p := range resp.Proposals {
				from := "free agent"
				if p.FromTeamID != nil {
					from = fmt.Sprintf("%d", *p.FromTeamID)
				}
				fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\t%s\t%d\t%s\n",
					p.ID, p.PlayerID, from, p.ToTeamID, p.Kind, p.Status, p.Fee,
					p.ResponseDeadline.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&teamID, "team", 0, "Team ID [required]")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of proposals")
	cmd.MarkFlagRequired("team")
	return cmd
}

func newProposalsMakeCommand() *cobra.Command {
	var (
		playerID int
		from     int
		to       int
		kind     string
		fee      int64
		wage     int64
		years    int
		date     string
	)

	cmd := &cobra.Command{
		Use:   "make",
		Short: "Submit a transfer offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			eng, err := buildEngine(configPath, asOf)
			if err != nil {
				return err
			}
			defer eng.close()

			var fromTeamID *int
			if from > 0 {
				fromTeamID = &from
			}
			resp, err := common.SendTyped[*commands.CreateProposalResponse](eng.rootContext(), eng.mediator, &commands.CreateProposalCommand{
				PlayerID:      playerID,
				FromTeamID:    fromTeamID,
				ToTeamID:      to,
				Kind:          transfer.Kind(kind),
				Fee:           fee,
				WageOffer:     wage,
				ContractYears: years,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Proposal %d submitted, response due %s\n", resp.ProposalID, resp.Deadline.Format("2006-01-02"))
			if resp.MustAccept {
				fmt.Println("The offer meets the player's release clause.")
			}
			for _, warning := range resp.Warnings {
				fmt.Println("warning:", warning)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&playerID, "player", 0, "Player ID [required]")
	cmd.Flags().IntVar(&from, "from", 0, "Selling team ID (omit for free agents)")
	cmd.Flags().IntVar(&to, "to", 0, "Buying team ID [required]")
	cmd.Flags().StringVar(&kind, "kind", "transfer", "Proposal kind: transfer, loan, free")
	cmd.Flags().Int64Var(&fee, "fee", 0, "Transfer fee")
	cmd.Flags().Int64Var(&wage, "wage", 0, "Annual wage offer [required]")
	cmd.Flags().IntVar(&years, "years", 4, "Contract years")
	cmd.Flags().StringVar(&date, "date", "", "Simulation date (YYYY-MM-DD), defaults to today")
	cmd.MarkFlagRequired("player")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("wage")
	return cmd
}

func newProposalsRespondCommand() *cobra.Command {
	var (
		id         int
		action     string
		reason     string
		counterFee int64
	)

	cmd := &cobra.Command{
		Use:   "respond",
		Short: "Answer a pending proposal",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(configPath, nil)
			if err != nil {
				return err
			}
			defer eng.close()

			resp, err := common.SendTyped[*commands.RespondToProposalResponse](eng.rootContext(), eng.mediator, &commands.RespondToProposalCommand{
				ProposalID: id,
				Action:     commands.ResponseAction(action),
				Reason:     reason,
				CounterFee: counterFee,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Proposal %d is now %s\n", resp.ProposalID, resp.Status)
			if resp.CounterFee != nil {
				fmt.Printf("Counter offer: %d, response due %s\n", *resp.CounterFee, resp.Deadline.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Proposal ID [required]")
	cmd.Flags().StringVar(&action, "action", "", "accept, reject or counter [required]")
	cmd.Flags().StringVar(&reason, "reason", "", "Rejection reason")
	cmd.Flags().Int64Var(&counterFee, "counter-fee", 0, "Counter offer fee (for counter)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("action")
	return cmd
}

func newProposalsAcceptCounterCommand() *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "accept-counter",
		Short: "Accept the selling club's counter offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(configPath, nil)
			if err != nil {
				return err
			}
			defer eng.close()

			resp, err := common.SendTyped[*commands.AcceptCounterOfferResponse](eng.rootContext(), eng.mediator, &commands.AcceptCounterOfferCommand{
				ProposalID: id,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Proposal %d accepted at %d\n", resp.ProposalID, resp.AgreedFee)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Proposal ID [required]")
	cmd.MarkFlagRequired("id")
	return cmd
}

func newProposalsFinalizeCommand() *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "finalize",
		Short: "Settle an accepted proposal",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(configPath, nil)
			if err != nil {
				return err
			}
			defer eng.close()

			resp, err := common.SendTyped[*commands.FinalizeTransferResponse](eng.rootContext(), eng.mediator, &commands.FinalizeTransferCommand{
				ProposalID: id,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Transfer complete: player %d joins team %d for %d (budget left: %d)\n",
				resp.PlayerID, resp.ToTeamID, resp.Fee, resp.BuyerBudget)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Proposal ID [required]")
	cmd.MarkFlagRequired("id")
	return cmd
}
